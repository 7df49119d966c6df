package search

import (
	"context"
	"sync"

	"hrmarket/backend/async"
	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
)

// BookmarkStore is the service-side stand-in for the client's local bookmark
// list: per user, in memory, gone on restart.
type BookmarkStore struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{byUser: make(map[string][]string)}
}

func (b *BookmarkStore) Add(userID, productID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range b.byUser[userID] {
		if id == productID {
			return
		}
	}
	b.byUser[userID] = append(b.byUser[userID], productID)
}

func (b *BookmarkStore) Remove(userID, productID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.byUser[userID]
	for i, id := range list {
		if id == productID {
			b.byUser[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (b *BookmarkStore) List(userID string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.byUser[userID]))
	copy(out, b.byUser[userID])
	return out
}

// BookmarkEntry is a bookmarked product on the rail. Items already sitting in
// a comparison slot stay visible but disabled rather than being hidden.
type BookmarkEntry struct {
	models.ProductCard
	Disabled bool `json:"disabled"`
}

// BookmarkRail resolves the user's bookmarks into rail entries, in bookmark
// order. IDs that no longer resolve are dropped.
func BookmarkRail(ctx context.Context, gw gateway.Gateway, store *BookmarkStore, userID string, exclude []string) []BookmarkEntry {
	ids := store.List(userID)
	if len(ids) == 0 {
		return nil
	}

	resolved := async.Settle(ctx, len(ids), func(ctx context.Context, i int) (*models.ProductDetails, error) {
		return gw.GetProductDetails(ctx, ids[i])
	})

	inSlots := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		inSlots[id] = true
	}

	var out []BookmarkEntry
	for _, d := range resolved {
		if d == nil {
			continue
		}
		out = append(out, BookmarkEntry{
			ProductCard: d.Card(),
			Disabled:    inSlots[d.ProductID],
		})
	}
	return out
}
