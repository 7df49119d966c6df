package search_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hrmarket/backend/gateway/gatewaytest"
	"hrmarket/backend/models"
	"hrmarket/backend/search"
)

func cards(ids ...string) []models.ProductCard {
	out := make([]models.ProductCard, len(ids))
	for i, id := range ids {
		out[i] = models.ProductCard{ProductID: id}
	}
	return out
}

func TestSessionDebouncedSearchFiresOnceForFinalQuery(t *testing.T) {
	var calls int32
	var lastQuery atomic.Value
	gw := &gatewaytest.Fake{
		GetProductCardsFn: func(ctx context.Context, s, cat, tier string, offset, limit int) ([]models.ProductCard, error) {
			if s != "" {
				atomic.AddInt32(&calls, 1)
				lastQuery.Store(s)
			}
			return cards("p1"), nil
		},
	}

	done := make(chan struct{}, 4)
	sess := search.NewSession(gw, 30*time.Millisecond, func([]models.ProductCard) { done <- struct{}{} })
	defer sess.Close()

	ctx := context.Background()
	sess.Type(ctx, "h")
	sess.Type(ctx, "hr")
	sess.Type(ctx, "hrt")
	assert.Equal(t, search.ModeSearch, sess.Mode())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("search never delivered")
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "hrt", lastQuery.Load())
}

func TestSessionEmptyQuerySnapsBackToBrowse(t *testing.T) {
	var searchCalls int32
	gw := &gatewaytest.Fake{
		GetProductCardsFn: func(ctx context.Context, s, cat, tier string, offset, limit int) ([]models.ProductCard, error) {
			if s != "" {
				atomic.AddInt32(&searchCalls, 1)
				return cards("search-hit"), nil
			}
			return cards("browse-1", "browse-2"), nil
		},
	}

	sess := search.NewSession(gw, 30*time.Millisecond, nil)
	defer sess.Close()

	ctx := context.Background()
	sess.Type(ctx, "hr")
	assert.Equal(t, search.ModeSearch, sess.Mode())

	// clearing before the debounce window elapses cancels the dispatch
	sess.Type(ctx, "   ")
	assert.Equal(t, search.ModeBrowse, sess.Mode())
	assert.Len(t, sess.Results(), 2)

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&searchCalls))
}

func TestSessionBrowsePaginationAppends(t *testing.T) {
	gw := &gatewaytest.Fake{
		GetProductCardsFn: func(ctx context.Context, s, cat, tier string, offset, limit int) ([]models.ProductCard, error) {
			if offset == 0 {
				return cards("a", "b"), nil
			}
			return cards("c"), nil
		},
	}

	sess := search.NewSession(gw, 30*time.Millisecond, nil)
	defer sess.Close()

	ctx := context.Background()
	sess.SetCategory(ctx, "recruiting")
	assert.Len(t, sess.Results(), 2)

	sess.LoadMore(ctx)
	assert.Len(t, sess.Results(), 3)
}

func TestSessionFailureDegradesToEmpty(t *testing.T) {
	gw := &gatewaytest.Fake{
		GetProductCardsFn: func(ctx context.Context, s, cat, tier string, offset, limit int) ([]models.ProductCard, error) {
			return nil, errors.New("get_product_cards: timeout")
		},
	}

	sess := search.NewSession(gw, 30*time.Millisecond, nil)
	defer sess.Close()

	sess.SetCategory(context.Background(), "payroll")
	assert.Empty(t, sess.Results())
}

func TestSuggestionsDedupeAndExclude(t *testing.T) {
	gw := &gatewaytest.Fake{
		GetSimilarProductsFn: func(ctx context.Context, id string, limit int) ([]models.ProductCard, error) {
			switch id {
			case "seed1":
				return cards("x", "y", "seed2"), nil
			case "seed2":
				return cards("y", "z"), nil
			}
			return nil, nil
		},
	}

	got := search.Suggestions(context.Background(), gw, []string{"seed1", "seed2", "seed3"}, []string{"seed1", "seed2"}, 6)

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ProductID
	}
	// only the first two seeds are queried; duplicates and slot occupants drop
	assert.Equal(t, []string{"x", "y", "z"}, ids)
}

func TestSuggestionsSwallowFailures(t *testing.T) {
	gw := &gatewaytest.Fake{
		GetSimilarProductsFn: func(ctx context.Context, id string, limit int) ([]models.ProductCard, error) {
			if id == "seed1" {
				return nil, errors.New("get_similar_products: unavailable")
			}
			return cards("ok"), nil
		},
	}

	got := search.Suggestions(context.Background(), gw, []string{"seed1", "seed2"}, nil, 6)
	assert.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ProductID)
}

func TestBookmarkRailDisablesSlotOccupants(t *testing.T) {
	store := search.NewBookmarkStore()
	store.Add("u1", "a")
	store.Add("u1", "b")
	store.Add("u1", "gone")

	gw := &gatewaytest.Fake{
		GetProductDetailsFn: func(ctx context.Context, id string) (*models.ProductDetails, error) {
			if id == "gone" {
				return nil, nil
			}
			return &models.ProductDetails{ProductID: id}, nil
		},
	}

	rail := search.BookmarkRail(context.Background(), gw, store, "u1", []string{"b"})

	assert.Len(t, rail, 2)
	assert.Equal(t, "a", rail[0].ProductID)
	assert.False(t, rail[0].Disabled)
	// already in a slot: muted, not hidden
	assert.Equal(t, "b", rail[1].ProductID)
	assert.True(t, rail[1].Disabled)
}

func TestBookmarkStoreAddRemove(t *testing.T) {
	store := search.NewBookmarkStore()
	store.Add("u1", "a")
	store.Add("u1", "a")
	store.Add("u2", "b")

	assert.Equal(t, []string{"a"}, store.List("u1"))
	store.Remove("u1", "a")
	assert.Empty(t, store.List("u1"))
	assert.Equal(t, []string{"b"}, store.List("u2"))
}
