package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
)

// Mode is the search box's operating mode. There is no idle third state:
// a non-empty query means search, anything else means browse.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

const browsePageSize = 12

// Session models the interactive product-search box: free text is debounced
// and fuzzy-matched server-side, an empty query snaps back to category
// browsing with load-more pagination. Fetch failures degrade to an empty
// result list. In-flight requests are not cancelled when superseded, so a
// stale response can land after a fresher one; the source behaves the same
// way and the race is accepted as-is.
type Session struct {
	mu        sync.Mutex
	gw        gateway.Gateway
	deb       *Debouncer
	mode      Mode
	query     string
	category  string
	offset    int
	results   []models.ProductCard
	onResults func([]models.ProductCard)
}

func NewSession(gw gateway.Gateway, delay time.Duration, onResults func([]models.ProductCard)) *Session {
	if onResults == nil {
		onResults = func([]models.ProductCard) {}
	}
	return &Session{
		gw:        gw,
		deb:       NewDebouncer(delay),
		onResults: onResults,
	}
}

// Type feeds a keystroke's worth of query text into the session.
func (s *Session) Type(ctx context.Context, text string) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	s.query = text
	if text == "" {
		// Snap back to browse mode and drop any pending search dispatch.
		s.mode = ModeBrowse
		s.offset = 0
		category := s.category
		s.mu.Unlock()
		s.deb.Stop()
		s.fetchBrowse(ctx, category, 0, false)
		return
	}
	s.mode = ModeSearch
	s.mu.Unlock()

	s.deb.Trigger(func() {
		s.mu.Lock()
		// The box may have emptied while the timer ran.
		if s.mode != ModeSearch {
			s.mu.Unlock()
			return
		}
		query := s.query
		s.mu.Unlock()

		cards, err := s.gw.GetProductCards(ctx, query, "", "", 0, browsePageSize)
		if err != nil {
			cards = nil
		}
		s.deliver(cards, false)
	})
}

// SetCategory switches the browse-mode category pill and refetches page one.
// Ignored while searching.
func (s *Session) SetCategory(ctx context.Context, category string) {
	s.mu.Lock()
	if s.mode != ModeBrowse {
		s.mu.Unlock()
		return
	}
	s.category = category
	s.offset = 0
	s.mu.Unlock()
	s.fetchBrowse(ctx, category, 0, false)
}

// LoadMore appends the next browse page. Ignored while searching.
func (s *Session) LoadMore(ctx context.Context) {
	s.mu.Lock()
	if s.mode != ModeBrowse {
		s.mu.Unlock()
		return
	}
	s.offset += browsePageSize
	category, offset := s.category, s.offset
	s.mu.Unlock()
	s.fetchBrowse(ctx, category, offset, true)
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Results() []models.ProductCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ProductCard, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) Close() {
	s.deb.Stop()
}

func (s *Session) fetchBrowse(ctx context.Context, category string, offset int, appendPage bool) {
	cards, err := s.gw.GetProductCards(ctx, "", category, "", offset, browsePageSize)
	if err != nil {
		cards = nil
	}
	s.deliver(cards, appendPage)
}

func (s *Session) deliver(cards []models.ProductCard, appendPage bool) {
	s.mu.Lock()
	if appendPage {
		s.results = append(s.results, cards...)
	} else {
		s.results = cards
	}
	snapshot := make([]models.ProductCard, len(s.results))
	copy(snapshot, s.results)
	s.mu.Unlock()
	s.onResults(snapshot)
}
