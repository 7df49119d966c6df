package search

import (
	"sync"
	"time"
)

// DefaultDebounce matches the keystroke delay used by the search boxes.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs a function only after the input has been quiet for the
// configured delay. Trailing edge only: every new trigger cancels the pending
// one, there is no leading fire and no max-wait cap.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending schedule.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending schedule, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
