package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerFiresOnceWithFinalValue(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired int32
	var got atomic.Value

	// "h", "hr", "hrt" typed within the window
	for _, q := range []string{"h", "hr", "hrt"} {
		q := q
		d.Trigger(func() {
			atomic.AddInt32(&fired, 1)
			got.Store(q)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.Equal(t, "hrt", got.Load())
}

func TestDebouncerTrailingEdgeOnly(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	defer d.Stop()

	var fired int32
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })

	// no leading fire
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired int32
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}
