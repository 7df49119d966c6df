package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettleCollectsPositionally(t *testing.T) {
	// later branches finish first; results still land by index
	out := Settle(context.Background(), 4, func(ctx context.Context, i int) (int, error) {
		time.Sleep(time.Duration(4-i) * 5 * time.Millisecond)
		return i * 10, nil
	})
	assert.Equal(t, []int{0, 10, 20, 30}, out)
}

func TestSettleMasksFailures(t *testing.T) {
	out := Settle(context.Background(), 3, func(ctx context.Context, i int) (string, error) {
		if i == 1 {
			return "", errors.New("branch failed")
		}
		return "ok", nil
	})
	assert.Equal(t, []string{"ok", "", "ok"}, out)
}

func TestSettleFailureDoesNotCancelSiblings(t *testing.T) {
	out := Settle(context.Background(), 2, func(ctx context.Context, i int) (int, error) {
		if i == 0 {
			return 0, errors.New("fast failure")
		}
		time.Sleep(20 * time.Millisecond)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			return 42, nil
		}
	})
	assert.Equal(t, []int{0, 42}, out)
}

func TestSettleZeroBranches(t *testing.T) {
	out := Settle(context.Background(), 0, func(ctx context.Context, i int) (int, error) {
		t.Fatal("must not run")
		return 0, nil
	})
	assert.Empty(t, out)
}
