// Package async holds the one concurrency pattern this service uses:
// fan-out/fan-in with per-branch failure masking.
package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Settle runs n branches concurrently and collects their results by position,
// not by completion order. A branch that fails contributes its zero value;
// the batch itself never fails. This makes the "fetch what you can, drop the
// rest" behavior of auxiliary lookups explicit at the call site.
func Settle[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) []T {
	out := make([]T, n)
	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			v, err := fn(gctx, i)
			if err != nil {
				return nil
			}
			out[i] = v
			return nil
		})
	}
	// Branches never return errors, so Wait only blocks until all settle.
	_ = group.Wait()
	return out
}
