package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each item, at most limit at a time (limit <= 0
// means unbounded). The first error cancels ctx for the remaining actions and
// is returned once every started action has finished.
func Concurrent[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return action(gctx, item)
		})
	}
	return g.Wait()
}

// Workers starts n workers, each receiving its index. It returns the first
// worker error.
func Workers(ctx context.Context, n int, worker func(ctx context.Context, id int) error) error {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return Concurrent(ctx, ids, 0, worker)
}

// ParallelMap applies mapFn to each element with the given number of workers,
// preserving order.
func ParallelMap[T any, R any](in []T, workers int, mapFn func(T) R) []R {
	out := make([]R, len(in))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for idx, val := range in {
		idx, val := idx, val
		g.Go(func() error {
			out[idx] = mapFn(val)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
