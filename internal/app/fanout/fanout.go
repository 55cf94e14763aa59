// Package fanout runs one function over many items with bounded concurrency
// and keeps every item's outcome. A failing item never stops the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Failed reports whether the item failed.
func (r Result[R]) Failed() bool {
	return r.Err != nil
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns the results in input order. Items still waiting for a worker when
// ctx is done are not started; their result carries ctx.Err(). Started calls
// run to completion. A maxWorkers below 1 means one worker.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
