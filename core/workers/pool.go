// ABOUTME: Bounded fan-out/fan-in helper used by the discovery and expansion stages
// ABOUTME: Results are collected by input index so completion order never leaks into output order

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultPoolWidth is the number of concurrent units used by the pipeline stages.
const DefaultPoolWidth = 8

// MapOrdered calls fn once per item with at most width calls in flight and returns
// the results in input order. Dispatch blocks until a slot frees. Every unit runs to
// completion; fn is expected to absorb its own failures into its result value.
func MapOrdered[T, R any](ctx context.Context, width int, items []T, fn func(ctx context.Context, item T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if width <= 0 {
		width = DefaultPoolWidth
	}

	var g errgroup.Group
	g.SetLimit(width)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			// each unit owns results[i]
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
