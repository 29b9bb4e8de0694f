package recipes

import (
	"context"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
	"github.com/kbukum/streamkit/pipeline"
)

// NthHighest returns the element ranked n (1-based) when items are ordered
// greatest first by cmp. It sorts descending, skips n-1 elements and takes
// the next one, so a list shorter than n yields an empty Optional.
func NthHighest[T any](ctx context.Context, items []T, n int, cmp compare.Comparator[T]) (optional.Optional[T], error) {
	if n <= 0 {
		return optional.Empty[T](), errors.NotPositive("n", n)
	}
	if cmp == nil {
		return optional.Empty[T](), errors.NilFunc("comparator")
	}
	desc := pipeline.Sorted(pipeline.FromSlice(items), cmp.Reversed())
	return pipeline.FindFirst(ctx, pipeline.Limit(pipeline.Skip(desc, n-1), 1))
}

// NthHighestBy groups items by key and finds the Nth highest element of every
// group. Groups with fewer than n members map to an empty Optional.
func NthHighestBy[T any, K comparable](ctx context.Context, items []T, key func(T) K, n int, cmp compare.Comparator[T]) (map[K]optional.Optional[T], error) {
	if n <= 0 {
		return nil, errors.NotPositive("n", n)
	}
	nth := collect.CollectingAndThen(collect.TopN(n, cmp), func(top []T) optional.Optional[T] {
		if len(top) < n {
			return optional.Empty[T]()
		}
		return optional.Of(top[n-1])
	})
	return pipeline.Aggregate(ctx, pipeline.FromSlice(items), collect.GroupingBy(key, nth))
}

// TopN returns the n greatest elements by cmp, greatest first.
func TopN[T any](ctx context.Context, items []T, n int, cmp compare.Comparator[T]) ([]T, error) {
	return pipeline.Aggregate(ctx, pipeline.FromSlice(items), collect.TopN(n, cmp))
}

// BottomN returns the n least elements by cmp, least first.
func BottomN[T any](ctx context.Context, items []T, n int, cmp compare.Comparator[T]) ([]T, error) {
	if cmp == nil {
		return nil, errors.NilFunc("comparator")
	}
	return TopN(ctx, items, n, cmp.Reversed())
}

// TopNPerGroup returns the n greatest elements of every group. A group with
// fewer than n members is returned whole.
func TopNPerGroup[T any, K comparable](ctx context.Context, items []T, key func(T) K, n int, cmp compare.Comparator[T]) (map[K][]T, error) {
	return pipeline.Aggregate(ctx, pipeline.FromSlice(items), collect.GroupingBy(key, collect.TopN(n, cmp)))
}
