package pipeline

import (
	"context"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
)

// each pulls values in order and hands them to fn until fn returns false,
// the pipeline is exhausted, or a pull fails.
func each[T any](ctx context.Context, p *Pipeline[T], fn func(T) bool) error {
	it := p.create(ctx)
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok || !fn(val) {
			return nil
		}
	}
}

// Aggregate runs the pipeline through a collector.
func Aggregate[T, R any](ctx context.Context, p *Pipeline[T], c collect.Collector[T, R]) (R, error) {
	var zero R
	if err := c.Err(); err != nil {
		return zero, err
	}
	box := c.New()
	if err := each(ctx, p, func(v T) bool {
		box.Add(v)
		return true
	}); err != nil {
		return zero, err
	}
	return box.Finish(), nil
}

// ToSet collects the values into a set.
func ToSet[T comparable](ctx context.Context, p *Pipeline[T]) (map[T]struct{}, error) {
	return Aggregate(ctx, p, collect.ToSet[T]())
}

// ToMap collects the values into a map. Two values producing the same key
// fail the run with a DUPLICATE_KEY error; use ToMapMerge to resolve
// collisions instead.
func ToMap[T any, K comparable, V any](ctx context.Context, p *Pipeline[T], key func(T) K, value func(T) V) (map[K]V, error) {
	if key == nil {
		return nil, nilFunc("key")
	}
	if value == nil {
		return nil, nilFunc("value")
	}
	out := make(map[K]V)
	var dupErr error
	err := each(ctx, p, func(v T) bool {
		k := key(v)
		if _, exists := out[k]; exists {
			dupErr = errors.DuplicateKey(k)
			return false
		}
		out[k] = value(v)
		return true
	})
	if err != nil {
		return nil, err
	}
	if dupErr != nil {
		return nil, dupErr
	}
	return out, nil
}

// ToMapMerge collects the values into a map, resolving key collisions with
// merge(existing, incoming).
func ToMapMerge[T any, K comparable, V any](ctx context.Context, p *Pipeline[T], key func(T) K, value func(T) V, merge func(existing, incoming V) V) (map[K]V, error) {
	return Aggregate(ctx, p, collect.ToMapMerge(key, value, merge))
}

// Fold combines the values left to right starting from identity.
func Fold[T, R any](ctx context.Context, p *Pipeline[T], identity R, fn func(R, T) R) (R, error) {
	if fn == nil {
		return identity, nilFunc("fold")
	}
	acc := identity
	err := each(ctx, p, func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc, err
}

// Count returns the number of values; 0 for an empty pipeline.
func Count[T any](ctx context.Context, p *Pipeline[T]) (int64, error) {
	return Aggregate(ctx, p, collect.Counting[T]())
}

// Sum adds a numeric projection of the values; 0 for an empty pipeline.
func Sum[T any, N collect.Number](ctx context.Context, p *Pipeline[T], fn func(T) N) (N, error) {
	return Aggregate(ctx, p, collect.Summing(fn))
}

// Average averages a numeric projection. An empty pipeline yields an empty
// Optional, unlike the Averaging collector.
func Average[T any, N collect.Number](ctx context.Context, p *Pipeline[T], fn func(T) N) (optional.Optional[float64], error) {
	stats, err := Summarize(ctx, p, fn)
	if err != nil || stats.Count == 0 {
		return optional.Empty[float64](), err
	}
	return optional.Of(stats.Average()), nil
}

// Summarize computes count, sum, min and max of a numeric projection in one pass.
func Summarize[T any, N collect.Number](ctx context.Context, p *Pipeline[T], fn func(T) N) (collect.Stats[N], error) {
	return Aggregate(ctx, p, collect.Summarizing(fn))
}

// Max returns the greatest value by cmp, the earliest on ties.
func Max[T any](ctx context.Context, p *Pipeline[T], cmp compare.Comparator[T]) (optional.Optional[T], error) {
	return Aggregate(ctx, p, collect.MaxBy(cmp))
}

// Min returns the least value by cmp, the earliest on ties.
func Min[T any](ctx context.Context, p *Pipeline[T], cmp compare.Comparator[T]) (optional.Optional[T], error) {
	return Aggregate(ctx, p, collect.MinBy(cmp))
}

// FindFirst returns the first value in source order. It pulls a single value.
func FindFirst[T any](ctx context.Context, p *Pipeline[T]) (optional.Optional[T], error) {
	found := optional.Empty[T]()
	err := each(ctx, p, func(v T) bool {
		found = optional.Of(v)
		return false
	})
	if err != nil {
		return optional.Empty[T](), err
	}
	return found, nil
}

// FindAny returns some value of the pipeline. Sequentially it returns the
// first one; callers must not rely on that. See FindAnyParallel.
func FindAny[T any](ctx context.Context, p *Pipeline[T]) (optional.Optional[T], error) {
	return FindFirst(ctx, p)
}

// AnyMatch reports whether some value satisfies pred, stopping at the first
// match. It is false for an empty pipeline.
func AnyMatch[T any](ctx context.Context, p *Pipeline[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, nilFunc("predicate")
	}
	matched := false
	err := each(ctx, p, func(v T) bool {
		matched = pred(v)
		return !matched
	})
	return matched && err == nil, err
}

// AllMatch reports whether every value satisfies pred, stopping at the first
// failure. It is true for an empty pipeline.
func AllMatch[T any](ctx context.Context, p *Pipeline[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, nilFunc("predicate")
	}
	failed, err := AnyMatch(ctx, p, func(v T) bool { return !pred(v) })
	return !failed && err == nil, err
}

// NoneMatch reports whether no value satisfies pred. It is true for an empty
// pipeline.
func NoneMatch[T any](ctx context.Context, p *Pipeline[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, nilFunc("predicate")
	}
	matched, err := AnyMatch(ctx, p, pred)
	return !matched && err == nil, err
}

// Join concatenates the strings with delimiter, wrapped in prefix and suffix.
func Join(ctx context.Context, p *Pipeline[string], delimiter, prefix, suffix string) (string, error) {
	return Aggregate(ctx, p, collect.Joining(delimiter, prefix, suffix))
}
