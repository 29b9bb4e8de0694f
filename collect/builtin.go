package collect

import (
	"iter"
	"slices"
	"strings"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
)

// Number is the set of types summing and averaging collectors accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ToList collects elements into a slice in encounter order.
func ToList[T any]() Collector[T, []T] {
	return OfIdentity(
		func() []T { return make([]T, 0) },
		func(acc []T, v T) []T { return append(acc, v) },
		func(left, right []T) []T { return append(left, right...) },
	)
}

// ToSet collects elements into a set. Iteration order is unspecified.
func ToSet[T comparable]() Collector[T, map[T]struct{}] {
	return OfIdentity(
		func() map[T]struct{} { return make(map[T]struct{}) },
		func(acc map[T]struct{}, v T) map[T]struct{} {
			acc[v] = struct{}{}
			return acc
		},
		func(left, right map[T]struct{}) map[T]struct{} {
			for v := range right {
				left[v] = struct{}{}
			}
			return left
		},
	)
}

// Counting counts elements.
func Counting[T any]() Collector[T, int64] {
	return OfIdentity(
		func() int64 { return 0 },
		func(acc int64, _ T) int64 { return acc + 1 },
		func(left, right int64) int64 { return left + right },
	)
}

// Summing sums a numeric projection. The sum of nothing is 0.
func Summing[T any, N Number](fn func(T) N) Collector[T, N] {
	if fn == nil {
		return failed[T, N](errors.NilFunc("summing"))
	}
	return OfIdentity(
		func() N { return 0 },
		func(acc N, v T) N { return acc + fn(v) },
		func(left, right N) N { return left + right },
	)
}

// Product multiplies a numeric projection. The product of nothing is 1.
func Product[T any, N Number](fn func(T) N) Collector[T, N] {
	if fn == nil {
		return failed[T, N](errors.NilFunc("product"))
	}
	return OfIdentity(
		func() N { return 1 },
		func(acc N, v T) N { return acc * fn(v) },
		func(left, right N) N { return left * right },
	)
}

type meanAcc struct {
	sum   float64
	count int64
}

// Averaging averages a numeric projection. The average of an empty group is
// 0.0, not absent.
func Averaging[T any, N Number](fn func(T) N) Collector[T, float64] {
	if fn == nil {
		return failed[T, float64](errors.NilFunc("averaging"))
	}
	return Of(
		func() meanAcc { return meanAcc{} },
		func(acc meanAcc, v T) meanAcc {
			acc.sum += float64(fn(v))
			acc.count++
			return acc
		},
		func(left, right meanAcc) meanAcc {
			return meanAcc{sum: left.sum + right.sum, count: left.count + right.count}
		},
		func(acc meanAcc) float64 {
			if acc.count == 0 {
				return 0
			}
			return acc.sum / float64(acc.count)
		},
	)
}

// Stats summarizes a numeric projection in one pass.
type Stats[N Number] struct {
	Count int64
	Sum   N
	Min   optional.Optional[N]
	Max   optional.Optional[N]
}

// Average returns Sum/Count, or 0 when nothing was counted.
func (s Stats[N]) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

func (s Stats[N]) add(n N) Stats[N] {
	s.Count++
	s.Sum += n
	if cur, ok := s.Min.Get(); !ok || n < cur {
		s.Min = optional.Of(n)
	}
	if cur, ok := s.Max.Get(); !ok || n > cur {
		s.Max = optional.Of(n)
	}
	return s
}

func (s Stats[N]) merge(o Stats[N]) Stats[N] {
	out := Stats[N]{Count: s.Count + o.Count, Sum: s.Sum + o.Sum, Min: s.Min, Max: s.Max}
	if v, ok := o.Min.Get(); ok {
		if cur, ok := out.Min.Get(); !ok || v < cur {
			out.Min = o.Min
		}
	}
	if v, ok := o.Max.Get(); ok {
		if cur, ok := out.Max.Get(); !ok || v > cur {
			out.Max = o.Max
		}
	}
	return out
}

// Summarizing computes count, sum, min and max of a numeric projection.
func Summarizing[T any, N Number](fn func(T) N) Collector[T, Stats[N]] {
	if fn == nil {
		return failed[T, Stats[N]](errors.NilFunc("summarizing"))
	}
	return OfIdentity(
		func() Stats[N] { return Stats[N]{} },
		func(acc Stats[N], v T) Stats[N] { return acc.add(fn(v)) },
		Stats[N].merge,
	)
}

// MaxBy keeps the greatest element; the earliest wins ties. An empty group
// yields an empty Optional.
func MaxBy[T any](c compare.Comparator[T]) Collector[T, optional.Optional[T]] {
	if c == nil {
		return failed[T, optional.Optional[T]](errors.NilFunc("comparator"))
	}
	return extremum(c.Max)
}

// MinBy keeps the least element; the earliest wins ties. An empty group
// yields an empty Optional.
func MinBy[T any](c compare.Comparator[T]) Collector[T, optional.Optional[T]] {
	if c == nil {
		return failed[T, optional.Optional[T]](errors.NilFunc("comparator"))
	}
	return extremum(c.Min)
}

func extremum[T any](pick func(a, b T) T) Collector[T, optional.Optional[T]] {
	choose := func(left, right optional.Optional[T]) optional.Optional[T] {
		l, lok := left.Get()
		r, rok := right.Get()
		switch {
		case !lok:
			return right
		case !rok:
			return left
		default:
			return optional.Of(pick(l, r))
		}
	}
	return OfIdentity(
		optional.Empty[T],
		func(acc optional.Optional[T], v T) optional.Optional[T] {
			return choose(acc, optional.Of(v))
		},
		choose,
	)
}

// Joining concatenates strings with a delimiter, wrapped in prefix and suffix.
func Joining(delimiter, prefix, suffix string) Collector[string, string] {
	return Of(
		func() []string { return nil },
		func(acc []string, s string) []string { return append(acc, s) },
		func(left, right []string) []string { return append(left, right...) },
		func(acc []string) string { return prefix + strings.Join(acc, delimiter) + suffix },
	)
}

// Reducing maps each element and folds the results with op starting from
// identity. identity must be neutral for op when the collector runs in parallel.
func Reducing[T, U any](identity U, mapper func(T) U, op func(U, U) U) Collector[T, U] {
	if mapper == nil {
		return failed[T, U](errors.NilFunc("mapper"))
	}
	if op == nil {
		return failed[T, U](errors.NilFunc("op"))
	}
	return OfIdentity(
		func() U { return identity },
		func(acc U, v T) U { return op(acc, mapper(v)) },
		op,
	)
}

// List is a read-only view over collected elements.
type List[T any] struct {
	items []T
}

// Len returns the number of elements.
func (l List[T]) Len() int { return len(l.items) }

// At returns the element at index i.
func (l List[T]) At(i int) T { return l.items[i] }

// All iterates index/element pairs.
func (l List[T]) All() iter.Seq2[int, T] { return slices.All(l.items) }

// Values iterates the elements.
func (l List[T]) Values() iter.Seq[T] { return slices.Values(l.items) }

// Slice returns a copy of the elements that the caller may modify.
func (l List[T]) Slice() []T { return slices.Clone(l.items) }

// ToImmutableList collects elements into a read-only List.
func ToImmutableList[T any]() Collector[T, List[T]] {
	return CollectingAndThen(ToList[T](), func(items []T) List[T] {
		return List[T]{items: items}
	})
}
