package recipes

import (
	"slices"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
)

// Frequency is a value with its number of occurrences.
type Frequency[T any] struct {
	Value T
	Count int64
}

// Frequencies counts every distinct value. The result lists values in order
// of first appearance.
func Frequencies[T comparable](items []T) []Frequency[T] {
	// every function is non-nil, so the collector cannot fail
	counts, _ := collect.Slice(items, collect.ToOrderedMap(
		func(v T) T { return v },
		func(T) int64 { return 1 },
		func(existing, incoming int64) int64 { return existing + incoming },
	))
	out := make([]Frequency[T], 0, counts.Len())
	for v, n := range counts.All() {
		out = append(out, Frequency[T]{Value: v, Count: n})
	}
	return out
}

// RankByFrequency orders the distinct values from most to least frequent.
// Values with equal counts keep their first-appearance order.
func RankByFrequency[T comparable](items []T) []Frequency[T] {
	freqs := Frequencies(items)
	slices.SortStableFunc(freqs, func(a, b Frequency[T]) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		}
		return 0
	})
	return freqs
}

// MostFrequent returns the most frequent value; on a tie, the one that
// appeared first. Empty input yields an empty Optional.
func MostFrequent[T comparable](items []T) optional.Optional[T] {
	return optional.Map(MostFrequentWithCount(items), func(f Frequency[T]) T { return f.Value })
}

// MostFrequentWithCount is MostFrequent that also reports the count.
func MostFrequentWithCount[T comparable](items []T) optional.Optional[Frequency[T]] {
	ranked := RankByFrequency(items)
	if len(ranked) == 0 {
		return optional.Empty[Frequency[T]]()
	}
	return optional.Of(ranked[0])
}

// LeastFrequent returns the least frequent value; on a tie, the one that
// appeared first.
func LeastFrequent[T comparable](items []T) optional.Optional[T] {
	freqs := Frequencies(items)
	if len(freqs) == 0 {
		return optional.Empty[T]()
	}
	least := freqs[0]
	for _, f := range freqs[1:] {
		if f.Count < least.Count {
			least = f
		}
	}
	return optional.Of(least.Value)
}

// AllMostFrequent returns every value sharing the highest count, in order of
// first appearance.
func AllMostFrequent[T comparable](items []T) []T {
	freqs := Frequencies(items)
	var top int64
	for _, f := range freqs {
		top = max(top, f.Count)
	}
	return valuesWhere(freqs, func(n int64) bool { return n == top })
}

// KthMostFrequent returns the value ranked k (1-based) by RankByFrequency.
// k must be positive; a k beyond the number of distinct values yields an
// empty Optional.
func KthMostFrequent[T comparable](items []T, k int) (optional.Optional[T], error) {
	if k <= 0 {
		return optional.Empty[T](), errors.NotPositive("k", k)
	}
	ranked := RankByFrequency(items)
	if k > len(ranked) {
		return optional.Empty[T](), nil
	}
	return optional.Of(ranked[k-1].Value), nil
}
