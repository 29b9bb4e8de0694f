package recipes

import (
	"github.com/kbukum/streamkit/optional"
)

// Duplicates returns the values that occur more than once, each listed once,
// in order of first appearance.
func Duplicates[T comparable](items []T) []T {
	return valuesWhere(Frequencies(items), func(n int64) bool { return n > 1 })
}

// DuplicateCounts maps every repeated value to its number of occurrences.
func DuplicateCounts[T comparable](items []T) map[T]int64 {
	out := make(map[T]int64)
	for _, f := range Frequencies(items) {
		if f.Count > 1 {
			out[f.Value] = f.Count
		}
	}
	return out
}

// Uniques returns the values that occur exactly once, in input order.
func Uniques[T comparable](items []T) []T {
	return valuesWhere(Frequencies(items), func(n int64) bool { return n == 1 })
}

// FirstDuplicate returns the value whose second occurrence comes first,
// scanning items once with a seen-set. For [1 2 3 2 1] that is 2.
//
// The scan is stateful and order dependent, so it is a plain loop rather than
// a pipeline stage.
func FirstDuplicate[T comparable](items []T) optional.Optional[T] {
	seen := make(map[T]struct{}, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			return optional.Of(v)
		}
		seen[v] = struct{}{}
	}
	return optional.Empty[T]()
}

func valuesWhere[T comparable](freqs []Frequency[T], keep func(int64) bool) []T {
	out := make([]T, 0)
	for _, f := range freqs {
		if keep(f.Count) {
			out = append(out, f.Value)
		}
	}
	return out
}
