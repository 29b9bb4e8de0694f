// Package compare provides comparator helpers for sorting, min/max and
// top-N selection.
//
// A Comparator follows the cmp.Compare convention: negative when a sorts
// before b, zero when they are equal, positive otherwise.
package compare

import "cmp"

// Comparator orders two values.
type Comparator[T any] func(a, b T) int

// Natural orders values by their natural ordering.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// ReverseOrder orders values by the reverse of their natural ordering.
func ReverseOrder[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(b, a) }
}

// By orders values by an extracted key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Reversed returns the reverse of c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then returns a comparator that falls back to next when c reports equality.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// ThenBy is Then with a key extractor.
func ThenBy[T any, K cmp.Ordered](c Comparator[T], key func(T) K) Comparator[T] {
	return c.Then(By(key))
}

// Max returns the greater of a and b; a wins ties.
func (c Comparator[T]) Max(a, b T) T {
	if c(b, a) > 0 {
		return b
	}
	return a
}

// Min returns the lesser of a and b; a wins ties.
func (c Comparator[T]) Min(a, b T) T {
	if c(b, a) < 0 {
		return b
	}
	return a
}
