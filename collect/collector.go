package collect

import (
	"iter"

	"github.com/kbukum/streamkit/errors"
)

// Container is the mutable working state of one collector run.
type Container[T, R any] interface {
	// Add folds one element into the container.
	Add(v T)
	// Merge folds a container created by the same collector into this one.
	// Elements of other are treated as coming after the elements of the receiver.
	Merge(other Container[T, R])
	// Finish produces the result. The container must not be used afterwards.
	Finish() R
}

// Collector creates containers that reduce elements of type T to a result R.
// Collectors are built with Of; the interface cannot be implemented elsewhere.
type Collector[T, R any] interface {
	// New returns an empty container.
	New() Container[T, R]
	// Err reports an invalid construction argument, such as a nil function.
	Err() error

	sealed()
}

// Of builds a collector from its four operations. A is the accumulator type.
// The accumulator and combiner return the (possibly new) accumulator so both
// value and reference accumulators work.
func Of[T, A, R any](
	supplier func() A,
	accumulator func(acc A, v T) A,
	combiner func(left, right A) A,
	finisher func(acc A) R,
) Collector[T, R] {
	switch {
	case supplier == nil:
		return failed[T, R](errors.NilFunc("supplier"))
	case accumulator == nil:
		return failed[T, R](errors.NilFunc("accumulator"))
	case combiner == nil:
		return failed[T, R](errors.NilFunc("combiner"))
	case finisher == nil:
		return failed[T, R](errors.NilFunc("finisher"))
	}
	return &funcCollector[T, A, R]{
		supplier:    supplier,
		accumulator: accumulator,
		combiner:    combiner,
		finisher:    finisher,
	}
}

// OfIdentity builds a collector whose accumulator is its result.
func OfIdentity[T, A any](
	supplier func() A,
	accumulator func(acc A, v T) A,
	combiner func(left, right A) A,
) Collector[T, A] {
	return Of(supplier, accumulator, combiner, func(acc A) A { return acc })
}

type funcCollector[T, A, R any] struct {
	supplier    func() A
	accumulator func(A, T) A
	combiner    func(A, A) A
	finisher    func(A) R
}

func (c *funcCollector[T, A, R]) New() Container[T, R] {
	return &funcContainer[T, A, R]{c: c, acc: c.supplier()}
}

func (c *funcCollector[T, A, R]) Err() error { return nil }

func (c *funcCollector[T, A, R]) sealed() {}

type funcContainer[T, A, R any] struct {
	c   *funcCollector[T, A, R]
	acc A
}

func (b *funcContainer[T, A, R]) Add(v T) { b.acc = b.c.accumulator(b.acc, v) }

func (b *funcContainer[T, A, R]) Merge(other Container[T, R]) {
	o, ok := other.(*funcContainer[T, A, R])
	if !ok || o.c != b.c {
		panic("collect: merging containers of different collectors")
	}
	b.acc = b.c.combiner(b.acc, o.acc)
}

func (b *funcContainer[T, A, R]) Finish() R { return b.c.finisher(b.acc) }

// failedCollector reports a construction error and collects nothing.
type failedCollector[T, R any] struct{ err error }

func failed[T, R any](err error) Collector[T, R] { return &failedCollector[T, R]{err: err} }

func (c *failedCollector[T, R]) New() Container[T, R] { return noopContainer[T, R]{} }
func (c *failedCollector[T, R]) Err() error           { return c.err }
func (c *failedCollector[T, R]) sealed()              {}

type noopContainer[T, R any] struct{}

func (noopContainer[T, R]) Add(T)                  {}
func (noopContainer[T, R]) Merge(Container[T, R]) {}
func (noopContainer[T, R]) Finish() R {
	var zero R
	return zero
}

// --- Runners ---

// Slice runs c over items in order.
func Slice[T, R any](items []T, c Collector[T, R]) (R, error) {
	if err := c.Err(); err != nil {
		var zero R
		return zero, err
	}
	box := c.New()
	for _, v := range items {
		box.Add(v)
	}
	return box.Finish(), nil
}

// Seq runs c over a sequence in order.
func Seq[T, R any](seq iter.Seq[T], c Collector[T, R]) (R, error) {
	if err := c.Err(); err != nil {
		var zero R
		return zero, err
	}
	box := c.New()
	for v := range seq {
		box.Add(v)
	}
	return box.Finish(), nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
