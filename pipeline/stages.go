package pipeline

import (
	"context"
	"slices"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
)

// Sorted yields the values ordered by cmp. The sort is stable: values that
// compare equal keep their source order. Sorted pulls the whole upstream on
// the first Next.
func Sorted[T any](p *Pipeline[T], cmp compare.Comparator[T]) *Pipeline[T] {
	if cmp == nil {
		return invalid[T](nilFunc("comparator"))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &sortedIter[T]{source: p.create(ctx), cmp: cmp}
		},
	}
}

// Limit yields at most n values and stops pulling upstream once n values
// have been produced.
func Limit[T any](p *Pipeline[T], n int) *Pipeline[T] {
	if n < 0 {
		return invalid[T](errors.Negative("limit", n))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &limitIter[T]{source: p.create(ctx), remaining: n}
		},
	}
}

// Skip discards the first n values.
func Skip[T any](p *Pipeline[T], n int) *Pipeline[T] {
	if n < 0 {
		return invalid[T](errors.Negative("skip", n))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &skipIter[T]{source: p.create(ctx), pending: n}
		},
	}
}

// Distinct drops values equal to an earlier value; the first occurrence is kept.
func Distinct[T comparable](p *Pipeline[T]) *Pipeline[T] {
	return DistinctBy(p, func(v T) T { return v })
}

// DistinctBy drops values whose key equals the key of an earlier value.
func DistinctBy[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[T] {
	if key == nil {
		return invalid[T](nilFunc("key"))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &distinctIter[T, K]{source: p.create(ctx), key: key, seen: make(map[K]struct{})}
		},
	}
}

// Chunk groups consecutive values into slices of size values. The last chunk
// holds the remainder and may be shorter.
func Chunk[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	if size <= 0 {
		return invalid[[]T](errors.NotPositive("size", size))
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}
}

// --- Iterator implementations ---

type sortedIter[T any] struct {
	source Iterator[T]
	cmp    compare.Comparator[T]
	items  []T
	index  int
	loaded bool
}

func (it *sortedIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.loaded {
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				var zero T
				return zero, false, err
			}
			if !ok {
				break
			}
			it.items = append(it.items, val)
		}
		slices.SortStableFunc(it.items, it.cmp)
		it.loaded = true
	}
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sortedIter[T]) Close() error { return it.source.Close() }

type limitIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *limitIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *limitIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source  Iterator[T]
	pending int
}

func (it *skipIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.pending > 0 {
		_, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.pending--
	}
	return it.source.Next(ctx)
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		k := it.key(val)
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return val, true, nil
	}
}

func (it *distinctIter[T, K]) Close() error { return it.source.Close() }

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	err    error
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.err != nil {
		err, it.err = it.err, nil
		it.done = true
		return nil, false, err
	}
	if it.done {
		return nil, false, nil
	}

	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(chunk) > 0 {
				// Return partial chunk on error; error will surface on next call
				it.err = err
				return chunk, true, nil
			}
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false, nil
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }
