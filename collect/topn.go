package collect

import (
	"container/heap"
	"slices"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
)

// TopN keeps the n greatest elements by c and returns them greatest first,
// using a bounded heap instead of a full sort. Among equal-comparing
// elements the one encountered first ranks higher, which matches a stable
// descending sort followed by a limit. Groups smaller than n are returned
// whole, never padded.
func TopN[T any](n int, c compare.Comparator[T]) Collector[T, []T] {
	if n < 0 {
		return failed[T, []T](errors.Negative("n", n))
	}
	if c == nil {
		return failed[T, []T](errors.NilFunc("comparator"))
	}
	return Of(
		func() *rankHeap[T] { return &rankHeap[T]{cmp: c, limit: n} },
		func(h *rankHeap[T], v T) *rankHeap[T] {
			h.offer(ranked[T]{v: v, seq: h.seen})
			h.seen++
			return h
		},
		func(left, right *rankHeap[T]) *rankHeap[T] {
			// right's elements come after every element left has seen
			for _, e := range right.items {
				left.offer(ranked[T]{v: e.v, seq: e.seq + left.seen})
			}
			left.seen += right.seen
			return left
		},
		func(h *rankHeap[T]) []T {
			items := slices.Clone(h.items)
			slices.SortFunc(items, func(a, b ranked[T]) int { return -h.rank(a, b) })
			out := make([]T, len(items))
			for i, e := range items {
				out[i] = e.v
			}
			return out
		},
	)
}

type ranked[T any] struct {
	v   T
	seq int
}

// rankHeap is a min-heap on rank: the root is the weakest kept element.
type rankHeap[T any] struct {
	items []ranked[T]
	cmp   compare.Comparator[T]
	limit int
	seen  int
}

// rank orders a against b; an earlier sequence number ranks higher on ties.
func (h *rankHeap[T]) rank(a, b ranked[T]) int {
	if r := h.cmp(a.v, b.v); r != 0 {
		return r
	}
	switch {
	case a.seq < b.seq:
		return 1
	case a.seq > b.seq:
		return -1
	}
	return 0
}

func (h *rankHeap[T]) offer(e ranked[T]) {
	if h.limit == 0 {
		return
	}
	if len(h.items) < h.limit {
		heap.Push(h, e)
		return
	}
	if h.rank(e, h.items[0]) > 0 {
		h.items[0] = e
		heap.Fix(h, 0)
	}
}

func (h *rankHeap[T]) Len() int           { return len(h.items) }
func (h *rankHeap[T]) Less(i, j int) bool { return h.rank(h.items[i], h.items[j]) < 0 }
func (h *rankHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *rankHeap[T]) Push(x any)         { h.items = append(h.items, x.(ranked[T])) }
func (h *rankHeap[T]) Pop() any {
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last
}
