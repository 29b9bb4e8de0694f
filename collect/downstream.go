package collect

import "github.com/kbukum/streamkit/errors"

// Mapping projects each element through fn before handing it to downstream.
func Mapping[T, U, R any](fn func(T) U, downstream Collector[U, R]) Collector[T, R] {
	if fn == nil {
		return failed[T, R](errors.NilFunc("mapping"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, R](err)
	}
	return Of(
		downstream.New,
		func(acc Container[U, R], v T) Container[U, R] {
			acc.Add(fn(v))
			return acc
		},
		mergeContainers[U, R],
		finishContainer[U, R],
	)
}

// Filtering drops elements failing pred before handing the rest to
// downstream. Used under GroupingBy the group key still appears when every
// element of the group is dropped; its value is downstream's empty result.
func Filtering[T, R any](pred func(T) bool, downstream Collector[T, R]) Collector[T, R] {
	if pred == nil {
		return failed[T, R](errors.NilFunc("predicate"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, R](err)
	}
	return Of(
		downstream.New,
		func(acc Container[T, R], v T) Container[T, R] {
			if pred(v) {
				acc.Add(v)
			}
			return acc
		},
		mergeContainers[T, R],
		finishContainer[T, R],
	)
}

// FlatMapping expands each element into zero or more values for downstream.
// A nil or empty slice contributes nothing.
func FlatMapping[T, U, R any](fn func(T) []U, downstream Collector[U, R]) Collector[T, R] {
	if fn == nil {
		return failed[T, R](errors.NilFunc("flatMapping"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, R](err)
	}
	return Of(
		downstream.New,
		func(acc Container[U, R], v T) Container[U, R] {
			for _, u := range fn(v) {
				acc.Add(u)
			}
			return acc
		},
		mergeContainers[U, R],
		finishContainer[U, R],
	)
}

// CollectingAndThen applies finisher to the result of downstream.
func CollectingAndThen[T, R, RR any](downstream Collector[T, R], finisher func(R) RR) Collector[T, RR] {
	if finisher == nil {
		return failed[T, RR](errors.NilFunc("finisher"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, RR](err)
	}
	return Of(
		downstream.New,
		func(acc Container[T, R], v T) Container[T, R] {
			acc.Add(v)
			return acc
		},
		mergeContainers[T, R],
		func(acc Container[T, R]) RR { return finisher(acc.Finish()) },
	)
}

func mergeContainers[T, R any](left, right Container[T, R]) Container[T, R] {
	left.Merge(right)
	return left
}

func finishContainer[T, R any](acc Container[T, R]) R { return acc.Finish() }
