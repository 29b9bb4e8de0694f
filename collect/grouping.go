package collect

import "github.com/kbukum/streamkit/errors"

// GroupingBy places every element in the bucket for key(element) and applies
// downstream to each bucket. Buckets are created on first use, so a key with
// no elements never appears. Pass another GroupingBy or PartitioningBy as
// downstream to group on several levels.
func GroupingBy[T any, K comparable, R any](key func(T) K, downstream Collector[T, R]) Collector[T, map[K]R] {
	if key == nil {
		return failed[T, map[K]R](errors.NilFunc("key"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, map[K]R](err)
	}
	return Of(
		func() map[K]Container[T, R] { return make(map[K]Container[T, R]) },
		func(acc map[K]Container[T, R], v T) map[K]Container[T, R] {
			k := key(v)
			bucket, ok := acc[k]
			if !ok {
				bucket = downstream.New()
				acc[k] = bucket
			}
			bucket.Add(v)
			return acc
		},
		func(left, right map[K]Container[T, R]) map[K]Container[T, R] {
			for k, bucket := range right {
				if cur, ok := left[k]; ok {
					cur.Merge(bucket)
				} else {
					left[k] = bucket
				}
			}
			return left
		},
		func(acc map[K]Container[T, R]) map[K]R {
			out := make(map[K]R, len(acc))
			for k, bucket := range acc {
				out[k] = bucket.Finish()
			}
			return out
		},
	)
}

// GroupingByList groups elements into slices by key.
func GroupingByList[T any, K comparable](key func(T) K) Collector[T, map[K][]T] {
	return GroupingBy(key, ToList[T]())
}

// CountingBy counts elements per key.
func CountingBy[T any, K comparable](key func(T) K) Collector[T, map[K]int64] {
	return GroupingBy(key, Counting[T]())
}

type partition[T, R any] struct {
	yes, no Container[T, R]
}

// PartitioningBy splits elements by pred and applies downstream to each side.
// Both the true and the false key are always present; a side with no
// elements holds downstream's empty result (an empty list, a zero count).
func PartitioningBy[T, R any](pred func(T) bool, downstream Collector[T, R]) Collector[T, map[bool]R] {
	if pred == nil {
		return failed[T, map[bool]R](errors.NilFunc("predicate"))
	}
	if err := downstream.Err(); err != nil {
		return failed[T, map[bool]R](err)
	}
	return Of(
		func() partition[T, R] {
			return partition[T, R]{yes: downstream.New(), no: downstream.New()}
		},
		func(acc partition[T, R], v T) partition[T, R] {
			if pred(v) {
				acc.yes.Add(v)
			} else {
				acc.no.Add(v)
			}
			return acc
		},
		func(left, right partition[T, R]) partition[T, R] {
			left.yes.Merge(right.yes)
			left.no.Merge(right.no)
			return left
		},
		func(acc partition[T, R]) map[bool]R {
			return map[bool]R{true: acc.yes.Finish(), false: acc.no.Finish()}
		},
	)
}

// PartitioningByList splits elements into two slices by pred.
func PartitioningByList[T any](pred func(T) bool) Collector[T, map[bool][]T] {
	return PartitioningBy(pred, ToList[T]())
}
