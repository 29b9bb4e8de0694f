package collect

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/streamkit/errors"
)

// Parallel runs c over items split into contiguous partitions, each
// accumulated on its own goroutine. Partial containers are merged in
// partition order, so order-sensitive collectors such as ToList give the
// same result as Slice.
//
// Callbacks inside c must be pure: they run concurrently. A panic in a
// callback is reported as an INTERNAL_ERROR.
func Parallel[T, R any](ctx context.Context, items []T, c Collector[T, R], partitions int) (R, error) {
	var zero R
	if err := c.Err(); err != nil {
		return zero, err
	}
	if partitions <= 0 {
		return zero, errors.NotPositive("partitions", partitions)
	}
	if partitions > len(items) {
		partitions = max(len(items), 1)
	}

	boxes := make([]Container[T, R], partitions)
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range Partition(items, partitions) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Internal(fmt.Errorf("partition %d: %v", i, r))
				}
			}()
			box := c.New()
			for _, v := range part {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				box.Add(v)
			}
			boxes[i] = box
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	result := boxes[0]
	for _, box := range boxes[1:] {
		result.Merge(box)
	}
	return result.Finish(), nil
}

// Partition splits items into n contiguous, nearly equal parts. The parts
// share the backing array of items.
func Partition[T any](items []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	parts := make([][]T, 0, n)
	size, rem := len(items)/n, len(items)%n
	start := 0
	for i := range n {
		end := start + size
		if i < rem {
			end++
		}
		parts = append(parts, items[start:end])
		start = end
	}
	return parts
}
