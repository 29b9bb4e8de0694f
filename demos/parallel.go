package demos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/pipeline"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 15, Slug: "parallel", Title: "Parallel Pipelines", Run: runParallel})
}

func square(n int) int64 { return int64(n) * int64(n) }

func identity[T any](v T) T { return v }

// sumSquares adds the squares of 0..n-1 on the calling goroutine.
func sumSquares(ctx context.Context, n int) (int64, error) {
	return pipeline.Sum(ctx, pipeline.Transform(pipeline.Range(0, n), square), identity[int64])
}

// sumSquaresParallel is sumSquares split across partitions goroutines.
func sumSquaresParallel(ctx context.Context, n, partitions int) (int64, error) {
	return pipeline.AggregateParallel(ctx, pipeline.Transform(pipeline.Range(0, n), square),
		collect.Summing(identity[int64]), partitions)
}

// doubledAbove sums 2*n for every n in 1..limit greater than floor, with the
// doubling spread over workers.
func doubledAbove(ctx context.Context, limit, floor, workers int) (int, error) {
	big := pipeline.Filter(pipeline.Range(1, limit+1), func(n int) bool { return n > floor })
	doubled := pipeline.Parallel(big, workers, func(_ context.Context, n int) (int, error) { return n * 2, nil })
	return pipeline.Sum(ctx, doubled, identity[int])
}

func runParallel(ctx context.Context, env *Env) error {
	r := env.Report
	workers := max(env.Workers, 1)

	for _, size := range []int{1_000_000, 1_000} {
		r.Section(fmt.Sprintf("Sequential versus parallel, %d values", size))
		start := time.Now()
		seq, err := sumSquares(ctx, size)
		if err != nil {
			return err
		}
		seqTime := time.Since(start)

		start = time.Now()
		par, err := sumSquaresParallel(ctx, size, workers)
		if err != nil {
			return err
		}
		parTime := time.Since(start)

		r.Result("Sequential sum", seq)
		r.Result("Parallel sum", par)
		r.Line("   took %s sequentially and %s with %d workers", seqTime.Round(time.Microsecond), parTime.Round(time.Microsecond), workers)
	}

	r.Section("Shared state")
	hundred := pipeline.Range(1, 101)
	var (
		mu     sync.Mutex
		locked []int
	)
	err := pipeline.ForEachParallel(ctx, pipeline.Filter(hundred, isEven), workers, func(_ context.Context, n int) error {
		mu.Lock()
		defer mu.Unlock()
		locked = append(locked, n)
		return nil
	})
	if err != nil {
		return err
	}
	r.Result("Appended under a lock", len(locked))
	collected, err := pipeline.AggregateParallel(ctx, hundred, collect.Filtering(isEven, collect.ToList[int]()), workers)
	if err != nil {
		return err
	}
	r.Result("Collected", len(collected))

	r.Section("Order")
	ten := pipeline.Range(1, 11)
	var unordered []int
	err = pipeline.ForEachParallel(ctx, ten, workers, func(_ context.Context, n int) error {
		mu.Lock()
		defer mu.Unlock()
		unordered = append(unordered, n)
		return nil
	})
	if err != nil {
		return err
	}
	r.Line("   unordered (may vary): %v", unordered)
	var ordered []int
	err = pipeline.ForEachOrdered(ctx, ten, workers,
		func(_ context.Context, n int) (int, error) { return n, nil },
		func(n int) error {
			ordered = append(ordered, n)
			return nil
		})
	if err != nil {
		return err
	}
	r.Result("Ordered", ordered)

	r.Section("Parallel collectors")
	thousand := pipeline.Range(1, 1001)
	halves, err := pipeline.AggregateParallel(ctx, thousand, collect.PartitioningBy(isEven, collect.Counting[int]()), workers)
	if err != nil {
		return err
	}
	r.Result("Even count", halves[true])
	r.Result("Odd count", halves[false])
	digits, err := pipeline.AggregateParallel(ctx, thousand, collect.GroupingByList(func(n int) int { return n % 10 }), workers)
	if err != nil {
		return err
	}
	r.Result("Groups by last digit", len(digits))
	doubled, err := doubledAbove(ctx, 1000, 500, workers)
	if err != nil {
		return err
	}
	r.Result("Sum of doubled values above 500", doubled)
	found, err := pipeline.FindAnyParallel(ctx, thousand, workers, func(n int) bool { return n%97 == 0 })
	if err != nil {
		return err
	}
	r.Result("Some multiple of 97 found", found.IsPresent())
	return nil
}
