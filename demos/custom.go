package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/optional"
	"github.com/kbukum/streamkit/pipeline"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 16, Slug: "custom-collectors", Title: "Custom Collectors", Run: runCustomCollectors})
}

// joinedString joins strings the way collect.Joining does, built directly on
// collect.Of.
func joinedString(delimiter, prefix, suffix string) collect.Collector[string, string] {
	return collect.Of(
		func() []string { return nil },
		func(acc []string, s string) []string { return append(acc, s) },
		func(left, right []string) []string { return append(left, right...) },
		func(acc []string) string { return prefix + strings.Join(acc, delimiter) + suffix },
	)
}

type intSummary struct {
	Count    int
	Sum      int
	Min, Max optional.Optional[int]
	Avg      float64
}

func (s intSummary) String() string {
	return fmt.Sprintf("count=%d sum=%d min=%s max=%s avg=%.2f", s.Count, s.Sum, s.Min, s.Max, s.Avg)
}

type intAcc struct {
	count, sum, min, max int
}

func (a intAcc) add(n int) intAcc {
	if a.count == 0 {
		return intAcc{count: 1, sum: n, min: n, max: n}
	}
	return intAcc{count: a.count + 1, sum: a.sum + n, min: min(a.min, n), max: max(a.max, n)}
}

func (a intAcc) merge(b intAcc) intAcc {
	switch {
	case a.count == 0:
		return b
	case b.count == 0:
		return a
	}
	return intAcc{count: a.count + b.count, sum: a.sum + b.sum, min: min(a.min, b.min), max: max(a.max, b.max)}
}

// intStatistics computes count, sum, min, max and mean in one pass. Min and
// Max are empty when nothing was collected.
func intStatistics() collect.Collector[int, intSummary] {
	return collect.Of(
		func() intAcc { return intAcc{} },
		intAcc.add,
		intAcc.merge,
		func(a intAcc) intSummary {
			if a.count == 0 {
				return intSummary{}
			}
			return intSummary{
				Count: a.count,
				Sum:   a.sum,
				Min:   optional.Of(a.min),
				Max:   optional.Of(a.max),
				Avg:   float64(a.sum) / float64(a.count),
			}
		},
	)
}

// intProduct multiplies the values; the product of nothing is 1.
func intProduct() collect.Collector[int, int64] {
	return collect.OfIdentity(
		func() int64 { return 1 },
		func(acc int64, n int) int64 { return acc * int64(n) },
		func(left, right int64) int64 { return left * right },
	)
}

// countByLabel counts values under the label classify gives them.
func countByLabel[T any](classify func(T) string) collect.Collector[T, map[string]int64] {
	return collect.OfIdentity(
		func() map[string]int64 { return make(map[string]int64) },
		func(acc map[string]int64, v T) map[string]int64 {
			acc[classify(v)]++
			return acc
		},
		func(left, right map[string]int64) map[string]int64 {
			for k, n := range right {
				left[k] += n
			}
			return left
		},
	)
}

func aboveFive(n int) string {
	if n > 5 {
		return "Above 5"
	}
	return "5 or below"
}

func runCustomCollectors(ctx context.Context, env *Env) error {
	r := env.Report
	names := []string{"Ram", "Sita", "Hanuman", "Lakshman"}
	numbers := []int{5, 2, 8, 1, 9, 3, 7, 4, 6}
	nums := pipeline.FromSlice(numbers)

	r.Section("Joiner")
	joined, err := pipeline.Aggregate(ctx, pipeline.FromSlice(names), joinedString(", ", "[", "]"))
	if err != nil {
		return err
	}
	r.Result("Joined", joined)

	r.Section("Statistics")
	stats, err := pipeline.Aggregate(ctx, nums, intStatistics())
	if err != nil {
		return err
	}
	r.Result("Numbers", numbers)
	r.Result("Summary", stats)

	r.Section("Top N")
	top, err := pipeline.Aggregate(ctx, nums, collect.TopN(3, compare.Natural[int]()))
	if err != nil {
		return err
	}
	r.Result("Top 3", top)
	bottom, err := pipeline.Aggregate(ctx, nums, collect.TopN(3, compare.ReverseOrder[int]()))
	if err != nil {
		return err
	}
	r.Result("Bottom 3", bottom)

	r.Section("Immutable list")
	list, err := pipeline.Aggregate(ctx, pipeline.FromSlice(names), collect.ToImmutableList[string]())
	if err != nil {
		return err
	}
	r.Result("Length", list.Len())
	r.Result("Copy", list.Slice())

	r.Section("Product")
	small := []int{2, 3, 4, 5}
	product, err := collect.Slice(small, intProduct())
	if err != nil {
		return err
	}
	r.Result(fmt.Sprintf("Product of %v", small), product)

	r.Section("Conditional counter")
	byLabel, err := pipeline.Aggregate(ctx, nums, countByLabel(aboveFive))
	if err != nil {
		return err
	}
	r.Result("Counts", byLabel)

	r.Section("Parallel")
	parallelJoined, err := collect.Parallel(ctx, names, joinedString(" | ", "<<", ">>"), max(env.Workers, 1))
	if err != nil {
		return err
	}
	r.Result("Joined in parallel", parallelJoined)
	return nil
}
