package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
	"github.com/kbukum/streamkit/pipeline"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 1, Slug: "filter-even", Title: "Filter Even Numbers", Run: runFilterEven})
	defaultRegistry.MustRegister(Problem{ID: 2, Slug: "transform", Title: "Transform Elements", Run: runTransform})
	defaultRegistry.MustRegister(Problem{ID: 3, Slug: "find-first", Title: "Find First Matching Element", Run: runFindFirst})
	defaultRegistry.MustRegister(Problem{ID: 4, Slug: "sum-aggregate", Title: "Sum and Aggregate", Run: runSumAggregate})
}

func isEven(n int) bool { return n%2 == 0 }

// filterInts keeps the values matching pred, in source order.
func filterInts(ctx context.Context, nums []int, pred func(int) bool) ([]int, error) {
	return pipeline.Collect(ctx, pipeline.Filter(pipeline.FromSlice(nums), pred))
}

func runFilterEven(ctx context.Context, env *Env) error {
	r := env.Report
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	r.Section("Even numbers")
	evens, err := filterInts(ctx, nums, isEven)
	if err != nil {
		return err
	}
	r.Result("Input", nums)
	r.Result("Evens", evens)

	more := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15, 20, 25}
	r.Section("Other predicates")
	filters := []struct {
		label string
		pred  func(int) bool
	}{
		{"Greater than 5", func(n int) bool { return n > 5 }},
		{"Divisible by 3", func(n int) bool { return n%3 == 0 }},
		{"Even and greater than 5", func(n int) bool { return isEven(n) && n > 5 }},
	}
	for _, f := range filters {
		got, err := filterInts(ctx, more, f.pred)
		if err != nil {
			return err
		}
		r.Result(f.label, got)
	}
	return nil
}

func runTransform(ctx context.Context, env *Env) error {
	r := env.Report
	names := []string{"ram", "sita", "lakshman", "hanuman", "ravana"}
	src := pipeline.FromSlice(names)

	r.Section("Map")
	upper, err := pipeline.Collect(ctx, pipeline.Transform(src, strings.ToUpper))
	if err != nil {
		return err
	}
	r.Result("Uppercase", upper)

	doubled, err := pipeline.Collect(ctx, pipeline.Transform(pipeline.Range(1, 6), func(n int) int { return n * 2 }))
	if err != nil {
		return err
	}
	r.Result("Doubled", doubled)

	lengths, err := pipeline.Collect(ctx, pipeline.Transform(src, func(s string) int { return len(s) }))
	if err != nil {
		return err
	}
	r.Result("Lengths", lengths)

	prefixed, err := pipeline.Collect(ctx, pipeline.Transform(src, func(s string) string { return "Sri " + s }))
	if err != nil {
		return err
	}
	r.Result("Prefixed", prefixed)

	r.Section("Filter then map")
	long, err := pipeline.Collect(ctx, pipeline.Transform(
		pipeline.Filter(src, func(s string) bool { return len(s) > 4 }),
		strings.ToUpper,
	))
	if err != nil {
		return err
	}
	r.Result("Long names uppercased", long)
	return nil
}

// firstEarner returns the first employee of dept earning more than min.
func firstEarner(ctx context.Context, staff []employee, dept string, floor float64) (optional.Optional[employee], error) {
	return pipeline.FindFirst(ctx, pipeline.Filter(pipeline.FromSlice(staff), func(e employee) bool {
		return e.Department == dept && e.Salary > floor
	}))
}

func findByID(ctx context.Context, staff []employee, id string) (optional.Optional[employee], error) {
	return pipeline.FindFirst(ctx, pipeline.Filter(pipeline.FromSlice(staff), func(e employee) bool {
		return e.ID == id
	}))
}

func runFindFirst(ctx context.Context, env *Env) error {
	r := env.Report
	staff := findFirstStaff()

	r.Section("First IT employee earning more than 50000")
	found, err := firstEarner(ctx, staff, "IT", 50000)
	if err != nil {
		return err
	}
	r.Result("Found", found)

	r.Section("Handling absence")
	missing, err := firstEarner(ctx, staff, "IT", 100000)
	if err != nil {
		return err
	}
	r.Result("Or default", missing.OrElse(employee{ID: "NONE", Name: "Not found"}))

	byID, err := findByID(ctx, staff, "E999")
	if err != nil {
		return err
	}
	if _, err := byID.OrError(errors.NotFound("employee", "E999")); err != nil {
		r.Result("Or error", err)
	}

	hr, err := firstEarner(ctx, staff, "HR", 0)
	if err != nil {
		return err
	}
	hr.IfPresent(func(e employee) { r.Result("If present", e.Name) })

	someone, err := pipeline.FindAny(ctx, pipeline.Filter(pipeline.FromSlice(staff), func(e employee) bool {
		return e.Salary > 60000
	}))
	if err != nil {
		return err
	}
	r.Result("Any above 60000", optional.Map(someone, employeeName))

	rich, err := pipeline.AnyMatch(ctx, pipeline.FromSlice(staff), func(e employee) bool { return e.Salary > 70000 })
	if err != nil {
		return err
	}
	r.Result("Anyone above 70000", rich)
	return nil
}

func txAmount(t transaction) float64 { return t.Amount }

// currencyTotal sums the amounts of transactions in currency.
func currencyTotal(ctx context.Context, txs []transaction, currency string) (float64, error) {
	return pipeline.Sum(ctx, pipeline.Filter(pipeline.FromSlice(txs), func(t transaction) bool {
		return t.Currency == currency
	}), txAmount)
}

func runSumAggregate(ctx context.Context, env *Env) error {
	r := env.Report
	txs := transactions()
	src := pipeline.FromSlice(txs)

	r.Section("Totals")
	inr, err := currencyTotal(ctx, txs, "INR")
	if err != nil {
		return err
	}
	r.Result("INR total", fmt.Sprintf("%.1f", inr))

	count, err := pipeline.Count(ctx, src)
	if err != nil {
		return err
	}
	r.Result("Transactions", count)

	byAmount := compare.By(txAmount)
	largest, err := pipeline.Max(ctx, src, byAmount)
	if err != nil {
		return err
	}
	r.Result("Largest", largest)
	smallest, err := pipeline.Min(ctx, src, byAmount)
	if err != nil {
		return err
	}
	r.Result("Smallest", smallest)

	avg, err := pipeline.Average(ctx, src, txAmount)
	if err != nil {
		return err
	}
	r.Result("Average", fmt.Sprintf("%.1f", avg.OrElse(0)))

	r.Section("Summary statistics")
	stats, err := pipeline.Summarize(ctx, src, txAmount)
	if err != nil {
		return err
	}
	r.Result("Count", stats.Count)
	r.Result("Sum", stats.Sum)
	r.Result("Min", stats.Min.OrElse(0))
	r.Result("Max", stats.Max.OrElse(0))
	r.Result("Average", stats.Average())

	r.Section("Reductions")
	product, err := pipeline.Aggregate(ctx, pipeline.Range(1, 6), collect.Product(func(n int) int { return n }))
	if err != nil {
		return err
	}
	r.Result("Product of 1..5", product)

	empty, err := pipeline.Sum(ctx, pipeline.Empty[transaction](), txAmount)
	if err != nil {
		return err
	}
	r.Result("Sum of nothing", empty)
	return nil
}
