package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/optional"
	"github.com/kbukum/streamkit/pipeline"
	"github.com/kbukum/streamkit/recipes"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 10, Slug: "second-highest", Title: "Second Highest Salary by Department", Run: runSecondHighest})
	defaultRegistry.MustRegister(Problem{ID: 12, Slug: "most-frequent", Title: "Most Frequent Element", Run: runMostFrequent})
	defaultRegistry.MustRegister(Problem{ID: 14, Slug: "top-n", Title: "Top N per Category", Run: runTopN})
}

func bySalary() compare.Comparator[employee] { return compare.By(employeeSalary) }

// secondHighestByDepartment finds the second best paid employee of each
// department. Departments with a single employee map to an empty Optional.
func secondHighestByDepartment(ctx context.Context, staff []employee) (map[string]optional.Optional[employee], error) {
	return recipes.NthHighestBy(ctx, staff, employeeDepartment, 2, bySalary())
}

// secondDistinctSalary returns the second largest distinct salary.
func secondDistinctSalary(ctx context.Context, staff []employee) (optional.Optional[float64], error) {
	salaries := pipeline.Distinct(pipeline.Transform(pipeline.FromSlice(staff), employeeSalary))
	desc := pipeline.Sorted(salaries, compare.ReverseOrder[float64]())
	return pipeline.FindFirst(ctx, pipeline.Skip(desc, 1))
}

func runSecondHighest(ctx context.Context, env *Env) error {
	r := env.Report
	staff := rankingStaff()

	second, err := secondHighestByDepartment(ctx, staff)
	if err != nil {
		return err
	}
	r.Result("Second highest", optionalNames(second, employeeName))

	r.Section("Edge cases")
	cases := []struct {
		label string
		staff []employee
	}{
		{"Single employee", []employee{{"E1", "Solo", 50000, "IT"}}},
		{"Tied top salaries", []employee{{"E1", "A", 80000, "IT"}, {"E2", "B", 80000, "IT"}, {"E3", "C", 70000, "IT"}}},
	}
	for _, c := range cases {
		got, err := secondHighestByDepartment(ctx, c.staff)
		if err != nil {
			return err
		}
		r.Result(c.label, optional.Map(got["IT"], employeeName).OrElse("None"))
	}
	distinct, err := secondDistinctSalary(ctx, cases[1].staff)
	if err != nil {
		return err
	}
	r.Result("Second distinct salary", distinct)

	r.Section("Nth highest in IT")
	it, err := pipeline.Collect(ctx, pipeline.Filter(pipeline.FromSlice(staff), func(e employee) bool {
		return e.Department == "IT"
	}))
	if err != nil {
		return err
	}
	for n := 1; n <= 5; n++ {
		nth, err := recipes.NthHighest(ctx, it, n, bySalary())
		if err != nil {
			return err
		}
		r.Result(fmt.Sprintf("n=%d", n), optional.Map(nth, employee.String).OrElse("None"))
	}
	return nil
}

func formatFrequency[T any](f recipes.Frequency[T]) string {
	return fmt.Sprintf("%v (%d times)", f.Value, f.Count)
}

func runMostFrequent(ctx context.Context, env *Env) error {
	r := env.Report
	nums := []int{1, 3, 2, 3, 3, 2, 1, 3}

	r.Result("Input", nums)
	r.Result("Most frequent", recipes.MostFrequent(nums))
	r.Result("With count", optional.Map(recipes.MostFrequentWithCount(nums), formatFrequency[int]).OrElse("None"))
	r.Result("Least frequent", recipes.LeastFrequent(nums))

	r.Section("Ties")
	tied := []int{1, 2, 2, 3, 3, 4}
	r.Result("Input", tied)
	r.Result("First of the most frequent", recipes.MostFrequent(tied))
	r.Result("All most frequent", recipes.AllMostFrequent(tied))

	r.Section("Kth most frequent")
	ranked := []int{1, 1, 1, 2, 2, 2, 2, 3, 3}
	for k := 1; k <= 4; k++ {
		kth, err := recipes.KthMostFrequent(ranked, k)
		if err != nil {
			return err
		}
		r.Result(fmt.Sprintf("k=%d", k), kth)
	}

	r.Section("Words")
	words := strings.Fields("the quick brown fox jumps over the lazy dog the")
	r.Result("Most frequent word", optional.Map(recipes.MostFrequentWithCount(words), formatFrequency[string]).OrElse("None"))
	top3, err := pipeline.Collect(ctx, pipeline.Transform(
		pipeline.Limit(pipeline.FromSlice(recipes.RankByFrequency(words)), 3),
		formatFrequency[string],
	))
	if err != nil {
		return err
	}
	r.Result("Top 3 words", top3)

	r.Section("Edge cases")
	r.Result("Empty input", recipes.MostFrequent([]int{}))
	r.Result("All distinct", recipes.MostFrequent([]string{"a", "b", "c"}))
	if _, err := recipes.KthMostFrequent(ranked, 0); err != nil {
		r.Result("k=0", err)
	}
	return nil
}

func itemPrice(c catalogItem) float64   { return c.Price }
func itemName(c catalogItem) string     { return c.Name }
func itemCategory(c catalogItem) string { return c.Category }

func byItemPrice() compare.Comparator[catalogItem] { return compare.By(itemPrice) }

// topPerCategory returns the n most expensive items of each category.
func topPerCategory(ctx context.Context, items []catalogItem, n int) (map[string][]catalogItem, error) {
	return recipes.TopNPerGroup(ctx, items, itemCategory, n, byItemPrice())
}

func runTopN(ctx context.Context, env *Env) error {
	r := env.Report
	items := catalog()

	r.Section("Top 3 per category")
	perCategory, err := topPerCategory(ctx, items, 3)
	if err != nil {
		return err
	}
	for _, cat := range sortedKeys(perCategory) {
		r.Result(cat, perCategory[cat])
	}

	r.Section("Overall")
	top, err := recipes.TopN(ctx, items, 3, byItemPrice())
	if err != nil {
		return err
	}
	r.Result("Top 3", top)
	bottom, err := recipes.BottomN(ctx, items, 3, byItemPrice())
	if err != nil {
		return err
	}
	r.Result("Bottom 3", bottom)

	topSrc := pipeline.FromSlice(top)
	total, err := pipeline.Sum(ctx, topSrc, itemPrice)
	if err != nil {
		return err
	}
	r.Result("Top 3 total", fmt.Sprintf("%.0f", total))
	avg, err := pipeline.Average(ctx, topSrc, itemPrice)
	if err != nil {
		return err
	}
	r.Result("Top 3 average", fmt.Sprintf("%.2f", avg.OrElse(0)))
	names, err := pipeline.Join(ctx, pipeline.Transform(topSrc, itemName), ", ", "", "")
	if err != nil {
		return err
	}
	r.Result("Top 3 names", names)

	r.Section("Small groups")
	fashion, err := topPerCategory(ctx, items, 5)
	if err != nil {
		return err
	}
	r.Result("Top 5 Fashion", fashion["Fashion"])
	return nil
}
