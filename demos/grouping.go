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
	defaultRegistry.MustRegister(Problem{ID: 8, Slug: "grouping", Title: "Group By", Run: runGrouping})
	defaultRegistry.MustRegister(Problem{ID: 9, Slug: "partitioning", Title: "Partition By", Run: runPartitioning})
	defaultRegistry.MustRegister(Problem{ID: 17, Slug: "downstream", Title: "Downstream Collectors", Run: runDownstream})
	defaultRegistry.MustRegister(Problem{ID: 18, Slug: "multi-level", Title: "Multi-Level Grouping", Run: runMultiLevel})
}

// twoDecimals renders the values of m with two decimal places.
func twoDecimals[K comparable](m map[K]float64) map[K]string {
	out := make(map[K]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprintf("%.2f", v)
	}
	return out
}

// optionalNames reduces a map of optional employees to their names.
func optionalNames[K comparable, T any](m map[K]optional.Optional[T], name func(T) string) map[K]string {
	out := make(map[K]string, len(m))
	for k, v := range m {
		out[k] = optional.Map(v, name).OrElse("None")
	}
	return out
}

func salaryBand(e employee) string {
	if e.Salary >= 60000 {
		return "High"
	}
	return "Normal"
}

// namesByDepartment groups the employee names of each department.
func namesByDepartment(ctx context.Context, staff *pipeline.Pipeline[employee]) (map[string][]string, error) {
	return pipeline.Aggregate(ctx, staff,
		collect.GroupingBy(employeeDepartment, collect.Mapping(employeeName, collect.ToList[string]())))
}

func runGrouping(ctx context.Context, env *Env) error {
	r := env.Report
	src := pipeline.FromSlice(staff())

	names, err := namesByDepartment(ctx, src)
	if err != nil {
		return err
	}
	r.Result("Names by department", names)

	counts, err := pipeline.Aggregate(ctx, src, collect.CountingBy(employeeDepartment))
	if err != nil {
		return err
	}
	r.Result("Headcount", counts)

	totals, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(employeeDepartment, collect.Summing(employeeSalary)))
	if err != nil {
		return err
	}
	r.Result("Total salary", totals)

	averages, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(employeeDepartment, collect.Averaging(employeeSalary)))
	if err != nil {
		return err
	}
	r.Result("Average salary", twoDecimals(averages))

	highest, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(employeeDepartment, collect.MaxBy(compare.By(employeeSalary))))
	if err != nil {
		return err
	}
	r.Result("Highest paid", optionalNames(highest, employeeName))

	r.Section("Nested grouping")
	bands, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(employeeDepartment,
		collect.GroupingBy(salaryBand, collect.Mapping(employeeName, collect.ToList[string]()))))
	if err != nil {
		return err
	}
	r.Result("Department and band", bands)

	joined, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(employeeDepartment,
		collect.Mapping(employeeName, collect.Joining(", ", "", ""))))
	if err != nil {
		return err
	}
	r.Result("Joined names", joined)

	r.Section("Filter before grouping")
	wellPaid, err := namesByDepartment(ctx, pipeline.Filter(src, func(e employee) bool { return e.Salary > 50000 }))
	if err != nil {
		return err
	}
	r.Result("Above 50000", wellPaid)
	return nil
}

func studentName(s student) string { return s.Name }
func studentMarks(s student) int   { return s.Marks }
func passed(s student) bool        { return s.Marks >= 40 }

// passFail splits student names into passing (true) and failing (false).
// Both keys are always present.
func passFail(ctx context.Context, ss []student) (map[bool][]string, error) {
	return pipeline.Aggregate(ctx, pipeline.FromSlice(ss),
		collect.PartitioningBy(passed, collect.Mapping(studentName, collect.ToList[string]())))
}

func runPartitioning(ctx context.Context, env *Env) error {
	r := env.Report
	ss := students()
	src := pipeline.FromSlice(ss)

	groups, err := passFail(ctx, ss)
	if err != nil {
		return err
	}
	r.Result("Passed", groups[true])
	r.Result("Failed", groups[false])

	counts, err := pipeline.Aggregate(ctx, src, collect.PartitioningBy(passed, collect.Counting[student]()))
	if err != nil {
		return err
	}
	r.Result("Pass count", counts[true])
	r.Result("Fail count", counts[false])

	averages, err := pipeline.Aggregate(ctx, src, collect.PartitioningBy(passed, collect.Averaging(studentMarks)))
	if err != nil {
		return err
	}
	r.Result("Average marks", twoDecimals(averages))

	joined, err := pipeline.Aggregate(ctx, src, collect.PartitioningBy(passed,
		collect.Mapping(studentName, collect.Joining(", ", "", ""))))
	if err != nil {
		return err
	}
	r.Result("Joined", joined)

	toppers, err := pipeline.Aggregate(ctx, src, collect.PartitioningBy(passed, collect.MaxBy(compare.By(studentMarks))))
	if err != nil {
		return err
	}
	r.Result("Topper", optionalNames(toppers, studentName))

	r.Section("Everyone passes")
	allPass := pipeline.Filter(src, passed)
	partitioned, err := pipeline.Aggregate(ctx, allPass, collect.PartitioningByList(passed))
	if err != nil {
		return err
	}
	r.Result("Partitioned keys", len(partitioned))
	r.Result("Failed side", partitioned[false])
	grouped, err := pipeline.Aggregate(ctx, allPass, collect.GroupingByList(passed))
	if err != nil {
		return err
	}
	r.Result("Grouped keys", len(grouped))
	return nil
}

func skilledName(e skilledEmployee) string       { return e.Name }
func skilledDepartment(e skilledEmployee) string { return e.Department }
func skilledSalary(e skilledEmployee) float64    { return e.Salary }
func skilledSkills(e skilledEmployee) []string   { return e.Skills }

// skillsByDepartment gathers the distinct skills of each department, sorted.
func skillsByDepartment(ctx context.Context, staff []skilledEmployee) (map[string][]string, error) {
	return pipeline.Aggregate(ctx, pipeline.FromSlice(staff), collect.GroupingBy(skilledDepartment,
		collect.CollectingAndThen(collect.FlatMapping(skilledSkills, collect.ToSet[string]()), sortedKeys[string, struct{}])))
}

// joinNames concatenates names with " & ".
func joinNames(a, b string) string {
	if a == "" {
		return b
	}
	return a + " & " + b
}

func runDownstream(ctx context.Context, env *Env) error {
	r := env.Report
	src := pipeline.FromSlice(skilledStaff())
	names := collect.Mapping(skilledName, collect.ToList[string]())
	byDept := func(downstream collect.Collector[skilledEmployee, []string]) collect.Collector[skilledEmployee, map[string][]string] {
		return collect.GroupingBy(skilledDepartment, downstream)
	}

	r.Section("Reshaping")
	mapped, err := pipeline.Aggregate(ctx, src, byDept(names))
	if err != nil {
		return err
	}
	r.Result("Mapping", mapped)

	filtered, err := pipeline.Aggregate(ctx, src, byDept(collect.Filtering(func(e skilledEmployee) bool {
		return e.Salary > 50000
	}, names)))
	if err != nil {
		return err
	}
	r.Result("Filtering above 50000", filtered)

	skills, err := skillsByDepartment(ctx, skilledStaff())
	if err != nil {
		return err
	}
	r.Result("Flat mapping skills", skills)

	frozen, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment,
		collect.Mapping(skilledName, collect.ToImmutableList[string]())))
	if err != nil {
		return err
	}
	for _, dept := range sortedKeys(frozen) {
		r.Result("Immutable "+dept, frozen[dept].Slice())
	}

	r.Section("Numbers")
	counts, err := pipeline.Aggregate(ctx, src, collect.CountingBy(skilledDepartment))
	if err != nil {
		return err
	}
	r.Result("Counting", counts)
	sums, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment, collect.Summing(skilledSalary)))
	if err != nil {
		return err
	}
	r.Result("Summing", sums)
	avgs, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment, collect.Averaging(skilledSalary)))
	if err != nil {
		return err
	}
	r.Result("Averaging", twoDecimals(avgs))
	top, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment, collect.MaxBy(compare.By(skilledSalary))))
	if err != nil {
		return err
	}
	r.Result("Max by salary", optionalNames(top, skilledName))

	r.Section("Strings")
	joined, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment,
		collect.Mapping(skilledName, collect.Joining(", ", "", ""))))
	if err != nil {
		return err
	}
	r.Result("Joining", joined)
	reduced, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(skilledDepartment,
		collect.Reducing("", skilledName, joinNames)))
	if err != nil {
		return err
	}
	r.Result("Reducing", reduced)

	r.Section("Filter before versus filtering")
	rich := func(e skilledEmployee) bool { return e.Salary > 70000 }
	before, err := pipeline.Aggregate(ctx, pipeline.Filter(src, rich), byDept(names))
	if err != nil {
		return err
	}
	r.Result("Filter first", before)
	inside, err := pipeline.Aggregate(ctx, src, byDept(collect.Filtering(rich, names)))
	if err != nil {
		return err
	}
	r.Result("Filtering downstream", inside)
	return nil
}

func placementName(p placement) string       { return p.Name }
func placementDepartment(p placement) string { return p.Department }
func placementLocation(p placement) string   { return p.Location }
func placementLevel(p placement) string      { return p.Level }
func placementSalary(p placement) float64    { return p.Salary }

type deptLocation struct {
	Department string
	Location   string
}

// placementTree groups names by department, location and level.
func placementTree(ctx context.Context, ps []placement) (map[string]map[string]map[string][]string, error) {
	return pipeline.Aggregate(ctx, pipeline.FromSlice(ps),
		collect.GroupingBy(placementDepartment,
			collect.GroupingBy(placementLocation,
				collect.GroupingBy(placementLevel,
					collect.Mapping(placementName, collect.ToList[string]())))))
}

func runMultiLevel(ctx context.Context, env *Env) error {
	r := env.Report
	ps := placements()
	src := pipeline.FromSlice(ps)
	names := collect.Mapping(placementName, collect.ToList[string]())

	r.Section("Nested keys")
	two, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(placementDepartment,
		collect.GroupingBy(placementLocation, names)))
	if err != nil {
		return err
	}
	r.Result("Department and location", two)

	tree, err := placementTree(ctx, ps)
	if err != nil {
		return err
	}
	r.Result("Department, location and level", tree)

	counts, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(placementDepartment,
		collect.CountingBy(placementLocation)))
	if err != nil {
		return err
	}
	r.Result("Counts", counts)

	totals, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(placementDepartment,
		collect.GroupingBy(placementLocation, collect.Summing(placementSalary))))
	if err != nil {
		return err
	}
	r.Result("Salary totals", totals)

	r.Section("Flat keys")
	composite, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(func(p placement) string {
		return p.Department + "|" + p.Location
	}, names))
	if err != nil {
		return err
	}
	r.Result("Joined key", composite)

	structKey, err := pipeline.Aggregate(ctx, src, collect.CountingBy(func(p placement) deptLocation {
		return deptLocation{p.Department, p.Location}
	}))
	if err != nil {
		return err
	}
	r.Result("Struct key", structKey)

	r.Section("Lookups")
	// Indexing a missing key of a nested map yields an empty inner map.
	r.Result("IT / Delhi / Senior", len(tree["IT"]["Delhi"]["Senior"]))
	r.Result("IT / Bangalore / Junior", strings.Join(tree["IT"]["Bangalore"]["Junior"], ", "))
	return nil
}
