package collect

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
)

type employee struct {
	Name       string
	Salary     float64
	Department string
	City       string
	Skills     []string
}

func employees() []employee {
	return []employee{
		{"Ram", 45000, "IT", "Bangalore", []string{"Java", "SQL"}},
		{"Sita", 65000, "HR", "Mumbai", []string{"Excel", "Communication"}},
		{"Arjun", 55000, "IT", "Bangalore", []string{"Python", "Java"}},
		{"Priya", 72000, "Finance", "Delhi", []string{"Excel", "Accounting"}},
		{"Kiran", 48000, "IT", "Mumbai", []string{"JavaScript", "React"}},
		{"Meera", 58000, "HR", "Bangalore", nil},
	}
}

func name(e employee) string       { return e.Name }
func department(e employee) string { return e.Department }
func salary(e employee) float64    { return e.Salary }
func skills(e employee) []string   { return e.Skills }

func bySalary() compare.Comparator[employee] { return compare.By(salary) }

func mustCollect[T, R any](t *testing.T, items []T, c Collector[T, R]) R {
	t.Helper()
	got, err := Slice(items, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestToList_PreservesOrder(t *testing.T) {
	got := mustCollect(t, []int{3, 1, 2}, ToList[int]())
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("got %v", got)
	}
}

func TestToList_EmptyIsNonNil(t *testing.T) {
	got := mustCollect(t, nil, ToList[int]())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestToSet(t *testing.T) {
	got := mustCollect(t, []string{"Laptop", "Mouse", "Laptop"}, ToSet[string]())
	if len(got) != 2 {
		t.Errorf("expected 2 unique products, got %v", got)
	}
}

func TestCountingSummingAveraging(t *testing.T) {
	emps := employees()
	if n := mustCollect(t, emps, Counting[employee]()); n != 6 {
		t.Errorf("count = %d, want 6", n)
	}
	if s := mustCollect(t, emps, Summing(salary)); s != 343000 {
		t.Errorf("sum = %v, want 343000", s)
	}
	if avg := mustCollect(t, []employee{{Salary: 10}, {Salary: 20}}, Averaging(salary)); avg != 15 {
		t.Errorf("avg = %v, want 15", avg)
	}
}

func TestEmptyNumericCollectors(t *testing.T) {
	if n := mustCollect(t, nil, Counting[employee]()); n != 0 {
		t.Errorf("count = %d", n)
	}
	if s := mustCollect(t, nil, Summing(salary)); s != 0 {
		t.Errorf("sum = %v", s)
	}
	if avg := mustCollect(t, nil, Averaging(salary)); avg != 0 {
		t.Errorf("averaging an empty group must be 0.0, got %v", avg)
	}
	if p := mustCollect(t, nil, Product(func(n int) int { return n })); p != 1 {
		t.Errorf("product of nothing must be 1, got %d", p)
	}
}

func TestProduct(t *testing.T) {
	got := mustCollect(t, []int{2, 3, 4, 5}, Product(func(n int) int64 { return int64(n) }))
	if got != 120 {
		t.Errorf("got %d, want 120", got)
	}
}

func TestSummarizing(t *testing.T) {
	stats := mustCollect(t, []int{5, 2, 8, 1, 9, 3, 7, 4, 6}, Summarizing(func(n int) int { return n }))
	if stats.Count != 9 || stats.Sum != 45 {
		t.Errorf("count/sum = %d/%d", stats.Count, stats.Sum)
	}
	if stats.Min.OrElse(-1) != 1 || stats.Max.OrElse(-1) != 9 {
		t.Errorf("min/max = %v/%v", stats.Min, stats.Max)
	}
	if stats.Average() != 5 {
		t.Errorf("avg = %v", stats.Average())
	}

	empty := mustCollect(t, nil, Summarizing(func(n int) int { return n }))
	if empty.Min.IsPresent() || empty.Max.IsPresent() || empty.Average() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestMaxByMinBy(t *testing.T) {
	emps := employees()
	maxE := mustCollect(t, emps, MaxBy(bySalary()))
	if v, ok := maxE.Get(); !ok || v.Name != "Priya" {
		t.Errorf("max = %v", maxE)
	}
	minE := mustCollect(t, emps, MinBy(bySalary()))
	if v, ok := minE.Get(); !ok || v.Name != "Ram" {
		t.Errorf("min = %v", minE)
	}
	if mustCollect(t, nil, MaxBy(bySalary())).IsPresent() {
		t.Error("max of empty must be absent")
	}
}

func TestMaxBy_FirstWinsTies(t *testing.T) {
	tied := []employee{{Name: "A", Salary: 1}, {Name: "B", Salary: 1}}
	got := mustCollect(t, tied, MaxBy(bySalary()))
	if v, _ := got.Get(); v.Name != "A" {
		t.Errorf("expected earliest on tie, got %s", v.Name)
	}
}

func TestJoining(t *testing.T) {
	names := []string{"Ram", "Sita", "Hanuman", "Lakshman"}
	if got := mustCollect(t, names, Joining(", ", "[", "]")); got != "[Ram, Sita, Hanuman, Lakshman]" {
		t.Errorf("got %q", got)
	}
	if got := mustCollect(t, nil, Joining(", ", "[", "]")); got != "[]" {
		t.Errorf("got %q", got)
	}
}

func TestReducing(t *testing.T) {
	got := mustCollect(t, employees()[:3], Reducing("", name, func(a, b string) string {
		if a == "" {
			return b
		}
		return a + " & " + b
	}))
	if got != "Ram & Sita & Arjun" {
		t.Errorf("got %q", got)
	}
}

func TestToImmutableList(t *testing.T) {
	list := mustCollect(t, []string{"a", "b"}, ToImmutableList[string]())
	if list.Len() != 2 || list.At(1) != "b" {
		t.Fatalf("unexpected list %v", list.Slice())
	}
	cp := list.Slice()
	cp[0] = "changed"
	if list.At(0) != "a" {
		t.Error("modifying the copy must not change the list")
	}
	if got := slices.Collect(list.Values()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("values = %v", got)
	}
}

func TestMapping(t *testing.T) {
	got := mustCollect(t, employees(), Mapping(name, Joining(",", "", "")))
	if got != "Ram,Sita,Arjun,Priya,Kiran,Meera" {
		t.Errorf("got %q", got)
	}
}

func TestFlatMapping_NilContributesNothing(t *testing.T) {
	got := mustCollect(t, employees(), FlatMapping(skills, ToList[string]()))
	if len(got) != 10 {
		t.Errorf("expected 10 skills, got %d: %v", len(got), got)
	}
}

func TestCollectingAndThen(t *testing.T) {
	got := mustCollect(t, employees(), CollectingAndThen(Counting[employee](), func(n int64) string {
		return strings.Repeat("*", int(n))
	}))
	if got != "******" {
		t.Errorf("got %q", got)
	}
}

func TestToMapMerge(t *testing.T) {
	type order struct {
		product string
		price   float64
	}
	orders := []order{{"Laptop", 75000}, {"Mouse", 500}, {"Laptop", 75000}, {"Keyboard", 2000}}
	summed := mustCollect(t, orders, ToMapMerge(
		func(o order) string { return o.product },
		func(o order) float64 { return o.price },
		func(a, b float64) float64 { return a + b },
	))
	want := map[string]float64{"Laptop": 150000, "Mouse": 500, "Keyboard": 2000}
	if !maps.Equal(summed, want) {
		t.Errorf("got %v, want %v", summed, want)
	}
}

func TestToOrderedMap_KeepsFirstInsertion(t *testing.T) {
	words := []string{"pear", "apple", "plum", "avocado", "peach"}
	m := mustCollect(t, words, ToOrderedMap(
		func(w string) byte { return w[0] },
		func(w string) string { return w },
		func(existing, _ string) string { return existing },
	))
	if got := m.Keys(); !slices.Equal(got, []byte{'p', 'a'}) {
		t.Errorf("keys = %q", got)
	}
	if got := m.Values(); !slices.Equal(got, []string{"pear", "apple"}) {
		t.Errorf("values = %v", got)
	}
	if v, ok := m.Get('a'); !ok || v != "apple" {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
}

func TestOf_CustomCollector(t *testing.T) {
	// string joiner built from the four operations
	joiner := Of(
		func() *strings.Builder { return &strings.Builder{} },
		func(b *strings.Builder, s string) *strings.Builder {
			if b.Len() > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(s)
			return b
		},
		func(l, r *strings.Builder) *strings.Builder {
			if l.Len() > 0 && r.Len() > 0 {
				l.WriteString(" | ")
			}
			l.WriteString(r.String())
			return l
		},
		func(b *strings.Builder) string { return "<<" + b.String() + ">>" },
	)
	got := mustCollect(t, []string{"Ram", "Sita"}, joiner)
	if got != "<<Ram | Sita>>" {
		t.Errorf("got %q", got)
	}
}

func TestOf_NilFunctionsRejected(t *testing.T) {
	tests := []struct {
		name string
		c    Collector[int, int]
	}{
		{"supplier", Of[int, int, int](nil, func(a, _ int) int { return a }, func(a, _ int) int { return a }, func(a int) int { return a })},
		{"accumulator", Of[int, int, int](func() int { return 0 }, nil, func(a, _ int) int { return a }, func(a int) int { return a })},
		{"combiner", Of[int, int, int](func() int { return 0 }, func(a, _ int) int { return a }, nil, func(a int) int { return a })},
		{"finisher", Of[int, int, int](func() int { return 0 }, func(a, _ int) int { return a }, func(a, _ int) int { return a }, nil)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Slice([]int{1}, tc.c)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

func TestNilCallbacksPropagateThroughComposition(t *testing.T) {
	var key func(string) int
	_, err := Slice(employees(), Mapping(name, GroupingBy(key, Counting[string]())))
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestSeq(t *testing.T) {
	got, err := Seq(slices.Values([]int{1, 2, 3}), Summing(func(n int) int { return n }))
	if err != nil || got != 6 {
		t.Errorf("got (%d, %v)", got, err)
	}
}
