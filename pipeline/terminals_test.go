package pipeline

import (
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	apperrors "github.com/kbukum/streamkit/errors"
)

func salary(e employee) float64 { return e.Salary }

func TestFindFirst_SourceOrder(t *testing.T) {
	it := Filter(FromSlice(employees()), func(e employee) bool {
		return e.Department == "IT" && e.Salary > 50000
	})
	got, err := FindFirst(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := got.Get()
	if !ok || e.Salary != 55000 {
		t.Errorf("got %v, want the 55000 employee", got)
	}
}

func TestFindFirst_PullsOnce(t *testing.T) {
	pulls := 0
	p := Peek(Range(0, 100), func(int) { pulls++ })
	if _, err := FindFirst(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if pulls != 1 {
		t.Errorf("pulled %d values", pulls)
	}
}

func TestEmptyTerminals(t *testing.T) {
	ctx := context.Background()
	empty := Empty[employee]()

	if n, err := Count(ctx, empty); err != nil || n != 0 {
		t.Errorf("Count = %d, %v", n, err)
	}
	if s, err := Sum(ctx, empty, salary); err != nil || s != 0 {
		t.Errorf("Sum = %v, %v", s, err)
	}
	if m, _ := Max(ctx, empty, compare.By(salary)); m.IsPresent() {
		t.Error("Max of empty must be absent")
	}
	if m, _ := Min(ctx, empty, compare.By(salary)); m.IsPresent() {
		t.Error("Min of empty must be absent")
	}
	if a, _ := Average(ctx, empty, salary); a.IsPresent() {
		t.Error("Average of empty must be absent")
	}
	if f, _ := FindFirst(ctx, empty); f.IsPresent() {
		t.Error("FindFirst of empty must be absent")
	}
	if f, _ := FindAny(ctx, empty); f.IsPresent() {
		t.Error("FindAny of empty must be absent")
	}
}

func TestNumericTerminals(t *testing.T) {
	ctx := context.Background()
	p := FromSlice(employees())

	sum, err := Sum(ctx, p, salary)
	if err != nil || sum != 285000 {
		t.Errorf("Sum = %v, %v", sum, err)
	}
	avg, _ := Average(ctx, p, salary)
	if v, ok := avg.Get(); !ok || v != 57000 {
		t.Errorf("Average = %v", avg)
	}
	top, _ := Max(ctx, p, compare.By(salary))
	if e, _ := top.Get(); e.Name != "Priya" {
		t.Errorf("Max = %v", top)
	}
	low, _ := Min(ctx, p, compare.By(salary))
	if e, _ := low.Get(); e.Name != "Ram" {
		t.Errorf("Min = %v", low)
	}
	stats, _ := Summarize(ctx, p, salary)
	if stats.Count != 5 || stats.Min.OrElse(0) != 45000 || stats.Max.OrElse(0) != 72000 {
		t.Errorf("Summarize = %+v", stats)
	}
}

func TestFold(t *testing.T) {
	got, err := Fold(context.Background(), Range(1, 6), 1, func(acc, n int) int { return acc * n })
	if err != nil || got != 120 {
		t.Errorf("Fold = %d, %v", got, err)
	}
	empty, _ := Fold(context.Background(), Empty[int](), 7, func(acc, n int) int { return acc + n })
	if empty != 7 {
		t.Errorf("Fold over empty must return identity, got %d", empty)
	}
}

func TestMatchers(t *testing.T) {
	ctx := context.Background()
	even := func(n int) bool { return n%2 == 0 }
	tests := []struct {
		name      string
		input     []int
		any       bool
		all, none bool
	}{
		{"empty", nil, false, true, true},
		{"all even", []int{2, 4}, true, true, false},
		{"mixed", []int{1, 2}, true, false, false},
		{"all odd", []int{1, 3}, false, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := FromSlice(tc.input)
			if got, _ := AnyMatch(ctx, p, even); got != tc.any {
				t.Errorf("AnyMatch = %v", got)
			}
			if got, _ := AllMatch(ctx, p, even); got != tc.all {
				t.Errorf("AllMatch = %v", got)
			}
			if got, _ := NoneMatch(ctx, p, even); got != tc.none {
				t.Errorf("NoneMatch = %v", got)
			}
		})
	}
}

func TestAnyMatch_ShortCircuits(t *testing.T) {
	pulls := 0
	p := Peek(Range(0, 100), func(int) { pulls++ })
	ok, _ := AnyMatch(context.Background(), p, func(n int) bool { return n == 4 })
	if !ok || pulls != 5 {
		t.Errorf("ok=%v pulls=%d", ok, pulls)
	}
}

func TestToMap_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	byDept := func(e employee) string { return e.Department }
	_, err := ToMap(ctx, FromSlice(employees()), byDept, salary)
	if !apperrors.Is(err, apperrors.ErrCodeDuplicateKey) {
		t.Fatalf("expected DUPLICATE_KEY, got %v", err)
	}

	merged, err := ToMapMerge(ctx, FromSlice(employees()), byDept, salary, func(a, b float64) float64 { return a + b })
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"IT": 148000, "HR": 65000, "Finance": 72000}
	if !maps.Equal(merged, want) {
		t.Errorf("got %v, want %v", merged, want)
	}
}

func TestToMap_UniqueKeys(t *testing.T) {
	got, err := ToMap(context.Background(), FromSlice(employees()),
		func(e employee) string { return e.Name }, salary)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 || got["Kiran"] != 48000 {
		t.Errorf("got %v", got)
	}
}

func TestToSet(t *testing.T) {
	got, err := ToSet(context.Background(), Of("Laptop", "Mouse", "Laptop"))
	if err != nil || len(got) != 2 {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestJoin(t *testing.T) {
	got, err := Join(context.Background(), Of("Ram", "Sita", "Hanuman"), ", ", "[", "]")
	if err != nil || got != "[Ram, Sita, Hanuman]" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestAggregate_Grouping(t *testing.T) {
	byDept, err := Aggregate(context.Background(), FromSlice(employees()),
		collect.CountingBy(func(e employee) string { return e.Department }))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"IT": 3, "HR": 1, "Finance": 1}
	if !maps.Equal(byDept, want) {
		t.Errorf("got %v", byDept)
	}
}

func TestAggregate_InvalidCollector(t *testing.T) {
	_, err := Aggregate(context.Background(), Of(1, 2), collect.TopN(-1, compare.Natural[int]()))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("got %v", err)
	}
}

func TestTerminals_PropagateErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	failing := Map(Of(1, 2, 3), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if _, err := Count(ctx, failing); !errors.Is(err, boom) {
		t.Errorf("Count: %v", err)
	}
	if _, err := Sum(ctx, failing, func(n int) int { return n }); !errors.Is(err, boom) {
		t.Errorf("Sum: %v", err)
	}
	if ok, err := AllMatch(ctx, failing, func(int) bool { return true }); ok || !errors.Is(err, boom) {
		t.Errorf("AllMatch: %v, %v", ok, err)
	}
	if _, err := ToMap(ctx, failing, func(n int) int { return n }, func(n int) int { return n }); !errors.Is(err, boom) {
		t.Errorf("ToMap: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range [][]int{{}, {1}, {3, 1, 2, 3}} {
		got, err := Collect(context.Background(), FromSlice(in))
		if err != nil || !sliceEqual(got, in) {
			t.Errorf("round trip %v -> %v", in, got)
		}
	}
}

func TestFilter_PreservesOrderAndShrinks(t *testing.T) {
	in := []int{9, 2, 7, 4, 5, 6}
	got, _ := Collect(context.Background(), Filter(FromSlice(in), func(n int) bool { return n > 4 }))
	if len(got) > len(in) || !sliceEqual(got, []int{9, 7, 5, 6}) {
		t.Errorf("got %v", got)
	}
}
