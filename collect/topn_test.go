package collect

import (
	"slices"
	"testing"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
)

func namesOf(es []employee) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"top three", []int{5, 2, 8, 1, 9, 3, 7, 4, 6}, 3, []int{9, 8, 7}},
		{"fewer than n", []int{4, 1}, 3, []int{4, 1}},
		{"zero", []int{1, 2, 3}, 0, []int{}},
		{"empty input", nil, 2, []int{}},
		{"duplicates are distinct ranks", []int{5, 5, 3}, 2, []int{5, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustCollect(t, tc.input, TopN(tc.n, compare.Natural[int]()))
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTopN_SmallGroupNotPadded(t *testing.T) {
	got := mustCollect(t, employees(), GroupingBy(department, TopN(3, bySalary())))
	if hr := namesOf(got["HR"]); !slices.Equal(hr, []string{"Sita", "Meera"}) {
		t.Errorf("HR = %v", hr)
	}
	if it := namesOf(got["IT"]); !slices.Equal(it, []string{"Arjun", "Kiran", "Ram"}) {
		t.Errorf("IT = %v", it)
	}
}

func TestTopN_TiesKeepEncounterOrder(t *testing.T) {
	tied := []employee{
		{Name: "A", Salary: 100},
		{Name: "B", Salary: 200},
		{Name: "C", Salary: 100},
		{Name: "D", Salary: 100},
	}
	got := namesOf(mustCollect(t, tied, TopN(3, bySalary())))
	if !slices.Equal(got, []string{"B", "A", "C"}) {
		t.Errorf("got %v", got)
	}
}

func TestTopN_MergeKeepsEncounterOrderOnTies(t *testing.T) {
	c := TopN(2, compare.By(func(e employee) float64 { return e.Salary }))
	left, right := c.New(), c.New()
	left.Add(employee{Name: "L", Salary: 1})
	right.Add(employee{Name: "R1", Salary: 1})
	right.Add(employee{Name: "R2", Salary: 1})
	left.Merge(right)
	if got := namesOf(left.Finish()); !slices.Equal(got, []string{"L", "R1"}) {
		t.Errorf("got %v", got)
	}
}

func TestTopN_InvalidArguments(t *testing.T) {
	if _, err := Slice([]int{1}, TopN(-1, compare.Natural[int]())); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("negative n: got %v", err)
	}
	if _, err := Slice([]int{1}, TopN[int](1, nil)); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("nil comparator: got %v", err)
	}
}
