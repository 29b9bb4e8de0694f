package collect

import (
	"maps"
	"slices"
	"testing"
)

func TestGroupingByList_PreservesOrderWithinGroup(t *testing.T) {
	got := mustCollect(t, employees(), GroupingByList(department))
	if len(got) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(got))
	}
	var names []string
	for _, e := range got["IT"] {
		names = append(names, e.Name)
	}
	if !slices.Equal(names, []string{"Ram", "Arjun", "Kiran"}) {
		t.Errorf("IT = %v", names)
	}
}

func TestGroupingBy_NoKeyForEmptyGroup(t *testing.T) {
	got := mustCollect(t, nil, CountingBy(department))
	if len(got) != 0 {
		t.Errorf("expected no keys, got %v", got)
	}
}

func TestCountingBy(t *testing.T) {
	got := mustCollect(t, employees(), CountingBy(department))
	want := map[string]int64{"IT": 3, "HR": 2, "Finance": 1}
	if !maps.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGroupingBy_Averaging(t *testing.T) {
	got := mustCollect(t, employees(), GroupingBy(department, Averaging(salary)))
	want := map[string]float64{"IT": 49333.333333333336, "HR": 61500, "Finance": 72000}
	for k, v := range want {
		if d := got[k] - v; d > 1e-6 || d < -1e-6 {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestPartitioningBy_BothKeysAlwaysPresent(t *testing.T) {
	got := mustCollect(t, []int{2, 4, 6}, PartitioningByList(func(n int) bool { return n%2 == 0 }))
	odd, ok := got[false]
	if !ok {
		t.Fatal("false key missing")
	}
	if odd == nil || len(odd) != 0 {
		t.Errorf("false side should be an empty list, got %#v", odd)
	}
	if !slices.Equal(got[true], []int{2, 4, 6}) {
		t.Errorf("true side = %v", got[true])
	}

	empty := mustCollect(t, nil, PartitioningBy(func(n int) bool { return n > 0 }, Counting[int]()))
	if len(empty) != 2 || empty[true] != 0 || empty[false] != 0 {
		t.Errorf("empty input partition = %v", empty)
	}
}

func TestPartitioningBy_Counting(t *testing.T) {
	got := mustCollect(t, employees(), PartitioningBy(func(e employee) bool { return e.Salary > 50000 }, Counting[employee]()))
	if got[true] != 4 || got[false] != 2 {
		t.Errorf("got %v", got)
	}
}

func TestGroupingBy_NestedPartition(t *testing.T) {
	got := mustCollect(t, employees(), GroupingBy(department,
		PartitioningBy(func(e employee) bool { return e.Salary > 50000 },
			Mapping(name, ToList[string]()))))

	// a department whose employees all land on one side still has both keys
	fin := got["Finance"]
	if len(fin) != 2 {
		t.Fatalf("Finance partition keys = %v", fin)
	}
	if !slices.Equal(fin[true], []string{"Priya"}) || len(fin[false]) != 0 {
		t.Errorf("Finance = %v", fin)
	}
	if !slices.Equal(got["IT"][false], []string{"Ram", "Kiran"}) {
		t.Errorf("IT low = %v", got["IT"][false])
	}
}

func TestGroupingBy_TwoLevels(t *testing.T) {
	city := func(e employee) string { return e.City }
	got := mustCollect(t, employees(), GroupingBy(department, GroupingBy(city, Counting[employee]())))
	want := map[string]map[string]int64{
		"IT":      {"Bangalore": 2, "Mumbai": 1},
		"HR":      {"Mumbai": 1, "Bangalore": 1},
		"Finance": {"Delhi": 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for dept, cities := range want {
		if !maps.Equal(got[dept], cities) {
			t.Errorf("%s = %v, want %v", dept, got[dept], cities)
		}
	}
}

func TestGroupingBy_CompositeKey(t *testing.T) {
	type deptCity struct{ dept, city string }
	got := mustCollect(t, employees(), CountingBy(func(e employee) deptCity {
		return deptCity{e.Department, e.City}
	}))
	if got[deptCity{"IT", "Bangalore"}] != 2 {
		t.Errorf("got %v", got)
	}
}

func TestFiltering_KeepsKeyWithEmptyValue(t *testing.T) {
	got := mustCollect(t, employees(), GroupingBy(department,
		Filtering(func(e employee) bool { return e.Salary > 70000 }, Mapping(name, ToList[string]()))))
	hr, ok := got["HR"]
	if !ok {
		t.Fatal("HR key dropped; filtering must keep it")
	}
	if len(hr) != 0 {
		t.Errorf("HR = %v", hr)
	}
	if !slices.Equal(got["Finance"], []string{"Priya"}) {
		t.Errorf("Finance = %v", got["Finance"])
	}
}

func TestGroupingBy_MaxByPerGroup(t *testing.T) {
	got := mustCollect(t, employees(), GroupingBy(department, MaxBy(bySalary())))
	top, ok := got["IT"].Get()
	if !ok || top.Name != "Arjun" {
		t.Errorf("IT top = %v", got["IT"])
	}
}
