package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kbukum/streamkit/compare"
)

type product struct {
	Name     string
	Category string
	Price    float64
	Rating   float64
}

func TestSorted_Natural(t *testing.T) {
	got, err := Collect(context.Background(), Sorted(FromSlice([]int{5, 2, 8, 1, 9}), compare.Natural[int]()))
	if err != nil {
		t.Fatal(err)
	}
	if !sliceEqual(got, []int{1, 2, 5, 8, 9}) {
		t.Errorf("got %v", got)
	}
}

func TestSorted_MultiKeyStable(t *testing.T) {
	products := []product{
		{"Laptop", "Electronics", 75000, 4.5},
		{"Shirt", "Clothing", 1500, 4.5},
		{"Phone", "Electronics", 50000, 4.8},
		{"Jeans", "Clothing", 2500, 4.2},
		{"Watch", "Accessories", 5000, 4.5},
	}
	byRatingDesc := compare.By(func(p product) float64 { return p.Rating }).Reversed()
	byPrice := compare.By(func(p product) float64 { return p.Price })
	sorted := Sorted(FromSlice(products), byRatingDesc.Then(byPrice))
	names, err := Collect(context.Background(), Transform(sorted, func(p product) string { return p.Name }))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Phone", "Shirt", "Watch", "Laptop", "Jeans"}
	if !sliceEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}

	// equal keys keep source order
	byCategory := Sorted(FromSlice(products), compare.By(func(p product) string { return p.Category }))
	names, _ = Collect(context.Background(), Transform(byCategory, func(p product) string { return p.Name }))
	want = []string{"Watch", "Shirt", "Jeans", "Laptop", "Phone"}
	if !sliceEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestSorted_PropagatesUpstreamError(t *testing.T) {
	failing := Map(FromSlice([]int{1, 2}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("upstream failed")
		}
		return n, nil
	})
	if _, err := Collect(context.Background(), Sorted(failing, compare.Natural[int]())); err == nil {
		t.Fatal("expected error")
	}
}

func TestLimitSkip(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		skip, take int
		want       []int
	}{
		{"page 1", 0, 3, []int{1, 2, 3}},
		{"page 2", 3, 3, []int{4, 5, 6}},
		{"past end", 9, 3, []int{}},
		{"limit zero", 0, 0, []int{}},
		{"limit beyond", 5, 10, []int{6, 7, 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(ctx, Limit(Skip(Range(1, 9), tc.skip), tc.take))
			if err != nil {
				t.Fatal(err)
			}
			if !sliceEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLimit_StopsPullingUpstream(t *testing.T) {
	pulls := 0
	counted := Peek(Range(0, 1000), func(int) { pulls++ })
	if _, err := Collect(context.Background(), Limit(counted, 3)); err != nil {
		t.Fatal(err)
	}
	if pulls != 3 {
		t.Errorf("pulled %d values, want 3", pulls)
	}
}

func TestDistinct(t *testing.T) {
	ctx := context.Background()
	src := []int{1, 2, 3, 2, 4, 3, 5, 1, 6}
	once, err := Collect(ctx, Distinct(FromSlice(src)))
	if err != nil {
		t.Fatal(err)
	}
	if !sliceEqual(once, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("got %v", once)
	}
	twice, _ := Collect(ctx, Distinct(Distinct(FromSlice(src))))
	if !sliceEqual(once, twice) {
		t.Errorf("distinct is not idempotent: %v vs %v", once, twice)
	}
}

func TestDistinctBy_FirstOccurrenceWins(t *testing.T) {
	words := []string{"Listen", "apple", "SILENT", "Apple", "pear"}
	got, err := Collect(context.Background(), DistinctBy(FromSlice(words), strings.ToLower))
	if err != nil {
		t.Fatal(err)
	}
	if !sliceEqual(got, []string{"Listen", "apple", "SILENT", "pear"}) {
		t.Errorf("got %v", got)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		size  int
		want  [][]int
	}{
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"exact", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"size one", []int{1, 2}, 1, [][]int{{1}, {2}}},
		{"empty", nil, 3, [][]int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), Chunk(FromSlice(tc.input), tc.size))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if !sliceEqual(got[i], tc.want[i]) {
					t.Errorf("chunk %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestChunk_PartialBeforeError(t *testing.T) {
	failing := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		if n == 3 {
			return 0, errors.New("boom")
		}
		return n, nil
	})
	got, err := Collect(context.Background(), Chunk(failing, 5))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 || !sliceEqual(got[0], []int{1, 2}) {
		t.Errorf("expected partial chunk [1 2] before the error, got %v", got)
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	if _, err := Collect(context.Background(), Chunk(FromSlice([]int{1}), 0)); err == nil {
		t.Fatal("expected error")
	}
}
