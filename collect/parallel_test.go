package collect

import (
	"context"
	"maps"
	"slices"
	"testing"

	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
)

func TestParallel_MatchesSequential(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = (i * 7919) % 1000
	}
	ctx := context.Background()

	for _, parts := range []int{1, 3, 8, 2000} {
		list, err := Parallel(ctx, items, ToList[int](), parts)
		if err != nil {
			t.Fatalf("parts=%d: %v", parts, err)
		}
		if !slices.Equal(list, items) {
			t.Errorf("parts=%d: order not preserved", parts)
		}

		sum, _ := Parallel(ctx, items, Summing(func(n int) int { return n }), parts)
		if want := mustCollect(t, items, Summing(func(n int) int { return n })); sum != want {
			t.Errorf("parts=%d: sum %d, want %d", parts, sum, want)
		}

		top, _ := Parallel(ctx, items, TopN(5, compare.Natural[int]()), parts)
		if want := mustCollect(t, items, TopN(5, compare.Natural[int]())); !slices.Equal(top, want) {
			t.Errorf("parts=%d: top %v, want %v", parts, top, want)
		}

		byMod, _ := Parallel(ctx, items, CountingBy(func(n int) int { return n % 7 }), parts)
		if want := mustCollect(t, items, CountingBy(func(n int) int { return n % 7 })); !maps.Equal(byMod, want) {
			t.Errorf("parts=%d: grouping differs", parts)
		}
	}
}

func TestParallel_Empty(t *testing.T) {
	got, err := Parallel(context.Background(), nil, Counting[int](), 4)
	if err != nil || got != 0 {
		t.Errorf("got (%d, %v)", got, err)
	}
}

func TestParallel_InvalidPartitions(t *testing.T) {
	_, err := Parallel(context.Background(), []int{1}, Counting[int](), 0)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("got %v", err)
	}
}

func TestParallel_PanicBecomesError(t *testing.T) {
	boom := Summing(func(n int) int {
		if n == 3 {
			panic("boom")
		}
		return n
	})
	_, err := Parallel(context.Background(), []int{1, 2, 3, 4}, boom, 2)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parallel(ctx, []int{1, 2, 3}, Counting[int](), 2)
	if err == nil {
		t.Error("expected context error")
	}
}

func TestPartition(t *testing.T) {
	parts := Partition([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	if len(parts) != 3 {
		t.Fatalf("got %d parts", len(parts))
	}
	if !slices.Equal(parts[0], []int{1, 2, 3}) || !slices.Equal(parts[1], []int{4, 5}) || !slices.Equal(parts[2], []int{6, 7}) {
		t.Errorf("got %v", parts)
	}
	if Partition([]int{1}, 0) != nil {
		t.Error("n <= 0 should give nil")
	}
}
