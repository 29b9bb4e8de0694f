package demos

import (
	"context"
	"fmt"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/pipeline"
	"github.com/kbukum/streamkit/recipes"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 11, Slug: "duplicates", Title: "Find Duplicates", Run: runDuplicates})
	defaultRegistry.MustRegister(Problem{ID: 13, Slug: "anagrams", Title: "Group Anagrams", Run: runAnagrams})
}

// repeatedValues returns the values seen more than once, in ascending order.
func repeatedValues(ctx context.Context, nums []int) ([]int, error) {
	counts, err := pipeline.Aggregate(ctx, pipeline.FromSlice(nums), collect.CountingBy(func(n int) int { return n }))
	if err != nil {
		return nil, err
	}
	return pipeline.Collect(ctx, pipeline.Filter(pipeline.FromSlice(sortedKeys(counts)), func(n int) bool {
		return counts[n] > 1
	}))
}

func runDuplicates(ctx context.Context, env *Env) error {
	r := env.Report
	nums := []int{1, 2, 3, 2, 4, 3, 5, 1, 6}

	r.Result("Input", nums)
	r.Result("Duplicates", recipes.Duplicates(nums))
	viaCounts, err := repeatedValues(ctx, nums)
	if err != nil {
		return err
	}
	r.Result("Duplicates by counting", viaCounts)
	r.Result("Duplicate counts", recipes.DuplicateCounts(nums))
	r.Result("First duplicate", recipes.FirstDuplicate(nums))
	r.Result("Uniques", recipes.Uniques(nums))

	r.Section("Words")
	words := []string{"apple", "banana", "apple", "cherry", "banana", "date"}
	r.Result("Duplicates", recipes.Duplicates(words))
	r.Result("Duplicate counts", recipes.DuplicateCounts(words))

	r.Section("Edge cases")
	for _, c := range []struct {
		label string
		items []int
	}{
		{"Empty", []int{}},
		{"No duplicates", []int{1, 2, 3}},
		{"All the same", []int{7, 7, 7}},
	} {
		r.Result(c.label, fmt.Sprintf("duplicates=%v first=%v", recipes.Duplicates(c.items), recipes.FirstDuplicate(c.items)))
	}
	return nil
}

func runAnagrams(ctx context.Context, env *Env) error {
	r := env.Report
	words := []string{"eat", "tea", "tan", "ate", "nat", "bat", "tab", "ant"}

	r.Result("Input", words)
	r.Result("Groups", recipes.GroupAnagrams(words))
	byFrequency, err := recipes.GroupAnagramsBy(words, recipes.FrequencyKey)
	if err != nil {
		return err
	}
	r.Result("Groups by letter counts", byFrequency)

	r.Section("Checks")
	r.Result("listen / silent", recipes.AreAnagrams("listen", "silent"))
	r.Result("hello / world", recipes.AreAnagrams("hello", "world"))
	r.Result("Largest group", recipes.LargestAnagramGroup(words))
	r.Result("Group count", recipes.CountAnagramGroups(words))
	r.Result("Anagram pairs", recipes.CountAnagramPairs(words))
	index, err := recipes.AnagramIndex(words, recipes.SortedKey)
	if err != nil {
		return err
	}
	r.Result("Keys", index.Keys())
	paired, err := pipeline.Collect(ctx, pipeline.FlatMapSlice(
		pipeline.Filter(pipeline.FromSlice(index.Values()), func(g []string) bool { return len(g) > 1 }),
		func(g []string) []string { return g },
	))
	if err != nil {
		return err
	}
	r.Result("Words with a partner", paired)

	r.Section("Edge cases")
	for _, c := range []struct {
		label string
		words []string
	}{
		{"Empty strings", []string{"", "", "a"}},
		{"Single letters", []string{"a", "b", "a", "c", "b"}},
		{"No anagrams", []string{"abc", "def", "ghi"}},
	} {
		r.Result(c.label, recipes.GroupAnagrams(c.words))
	}
	return nil
}
