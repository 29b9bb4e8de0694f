package recipes

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/errors"
)

// SortedKey returns the lower-cased letters of word in sorted order, so
// "Tea" and "eat" share the key "aet".
func SortedKey(word string) string {
	runes := []rune(strings.ToLower(word))
	slices.Sort(runes)
	return string(runes)
}

// FrequencyKey returns each distinct lower-cased letter of word followed by
// its count, letters in sorted order: "Tea" becomes "a1e1t1". It avoids
// sorting the whole word.
func FrequencyKey(word string) string {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(word) {
		counts[r]++
	}
	letters := make([]rune, 0, len(counts))
	for r := range counts {
		letters = append(letters, r)
	}
	slices.Sort(letters)

	var b strings.Builder
	for _, r := range letters {
		b.WriteRune(r)
		b.WriteString(strconv.Itoa(counts[r]))
	}
	return b.String()
}

// AreAnagrams reports whether a and b use the same letters, ignoring case.
func AreAnagrams(a, b string) bool {
	return SortedKey(a) == SortedKey(b)
}

// AnagramIndex maps every canonical key to its words. Keys and the words of
// each group keep the order in which they first appeared.
func AnagramIndex(words []string, key func(string) string) (*collect.OrderedMap[string, []string], error) {
	if key == nil {
		return nil, errors.NilFunc("key")
	}
	return collect.Slice(words, collect.ToOrderedMap(
		key,
		func(w string) []string { return []string{w} },
		func(existing, incoming []string) []string { return append(existing, incoming...) },
	))
}

// GroupAnagrams groups words by SortedKey, groups in order of first appearance.
func GroupAnagrams(words []string) [][]string {
	groups, _ := GroupAnagramsBy(words, SortedKey)
	return groups
}

// GroupAnagramsBy groups words by a canonical key such as SortedKey or
// FrequencyKey.
func GroupAnagramsBy(words []string, key func(string) string) ([][]string, error) {
	index, err := AnagramIndex(words, key)
	if err != nil {
		return nil, err
	}
	return index.Values(), nil
}

// LargestAnagramGroup returns the biggest group; the earliest on a tie.
// Empty input yields an empty slice.
func LargestAnagramGroup(words []string) []string {
	largest := make([]string, 0)
	for _, g := range GroupAnagrams(words) {
		if len(g) > len(largest) {
			largest = g
		}
	}
	return largest
}

// CountAnagramGroups returns the number of distinct anagram groups.
func CountAnagramGroups(words []string) int {
	return len(GroupAnagrams(words))
}

// CountAnagramPairs returns the number of unordered word pairs that are
// anagrams of each other: a group of n words contributes n*(n-1)/2.
func CountAnagramPairs(words []string) int64 {
	counts, _ := collect.Slice(words, collect.CountingBy(SortedKey))
	var pairs int64
	for _, n := range counts {
		pairs += n * (n - 1) / 2
	}
	return pairs
}
