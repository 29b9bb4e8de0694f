// Package recipes holds ready-made answers to common collection questions,
// built on the pipeline and collect engines: duplicate detection, frequency
// ranking, Nth highest and top-N selection, and anagram grouping.
//
// Ties are always resolved by input order: among equally frequent values the
// one seen first ranks higher, and among equal-comparing elements the earlier
// element ranks higher. Equal elements still occupy separate ranks.
package recipes
