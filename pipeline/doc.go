// Package pipeline provides composable, pull-based collection pipelines.
//
// Pipelines are lazy: no work happens until a terminal pulls values. Each
// stage pulls from the previous stage on demand, so Limit and FindFirst stop
// reading the source as soon as they have what they need. A *Pipeline is a
// recipe; every terminal call builds a fresh iterator chain from the source.
//
// # Stages
//
// Sequential (single goroutine, source order preserved):
//
//   - Filter, Map, Transform: keep or convert values
//   - FlatMap, FlatMapSlice: expand each value into zero or more values
//   - Sorted: stable sort by a compare.Comparator
//   - Limit, Skip: paging
//   - Distinct, DistinctBy: drop repeats, first occurrence wins
//   - Tap, Peek: side-effects without altering the value
//   - FanOut: apply several functions to each value, collect results as []O
//   - Reduce: accumulate all values into one result
//   - Concat, Chunk
//
// Concurrent:
//
//   - Buffer: decouple producer/consumer with a buffered channel
//   - Parallel: concurrent Map with a worker pool (order NOT preserved)
//   - ParallelOrdered: concurrent Map delivering results in source order
//   - Merge: combine multiple pipelines concurrently (order NOT preserved)
//
// Invalid arguments (a nil callback, a negative count) never panic and are
// not reported by the constructor. The stage fails on its first pull, so
// whichever terminal runs it returns an INVALID_ARGUMENT error. A pipeline
// that is built but never run reports nothing: the error only exists once a
// terminal executes it.
//
// # Terminals
//
// Collect, ToSet, ToMap, ToMapMerge, Fold, Count, Sum, Min, Max, Average,
// Summarize, FindFirst, FindAny, AnyMatch, AllMatch, NoneMatch, Join,
// ForEach and Drain run sequentially. Aggregate hands the values to a
// collect.Collector. ForEachParallel, ForEachOrdered, FindAnyParallel and
// AggregateParallel spread the work over goroutines.
//
// Absence is explicit: Min, Max, Average and FindFirst return an empty
// optional.Optional for an empty pipeline, while Count and Sum return 0.
//
// # Usage
//
//	src := pipeline.FromSlice(employees)
//	it := pipeline.Filter(src, func(e Employee) bool { return e.Department == "IT" })
//	names := pipeline.Transform(it, func(e Employee) string { return e.Name })
//	joined, err := pipeline.Join(ctx, names, ", ", "[", "]")
//
// Grouping through the aggregation engine:
//
//	byDept, err := pipeline.Aggregate(ctx, src, collect.GroupingBy(
//	    func(e Employee) string { return e.Department },
//	    collect.Averaging(func(e Employee) float64 { return e.Salary }),
//	))
package pipeline
