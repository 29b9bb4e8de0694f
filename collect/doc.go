// Package collect provides the aggregation and grouping engine.
//
// A Collector reduces a sequence of elements to one summary value. Every
// collector, built-in or custom, is created with Of from four functions:
//
//   - supplier: creates an empty accumulator
//   - accumulator: folds one element into an accumulator
//   - combiner: merges two partial accumulators (used by parallel runs)
//   - finisher: converts the accumulator into the public result
//
// Collectors compose. GroupingBy and PartitioningBy take a downstream
// collector that is applied to each bucket, and a downstream may itself be
// another GroupingBy, so grouping nests to any depth:
//
//	byDeptThenCity, err := collect.Slice(employees, collect.GroupingBy(
//	    func(e Employee) string { return e.Department },
//	    collect.GroupingBy(
//	        func(e Employee) string { return e.City },
//	        collect.Counting[Employee](),
//	    ),
//	))
//
// GroupingBy never creates a key for an empty bucket. PartitioningBy always
// produces both the true and the false key.
//
// Run a collector with Slice, Seq or Parallel, or pass it to
// pipeline.Aggregate.
package collect
