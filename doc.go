// Package linq provides lazy, composable query pipelines over in-memory
// sequences.
//
// A pipeline is a chain of Range values. Building the chain performs no
// work; elements are pulled one at a time from the tail of the chain only
// when a traversal is driven, either by ranging over Seq or by a terminal
// operation. Every traversal starts fresh: stages that buffer their
// predecessor (sorting, Reverse, Distinct) re-query it on each Start.
//
// # Sources
//
//   - From / FromMutable: reference a slice without copying; FromMutable
//     yields element pointers for in-place mutation
//   - FromCopy: snapshot a slice at construction
//   - FromValues: inline literal list
//   - FromMap / FromOrderedMap: key/value pair sources
//   - FromSeq: adapt an iter.Seq
//   - FromTo / FromToBy: inclusive arithmetic progression
//   - Generate: callback-driven sequence with an explicit finish marker
//   - NewRange: any user-defined source exposing forward iteration
//
// # Stages
//
// Methods on Range: Where, Take, TakeWhile, Skip, SkipWhile, Reverse,
// Append, Repeat, Tap.
//
// Package functions (these change the element type or need a constraint):
// Distinct, Select, SelectToString, SelectMany, Chunk, Window, Join,
// OrderBy, ThenBy.
//
// # Terminal operations
//
// Methods: First, Last, Any, All, None, Count, ElementAt, Aggregate,
// ToSlice, Each. Package functions: Sum, Min, Max, Average, ToMap,
// ToOrderedMap. Operations that may have no answer return an explicit
// ok flag; the -Or variants substitute a default.
//
// # Usage
//
//	people := []person{{"P1", 20}, {"P2", 21}, {"P3", 22}}
//	adults := linq.From(&people).
//		Where(func(p person) bool { return p.age > 20 })
//	names := linq.Select(adults, func(p person) string { return p.name }).
//		ToSlice()
//
// Multi-key sorting composes through OrderedRange:
//
//	sorted := linq.ThenByDescending(
//		linq.OrderByAscending(linq.From(&people), func(p person) string { return p.name }),
//		func(p person) int { return p.age },
//	).ToSlice()
//
// Execution is single-threaded and synchronous. A Range may be traversed
// from multiple cursors in the same goroutine, but a referenced source
// container must not be mutated concurrently with a traversal.
package linq
