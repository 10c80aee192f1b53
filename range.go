package linq

import "iter"

// Cursor is the per-traversal iteration state of a Range.
// Next returns the next element and true, or the zero value and false once
// the traversal is complete. A Cursor is valid only as long as the Range
// that produced it and, for referencing sources, the referenced container.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Range is a lazy description of a pipeline stage. Building a Range performs
// no element access; elements are produced one at a time, pulled from the
// tail of the stage chain, once a Cursor is started — either directly or
// through a terminal operation.
//
// A Range may be traversed any number of times. Every call to Start produces
// fresh traversal state, so stages that buffer their predecessor (sorting,
// Reverse, Distinct) re-query it on each traversal. That recomputation is an
// explicit, observable cost; results are never cached across traversals.
type Range[T any] struct {
	start func() Cursor[T]
}

// NewRange builds a Range from a cursor factory. It is the extension point
// for user-defined sources: any container exposing forward iteration can
// participate in a pipeline by returning a fresh Cursor per call. The
// factory is invoked exactly once per traversal.
func NewRange[T any](start func() Cursor[T]) *Range[T] {
	return &Range[T]{start: start}
}

// Start begins a new traversal of the range.
func (r *Range[T]) Start() Cursor[T] {
	return r.start()
}

// Seq exposes the range as an iter.Seq for range-over-func loops. Breaking
// out of the loop simply stops pulling; no teardown is required.
func (r *Range[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := r.start()
		for v, ok := cur.Next(); ok; v, ok = cur.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Number covers the built-in numeric types accepted by the arithmetic
// source and the numeric terminal operations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// collect drains a cursor into a slice.
func collect[T any](cur Cursor[T]) []T {
	var out []T
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		out = append(out, v)
	}
	return out
}

// sliceCursor iterates an owned snapshot. Used by the owning sources and by
// stages that materialize their predecessor.
type sliceCursor[T any] struct {
	items []T
	i     int
}

func (c *sliceCursor[T]) Next() (T, bool) {
	if c.i >= len(c.items) {
		var zero T
		return zero, false
	}
	v := c.items[c.i]
	c.i++
	return v, true
}
