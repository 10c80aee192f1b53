package linq

import (
	"iter"
	"slices"
)

// From wraps a non-owning reference to a slice. The returned range reads the
// slice through the pointer at traversal time, so element mutation and
// growth between traversals are observed. The caller must keep the slice
// alive for the lifetime of the range and must not mutate it concurrently
// with a traversal.
//
// Panics if container is nil.
func From[S ~[]E, E any](container *S) *Range[E] {
	if container == nil {
		panic("linq: nil container given to From")
	}
	return NewRange(func() Cursor[E] {
		return &refCursor[S, E]{container: container}
	})
}

type refCursor[S ~[]E, E any] struct {
	container *S
	i         int
}

func (c *refCursor[S, E]) Next() (E, bool) {
	if c.i >= len(*c.container) {
		var zero E
		return zero, false
	}
	v := (*c.container)[c.i]
	c.i++
	return v, true
}

// FromMutable wraps a non-owning reference to a slice and yields pointers to
// its elements, so pipelines can mutate the container in place. The same
// lifetime and aliasing rules as From apply.
//
// Panics if container is nil.
func FromMutable[S ~[]E, E any](container *S) *Range[*E] {
	if container == nil {
		panic("linq: nil container given to FromMutable")
	}
	return NewRange(func() Cursor[*E] {
		return &mutableRefCursor[S, E]{container: container}
	})
}

type mutableRefCursor[S ~[]E, E any] struct {
	container *S
	i         int
}

func (c *mutableRefCursor[S, E]) Next() (*E, bool) {
	if c.i >= len(*c.container) {
		return nil, false
	}
	p := &(*c.container)[c.i]
	c.i++
	return p, true
}

// FromCopy snapshots the container at construction time. Later mutation of
// the original is not observed.
func FromCopy[S ~[]E, E any](container S) *Range[E] {
	owned := slices.Clone(container)
	return NewRange(func() Cursor[E] {
		return &sliceCursor[E]{items: owned}
	})
}

// FromValues builds a range over a fixed list of values supplied inline.
func FromValues[T any](values ...T) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &sliceCursor[T]{items: values}
	})
}

// FromSeq adapts an iter.Seq into a range. The sequence is re-run for every
// traversal, so it must be restartable.
func FromSeq[T any](seq iter.Seq[T]) *Range[T] {
	return NewRange(func() Cursor[T] {
		next, stop := iter.Pull(seq)
		return &seqCursor[T]{next: next, stop: stop}
	})
}

type seqCursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (c *seqCursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
	}
	return v, ok
}
