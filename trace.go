package linq

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tap invokes fn for each element flowing through, then yields the element
// unchanged. Useful for logging, metrics, or debugging mid-pipeline.
func (r *Range[T]) Tap(fn func(T)) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &tapCursor[T]{prev: r.start(), fn: fn}
	})
}

type tapCursor[T any] struct {
	prev Cursor[T]
	fn   func(T)
}

func (c *tapCursor[T]) Next() (T, bool) {
	v, ok := c.prev.Next()
	if ok {
		c.fn(v)
	}
	return v, ok
}

// Traced wraps a range so every traversal logs its start and completion,
// with the element count, at trace level. All log lines of one traversal
// share a generated traversal id, keeping interleaved traversals of the
// same range distinguishable. Elements pass through unchanged.
func Traced[T any](r *Range[T], log zerolog.Logger, stage string) *Range[T] {
	return NewRange(func() Cursor[T] {
		id := uuid.NewString()
		log.Trace().
			Str("stage", stage).
			Str("traversal", id).
			Msg("traversal started")
		return &tracedCursor[T]{prev: r.Start(), log: log, stage: stage, id: id}
	})
}

type tracedCursor[T any] struct {
	prev     Cursor[T]
	log      zerolog.Logger
	stage    string
	id       string
	n        int
	finished bool
}

func (c *tracedCursor[T]) Next() (T, bool) {
	v, ok := c.prev.Next()
	if ok {
		c.n++
		return v, true
	}
	if !c.finished {
		c.finished = true
		c.log.Trace().
			Str("stage", c.stage).
			Str("traversal", c.id).
			Int("elements", c.n).
			Msg("traversal finished")
	}
	return v, false
}
