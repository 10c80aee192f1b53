package linq

import "slices"

// Chunk groups elements into non-overlapping slices of up to size elements,
// in order. The final chunk may be short. Each emitted slice is owned by
// the caller.
//
// Panics if size is not positive.
func Chunk[T any](r *Range[T], size int) *Range[[]T] {
	if size <= 0 {
		panic("linq: non-positive size given to Chunk")
	}
	return NewRange(func() Cursor[[]T] {
		return &chunkCursor[T]{prev: r.Start(), size: size}
	})
}

type chunkCursor[T any] struct {
	prev Cursor[T]
	size int
	done bool
}

func (c *chunkCursor[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	chunk := make([]T, 0, c.size)
	for len(chunk) < c.size {
		v, ok := c.prev.Next()
		if !ok {
			c.done = true
			break
		}
		chunk = append(chunk, v)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}

// Window emits count-based sliding windows: a slice of up to size elements
// for every step-th starting position, as long as at least one element is in
// view. Trailing windows may be short. Each emitted slice is a copy owned by
// the caller.
//
// Panics if size or step is not positive.
func Window[T any](r *Range[T], size, step int) *Range[[]T] {
	if size <= 0 {
		panic("linq: non-positive size given to Window")
	}
	if step <= 0 {
		panic("linq: non-positive step given to Window")
	}
	return NewRange(func() Cursor[[]T] {
		return &windowCursor[T]{prev: r.Start(), size: size, step: step}
	})
}

type windowCursor[T any] struct {
	prev      Cursor[T]
	size      int
	step      int
	buf       []T
	primed    bool
	exhausted bool
	done      bool
}

func (c *windowCursor[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	if c.primed {
		c.slide()
	}
	c.primed = true
	c.fill()
	if len(c.buf) == 0 {
		c.done = true
		return nil, false
	}
	return slices.Clone(c.buf), true
}

// slide advances the window start by step, discarding source elements that
// fall before it when step exceeds the buffered view.
func (c *windowCursor[T]) slide() {
	if c.step < len(c.buf) {
		c.buf = append(c.buf[:0], c.buf[c.step:]...)
		return
	}
	discard := c.step - len(c.buf)
	c.buf = c.buf[:0]
	for discard > 0 && !c.exhausted {
		if _, ok := c.prev.Next(); !ok {
			c.exhausted = true
		}
		discard--
	}
}

func (c *windowCursor[T]) fill() {
	for len(c.buf) < c.size && !c.exhausted {
		v, ok := c.prev.Next()
		if !ok {
			c.exhausted = true
			break
		}
		c.buf = append(c.buf, v)
	}
}
