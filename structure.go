package linq

// Reverse yields the predecessor's elements back to front. Starting a
// traversal materializes the predecessor into a buffer; the predecessor
// must be finite. The buffer is rebuilt on every traversal.
func (r *Range[T]) Reverse() *Range[T] {
	return NewRange(func() Cursor[T] {
		buf := collect(r.start())
		return &reverseCursor[T]{buf: buf, i: len(buf) - 1}
	})
}

type reverseCursor[T any] struct {
	buf []T
	i   int
}

func (c *reverseCursor[T]) Next() (T, bool) {
	if c.i < 0 {
		var zero T
		return zero, false
	}
	v := c.buf[c.i]
	c.i--
	return v, true
}

// Append concatenates other after this range. The first range is exhausted
// before the second is pulled.
func (r *Range[T]) Append(other *Range[T]) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &appendCursor[T]{first: r.start(), second: other.Start()}
	})
}

type appendCursor[T any] struct {
	first     Cursor[T]
	second    Cursor[T]
	firstDone bool
}

func (c *appendCursor[T]) Next() (T, bool) {
	if !c.firstDone {
		if v, ok := c.first.Next(); ok {
			return v, true
		}
		c.firstDone = true
	}
	return c.second.Next()
}

// Repeat replays the range count additional times beyond its natural single
// pass. Each replay restarts the predecessor, so a replay observes changes
// made to a referenced source container in the meantime.
func (r *Range[T]) Repeat(count int) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &repeatCursor[T]{prev: r, cur: r.start(), left: count}
	})
}

type repeatCursor[T any] struct {
	prev *Range[T]
	cur  Cursor[T]
	left int
}

func (c *repeatCursor[T]) Next() (T, bool) {
	for {
		v, ok := c.cur.Next()
		if ok {
			return v, true
		}
		if c.left <= 0 {
			var zero T
			return zero, false
		}
		c.cur = c.prev.Start()
		c.left--
	}
}
