package linq

// Where keeps only the elements satisfying pred. The predicate is evaluated
// lazily, once per candidate element, in predecessor order.
func (r *Range[T]) Where(pred func(T) bool) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &whereCursor[T]{prev: r.start(), pred: pred}
	})
}

type whereCursor[T any] struct {
	prev Cursor[T]
	pred func(T) bool
}

func (c *whereCursor[T]) Next() (T, bool) {
	for {
		v, ok := c.prev.Next()
		if !ok {
			return v, false
		}
		if c.pred(v) {
			return v, true
		}
	}
}

// Distinct drops duplicate elements, keeping the first occurrence of each.
// Already-emitted values are held in a per-traversal list that is rescanned
// linearly for every candidate, so cost is quadratic in the number of
// unique elements. Suited to the small inputs this library targets.
func Distinct[T comparable](r *Range[T]) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &distinctCursor[T]{prev: r.Start()}
	})
}

type distinctCursor[T comparable] struct {
	prev Cursor[T]
	seen []T
}

func (c *distinctCursor[T]) Next() (T, bool) {
	for {
		v, ok := c.prev.Next()
		if !ok {
			return v, false
		}
		if !c.contains(v) {
			c.seen = append(c.seen, v)
			return v, true
		}
	}
}

func (c *distinctCursor[T]) contains(v T) bool {
	for _, s := range c.seen {
		if s == v {
			return true
		}
	}
	return false
}

// Take bounds the traversal to the first count elements, or fewer when the
// predecessor ends first.
func (r *Range[T]) Take(count int) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &takeCursor[T]{prev: r.start(), left: count}
	})
}

type takeCursor[T any] struct {
	prev Cursor[T]
	left int
}

func (c *takeCursor[T]) Next() (T, bool) {
	if c.left <= 0 {
		var zero T
		return zero, false
	}
	v, ok := c.prev.Next()
	if !ok {
		c.left = 0
		return v, false
	}
	c.left--
	return v, true
}

// TakeWhile yields elements until pred first fails; the failing element and
// everything after it are dropped, and the predecessor is not pulled again.
func (r *Range[T]) TakeWhile(pred func(T) bool) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &takeWhileCursor[T]{prev: r.start(), pred: pred}
	})
}

type takeWhileCursor[T any] struct {
	prev Cursor[T]
	pred func(T) bool
	done bool
}

func (c *takeWhileCursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.prev.Next()
	if !ok || !c.pred(v) {
		c.done = true
		var zero T
		return zero, false
	}
	return v, true
}

// Skip discards the first count elements. Skipping happens once, on the
// first pull of a traversal.
func (r *Range[T]) Skip(count int) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &skipCursor[T]{prev: r.start(), count: count}
	})
}

type skipCursor[T any] struct {
	prev    Cursor[T]
	count   int
	skipped bool
}

func (c *skipCursor[T]) Next() (T, bool) {
	if !c.skipped {
		c.skipped = true
		for i := 0; i < c.count; i++ {
			if _, ok := c.prev.Next(); !ok {
				break
			}
		}
	}
	return c.prev.Next()
}

// SkipWhile discards the leading run of elements satisfying pred; the first
// failing element and everything after it pass through untouched.
func (r *Range[T]) SkipWhile(pred func(T) bool) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &skipWhileCursor[T]{prev: r.start(), pred: pred}
	})
}

type skipWhileCursor[T any] struct {
	prev    Cursor[T]
	pred    func(T) bool
	started bool
}

func (c *skipWhileCursor[T]) Next() (T, bool) {
	if !c.started {
		c.started = true
		for {
			v, ok := c.prev.Next()
			if !ok {
				return v, false
			}
			if !c.pred(v) {
				return v, true
			}
		}
	}
	return c.prev.Next()
}
