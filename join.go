package linq

// Join performs a nested-loop inner equality join. For each left element the
// right range is scanned for elements whose key equals the left key; every
// match produces one result via transform, lazily, in left-then-right order.
//
// The right scan continues from just past the previous match, and wraps
// around to the right range's start whenever it runs off the end, so a right
// element may match again under a later left element. No key index is built;
// cost is O(n·m) in the worst case, which is intentional for the small to
// moderate inputs this library targets.
func Join[L, R any, K comparable, O any](
	left *Range[L],
	right *Range[R],
	leftKey func(L) K,
	rightKey func(R) K,
	transform func(L, R) O,
) *Range[O] {
	return NewRange(func() Cursor[O] {
		c := &joinCursor[L, R, K, O]{
			right:     right,
			rightCur:  right.Start(),
			leftKey:   leftKey,
			rightKey:  rightKey,
			transform: transform,
		}
		c.left = left.Start()
		c.leftVal, c.leftOK = c.left.Next()
		return c
	})
}

type joinCursor[L, R any, K comparable, O any] struct {
	left      Cursor[L]
	right     *Range[R]
	rightCur  Cursor[R]
	leftVal   L
	leftOK    bool
	leftKey   func(L) K
	rightKey  func(R) K
	transform func(L, R) O
}

func (c *joinCursor[L, R, K, O]) Next() (O, bool) {
	for c.leftOK {
		key := c.leftKey(c.leftVal)
		for {
			rv, ok := c.rightCur.Next()
			if !ok {
				// Right range exhausted for this left element: wrap around
				// and move the left side forward.
				c.rightCur = c.right.Start()
				break
			}
			if c.rightKey(rv) == key {
				return c.transform(c.leftVal, rv), true
			}
		}
		c.leftVal, c.leftOK = c.left.Next()
	}
	var zero O
	return zero, false
}
