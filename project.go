package linq

import "fmt"

// Select transforms each element one-to-one. The transform runs lazily on
// every observation of an element; results are not cached, so a
// side-effecting transform fires once per pull.
func Select[T, O any](r *Range[T], transform func(T) O) *Range[O] {
	return NewRange(func() Cursor[O] {
		return &selectCursor[T, O]{prev: r.Start(), transform: transform}
	})
}

type selectCursor[T, O any] struct {
	prev      Cursor[T]
	transform func(T) O
}

func (c *selectCursor[T, O]) Next() (O, bool) {
	v, ok := c.prev.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return c.transform(v), true
}

// SelectToString renders each element through its canonical textual
// representation, as produced by fmt.Sprint.
func SelectToString[T any](r *Range[T]) *Range[string] {
	return Select(r, func(v T) string {
		return fmt.Sprint(v)
	})
}

// SelectMany maps each element to a nested range and flattens the results.
// Empty nested ranges are skipped transparently; the nested range currently
// open is drained before the predecessor moves forward.
func SelectMany[T, O any](r *Range[T], transform func(T) *Range[O]) *Range[O] {
	return NewRange(func() Cursor[O] {
		return &selectManyCursor[T, O]{prev: r.Start(), transform: transform}
	})
}

type selectManyCursor[T, O any] struct {
	prev      Cursor[T]
	transform func(T) *Range[O]
	inner     Cursor[O]
}

func (c *selectManyCursor[T, O]) Next() (O, bool) {
	for {
		if c.inner != nil {
			if v, ok := c.inner.Next(); ok {
				return v, true
			}
			c.inner = nil
		}
		v, ok := c.prev.Next()
		if !ok {
			var zero O
			return zero, false
		}
		c.inner = c.transform(v).Start()
	}
}
