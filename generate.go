package linq

// GenResult is the tagged outcome of one generator invocation: either a
// value to emit or the finish marker that ends the sequence.
type GenResult[T any] struct {
	value T
	done  bool
}

// Yield wraps a value the generator wants to emit.
func Yield[T any](v T) GenResult[T] {
	return GenResult[T]{value: v}
}

// Finished marks the end of a generated sequence. The finishing result is
// never emitted.
func Finished[T any]() GenResult[T] {
	return GenResult[T]{done: true}
}

// Generate builds an unbounded source driven by fn, which is invoked with
// the iteration index 0, 1, 2, … until it returns Finished.
func Generate[T any](fn func(i int) GenResult[T]) *Range[T] {
	return NewRange(func() Cursor[T] {
		return &generateCursor[T]{fn: fn}
	})
}

type generateCursor[T any] struct {
	fn   func(int) GenResult[T]
	i    int
	done bool
}

func (c *generateCursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	res := c.fn(c.i)
	c.i++
	if res.done {
		c.done = true
		var zero T
		return zero, false
	}
	return res.value, true
}

// FromTo produces the inclusive arithmetic progression from start to end
// with a step of 1, descending when end < start.
func FromTo[T Number](start, end T) *Range[T] {
	return FromToBy(start, end, 1)
}

// FromToBy produces the inclusive arithmetic progression from start towards
// end. Only the step's magnitude is used; direction comes from the bounds,
// so FromToBy(0, 10, -2) and FromToBy(0, 10, 2) are equivalent. The end
// bound is emitted only when the progression lands on it exactly.
//
// Panics if step is zero.
func FromToBy[T Number](start, end, step T) *Range[T] {
	if step == 0 {
		panic("linq: zero step given to FromToBy")
	}
	if step < 0 {
		step = -step
	}
	descending := end < start
	return NewRange(func() Cursor[T] {
		return &progressionCursor[T]{value: start, end: end, step: step, descending: descending}
	})
}

type progressionCursor[T Number] struct {
	value      T
	end        T
	step       T
	descending bool
	done       bool
}

// Next steps by the positive step magnitude and stops when the remaining
// distance to end is shorter than one step. Checking the distance before
// stepping keeps unsigned and near-limit values from wrapping; a distance
// that wrapped negative on a signed type means more than a full step
// remains.
func (c *progressionCursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v := c.value
	var d T
	if c.descending {
		d = v - c.end
	} else {
		d = c.end - v
	}
	if 0 <= d && d < c.step {
		c.done = true
	} else if c.descending {
		c.value = v - c.step
	} else {
		c.value = v + c.step
	}
	return v, true
}
