package linq

import "cmp"

// Terminal operations: consuming operations that reduce a range to a scalar
// or a materialized collection. Operations that may have no answer report
// absence through their second return value; the -Or variants substitute a
// caller-supplied default instead.

// optionalPred unpacks the trailing optional predicate accepted by First,
// Last, Count and friends.
func optionalPred[T any](preds []func(T) bool) func(T) bool {
	switch len(preds) {
	case 0:
		return nil
	case 1:
		return preds[0]
	default:
		panic("linq: more than one predicate given")
	}
}

// Each invokes fn for every element, driving one full traversal.
func (r *Range[T]) Each(fn func(T)) {
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		fn(v)
	}
}

// ToSlice materializes the range into a slice.
func (r *Range[T]) ToSlice() []T {
	return collect(r.start())
}

// Count reports the number of elements, or the number satisfying the
// optional predicate.
func (r *Range[T]) Count(pred ...func(T) bool) int {
	p := optionalPred(pred)
	n := 0
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if p == nil || p(v) {
			n++
		}
	}
	return n
}

// First returns the first element, or the first satisfying the optional
// predicate. The second return value is false when there is none.
func (r *Range[T]) First(pred ...func(T) bool) (T, bool) {
	p := optionalPred(pred)
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if p == nil || p(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstOr is First with a default for the empty case.
func (r *Range[T]) FirstOr(def T, pred ...func(T) bool) T {
	if v, ok := r.First(pred...); ok {
		return v
	}
	return def
}

// Last returns the last element, or the last satisfying the optional
// predicate. The second return value is false when there is none.
func (r *Range[T]) Last(pred ...func(T) bool) (T, bool) {
	p := optionalPred(pred)
	var last T
	found := false
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if p == nil || p(v) {
			last = v
			found = true
		}
	}
	return last, found
}

// LastOr is Last with a default for the empty case.
func (r *Range[T]) LastOr(def T, pred ...func(T) bool) T {
	if v, ok := r.Last(pred...); ok {
		return v
	}
	return def
}

// Any reports whether some element satisfies pred. Traversal stops at the
// first match.
func (r *Range[T]) Any(pred func(T) bool) bool {
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred. An empty range yields
// true.
func (r *Range[T]) All(pred func(T) bool) bool {
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// None reports whether the range contains an element failing pred; an empty
// range yields true. Traversal stops at the first failing element.
func (r *Range[T]) None(pred func(T) bool) bool {
	anyElements := false
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		anyElements = true
		if !pred(v) {
			return true
		}
	}
	return !anyElements
}

// ElementAt returns the element at the given zero-based position. The
// second return value is false when the range is shorter or index is
// negative.
func (r *Range[T]) ElementAt(index int) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}
	i := 0
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if i >= index {
			return v, true
		}
		i++
	}
	var zero T
	return zero, false
}

// ElementAtOr is ElementAt with a default for out-of-bounds positions.
func (r *Range[T]) ElementAtOr(index int, def T) T {
	if v, ok := r.ElementAt(index); ok {
		return v
	}
	return def
}

// Aggregate folds the range with fn; the first element seeds the
// accumulator. An empty range yields the zero value.
func (r *Range[T]) Aggregate(fn func(acc, v T) T) T {
	var acc T
	first := true
	cur := r.start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if first {
			acc = v
			first = false
		} else {
			acc = fn(acc, v)
		}
	}
	return acc
}

// Sum adds up the elements. The second return value is false for an empty
// range. Strings concatenate.
func Sum[T cmp.Ordered](r *Range[T]) (T, bool) {
	var sum T
	first := true
	cur := r.Start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if first {
			sum = v
			first = false
		} else {
			sum += v
		}
	}
	return sum, !first
}

// Min returns the smallest element. The second return value is false for an
// empty range.
func Min[T cmp.Ordered](r *Range[T]) (T, bool) {
	var min T
	first := true
	cur := r.Start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

// Max returns the largest element. The second return value is false for an
// empty range.
func Max[T cmp.Ordered](r *Range[T]) (T, bool) {
	var max T
	first := true
	cur := r.Start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if first || max < v {
			max = v
			first = false
		}
	}
	return max, !first
}

// Average returns the arithmetic mean as a float64, promoting the summed
// elements to the higher-precision type before dividing. The second return
// value is false for an empty range; there is no division-by-zero path.
func Average[T Number](r *Range[T]) (float64, bool) {
	var sum T
	n := 0
	cur := r.Start()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if n == 0 {
			sum = v
		} else {
			sum += v
		}
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
