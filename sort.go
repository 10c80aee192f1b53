package linq

import (
	"cmp"
	"sort"
)

// SortDirection selects the ordering applied by OrderBy and ThenBy.
type SortDirection int

const (
	// Ascending sorts smaller keys first.
	Ascending SortDirection = iota
	// Descending sorts larger keys first.
	Descending
)

// OrderedRange is a Range produced by OrderBy or ThenBy. It carries the
// composed comparator so a following ThenBy can delegate ties through the
// whole key chain; the embedded Range chains into every other stage.
//
// Starting a traversal materializes the unsorted predecessor into a buffer
// and stable-sorts it; the buffer is rebuilt on every Start, never shared
// between traversals.
type OrderedRange[T any] struct {
	*Range[T]
	source *Range[T]
	less   func(a, b T) bool
}

// OrderBy sorts the range by the given key in the given direction using a
// buffered stable sort. Refine the ordering with ThenBy.
func OrderBy[T any, K cmp.Ordered](r *Range[T], key func(T) K, dir SortDirection) *OrderedRange[T] {
	return newOrderedRange(r, keyLess(key, dir))
}

// OrderByAscending is shorthand for OrderBy with Ascending.
func OrderByAscending[T any, K cmp.Ordered](r *Range[T], key func(T) K) *OrderedRange[T] {
	return OrderBy(r, key, Ascending)
}

// OrderByDescending is shorthand for OrderBy with Descending.
func OrderByDescending[T any, K cmp.Ordered](r *Range[T], key func(T) K) *OrderedRange[T] {
	return OrderBy(r, key, Descending)
}

// ThenBy refines the ordering of a sorted range: elements tied under every
// preceding key are ordered by the given key and direction. Accepting only
// an OrderedRange makes ThenBy on an unsorted range a compile-time error.
func ThenBy[T any, K cmp.Ordered](r *OrderedRange[T], key func(T) K, dir SortDirection) *OrderedRange[T] {
	prev := r.less
	tie := keyLess(key, dir)
	return newOrderedRange(r.source, func(a, b T) bool {
		if prev(a, b) {
			return true
		}
		if prev(b, a) {
			return false
		}
		return tie(a, b)
	})
}

// ThenByAscending is shorthand for ThenBy with Ascending.
func ThenByAscending[T any, K cmp.Ordered](r *OrderedRange[T], key func(T) K) *OrderedRange[T] {
	return ThenBy(r, key, Ascending)
}

// ThenByDescending is shorthand for ThenBy with Descending.
func ThenByDescending[T any, K cmp.Ordered](r *OrderedRange[T], key func(T) K) *OrderedRange[T] {
	return ThenBy(r, key, Descending)
}

// keyLess builds the comparator for one key link. Descending compares with
// swapped operands rather than negating, which keeps equal keys equal.
func keyLess[T any, K cmp.Ordered](key func(T) K, dir SortDirection) func(a, b T) bool {
	return func(a, b T) bool {
		ka, kb := key(a), key(b)
		if dir == Descending {
			return kb < ka
		}
		return ka < kb
	}
}

func newOrderedRange[T any](source *Range[T], less func(a, b T) bool) *OrderedRange[T] {
	return &OrderedRange[T]{
		Range: NewRange(func() Cursor[T] {
			buf := collect(source.Start())
			sort.SliceStable(buf, func(i, j int) bool {
				return less(buf[i], buf[j])
			})
			return &sliceCursor[T]{items: buf}
		}),
		source: source,
		less:   less,
	}
}
