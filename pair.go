package linq

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Pair is a key/value element, the shape required by the mapping sources and
// sinks.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap wraps a built-in map as a range of pairs. The key set is
// snapshotted per traversal, but values are read through the map at pull
// time; keys deleted between snapshot and pull are skipped. Iteration order
// is unspecified, like the map's own.
func FromMap[M ~map[K]V, K comparable, V any](container M) *Range[Pair[K, V]] {
	return NewRange(func() Cursor[Pair[K, V]] {
		keys := make([]K, 0, len(container))
		for k := range container {
			keys = append(keys, k)
		}
		return &mapCursor[M, K, V]{container: container, keys: keys}
	})
}

type mapCursor[M ~map[K]V, K comparable, V any] struct {
	container M
	keys      []K
	i         int
}

func (c *mapCursor[M, K, V]) Next() (Pair[K, V], bool) {
	for c.i < len(c.keys) {
		k := c.keys[c.i]
		c.i++
		if v, ok := c.container[k]; ok {
			return Pair[K, V]{Key: k, Value: v}, true
		}
	}
	return Pair[K, V]{}, false
}

// FromOrderedMap wraps an insertion-ordered map as a range of pairs,
// traversed oldest first. The map is referenced, not copied.
//
// Panics if container is nil.
func FromOrderedMap[K comparable, V any](container *orderedmap.OrderedMap[K, V]) *Range[Pair[K, V]] {
	if container == nil {
		panic("linq: nil container given to FromOrderedMap")
	}
	return NewRange(func() Cursor[Pair[K, V]] {
		return &orderedMapCursor[K, V]{pair: container.Oldest()}
	})
}

type orderedMapCursor[K comparable, V any] struct {
	pair *orderedmap.Pair[K, V]
}

func (c *orderedMapCursor[K, V]) Next() (Pair[K, V], bool) {
	if c.pair == nil {
		return Pair[K, V]{}, false
	}
	p := Pair[K, V]{Key: c.pair.Key, Value: c.pair.Value}
	c.pair = c.pair.Next()
	return p, true
}

// ToMap materializes a range of pairs into a built-in map. The first
// occurrence of a key wins; later duplicates are dropped.
func ToMap[K comparable, V any](r *Range[Pair[K, V]]) map[K]V {
	out := make(map[K]V)
	r.Each(func(p Pair[K, V]) {
		if _, exists := out[p.Key]; !exists {
			out[p.Key] = p.Value
		}
	})
	return out
}

// ToOrderedMap materializes a range of pairs into an insertion-ordered map,
// preserving encounter order. The first occurrence of a key wins; later
// duplicates are dropped.
func ToOrderedMap[K comparable, V any](r *Range[Pair[K, V]]) *orderedmap.OrderedMap[K, V] {
	out := orderedmap.New[K, V]()
	r.Each(func(p Pair[K, V]) {
		if _, exists := out.Get(p.Key); !exists {
			out.Set(p.Key, p.Value)
		}
	})
	return out
}
