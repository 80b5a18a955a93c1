// Package omap implements a map that remembers insertion order.  Iteration
// visits keys in the order they were first set, even if a key is overwritten
// later.
package omap

type Map[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func New[K comparable, V any](n int) Map[K, V] {
	return Map[K, V]{
		keys: make([]K, 0, n),
		vals: make(map[K]V, n),
	}
}

func (m *Map[K, V]) Set(k K, v V) {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

func (m Map[K, V]) Len() int {
	return len(m.keys)
}
