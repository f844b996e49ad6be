package ordered

import (
	"iter"
	"slices"
)

// Map is a map that remembers the order in which keys were first inserted.
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	keys  []K
	index map[K]V
}

// Set stores v under k. A new key is appended; an existing key keeps its
// position and only has its value replaced.
func (m *Map[K, V]) Set(k K, v V) {
	if m.index == nil {
		m.index = make(map[K]V)
	}
	if _, ok := m.index[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.index[k] = v
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.index[k]
	return v, ok
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if _, ok := m.index[k]; !ok {
		return false
	}
	delete(m.index, k)
	m.keys = slices.DeleteFunc(m.keys, func(key K) bool { return key == k })
	return true
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K { return slices.Clone(m.keys) }

// All iterates over the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}
