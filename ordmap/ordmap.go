package ordmap

import (
	"errors"
	"iter"
)

var (
	// ErrKeyExists is returned when a key already exists in the map.
	ErrKeyExists = errors.New("key already exists")
)

// Map is a map that maintains the insertion order of the keys.
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	index map[K]int
	order []pair[K, V]
}

// pair is a key-value pair.
type pair[K, V any] struct {
	key   K
	value V
}

// New creates a new Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int),
		order: []pair[K, V]{},
	}
}

// Add adds a key-value pair to the map. it returns error if the key already exists.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, ok := m.index[key]; ok {
		return ErrKeyExists
	}

	m.Set(key, value)
	return nil
}

// Set sets the value of a key. A new key is appended to the end of the order,
// an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}

	if i, ok := m.index[key]; ok {
		m.order[i].value = value
		return
	}

	m.index[key] = len(m.order)
	m.order = append(m.order, pair[K, V]{key: key, value: value})
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	i, ok := m.index[key]
	if !ok {
		return value, false
	}
	return m.order[i].value, true
}

// Has reports whether the key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Iter returns an iterator that iterates over all key-value pairs in order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.order {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward returns an iterator that iterates over all key-value pairs in reverse order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.order) - 1; i >= 0; i-- {
			if !yield(m.order[i].key, m.order[i].value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.order))
	for _, p := range m.order {
		keys = append(keys, p.key)
	}
	return keys
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.order))
	for _, p := range m.order {
		values = append(values, p.value)
	}
	return values
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Delete deletes a key from the map and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}

	delete(m.index, key)
	m.order = append(m.order[:i], m.order[i+1:]...)
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j].key] = j
	}

	return true
}

// Clone returns a shallow copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		index: make(map[K]int, len(m.order)),
		order: make([]pair[K, V], len(m.order)),
	}
	copy(c.order, m.order)
	for k, i := range m.index {
		c.index[k] = i
	}
	return c
}
