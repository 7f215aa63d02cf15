package iters

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

// Func is a callback invoked with a value, its key and the whole map being iterated.
type Func[K comparable, V, R any] func(value V, key K, m *ordmap.Map[K, V]) R

// Predicate is a Func that reports whether a pair matches.
type Predicate[K comparable, V any] func(value V, key K, m *ordmap.Map[K, V]) bool

// ForEach invokes f for every pair in order.
func ForEach[K comparable, V any](m *ordmap.Map[K, V], f func(V, K, *ordmap.Map[K, V])) {
	for k, v := range m.Iter() {
		f(v, k, m)
	}
}

// Every reports whether all pairs match. It stops at the first pair that does
// not and returns true for an empty map.
func Every[K comparable, V any](m *ordmap.Map[K, V], pred Predicate[K, V]) bool {
	for k, v := range m.Iter() {
		if !pred(v, k, m) {
			return false
		}
	}
	return true
}

// Some reports whether any pair matches. It stops at the first pair that does
// and returns false for an empty map.
func Some[K comparable, V any](m *ordmap.Map[K, V], pred Predicate[K, V]) bool {
	for k, v := range m.Iter() {
		if pred(v, k, m) {
			return true
		}
	}
	return false
}
