package iters

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

// Count returns the number of pairs that match pred. A nil pred counts every pair.
func Count[K comparable, V any](m *ordmap.Map[K, V], pred Predicate[K, V]) int {
	if pred == nil {
		return m.Len()
	}

	return Aggregate[K, V, int](m, func(count int, v V, k K, m *ordmap.Map[K, V]) int {
		if pred(v, k, m) {
			return count + 1
		}
		return count
	}, 0)
}

// Contains reports whether any value of m equals target according to eq.
func Contains[K comparable, V any](m *ordmap.Map[K, V], target V, eq func(a, b V) bool) bool {
	return Some(m, func(v V, _ K, _ *ordmap.Map[K, V]) bool {
		return eq(v, target)
	})
}
