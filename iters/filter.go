package iters

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

// Filter returns a new map with the pairs that match pred, in their original order.
func Filter[K comparable, V any](m *ordmap.Map[K, V], pred Predicate[K, V]) *ordmap.Map[K, V] {
	filtered := ordmap.New[K, V]()
	for k, v := range m.Iter() {
		if pred(v, k, m) {
			filtered.Set(k, v)
		}
	}
	return filtered
}
