package iters

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

// First returns the first pair that matches pred.
func First[K comparable, V any](m *ordmap.Map[K, V], pred Predicate[K, V]) (key K, value V, ok bool) {
	for k, v := range m.Iter() {
		if pred(v, k, m) {
			return k, v, true
		}
	}
	return key, value, false
}
