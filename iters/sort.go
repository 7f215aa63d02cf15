package iters

import (
	"slices"

	"github.com/ehsanranjbar/elastic/ordmap"
)

// Sort returns a new map with the pairs ordered by cmp applied to their values.
// The sort is stable: pairs that compare equal keep their relative order.
func Sort[K comparable, V any](m *ordmap.Map[K, V], cmp func(a, b V) int) *ordmap.Map[K, V] {
	type pair struct {
		key   K
		value V
	}

	pairs := make([]pair, 0, m.Len())
	for k, v := range m.Iter() {
		pairs = append(pairs, pair{key: k, value: v})
	}
	slices.SortStableFunc(pairs, func(a, b pair) int {
		return cmp(a.value, b.value)
	})

	sorted := ordmap.New[K, V]()
	for _, p := range pairs {
		sorted.Set(p.key, p.value)
	}
	return sorted
}
