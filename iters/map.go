package iters

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

// Map returns a new map with the same keys and every value replaced by f's result.
func Map[K comparable, V, U any](m *ordmap.Map[K, V], f Func[K, V, U]) *ordmap.Map[K, U] {
	mapped := ordmap.New[K, U]()
	for k, v := range m.Iter() {
		mapped.Set(k, f(v, k, m))
	}
	return mapped
}
