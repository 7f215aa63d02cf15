package iters

import (
	"iter"

	"github.com/ehsanranjbar/elastic/ordmap"
)

// Reducer folds one pair into the accumulated state.
type Reducer[K comparable, V, S any] func(state S, value V, key K, m *ordmap.Map[K, V]) S

// Aggregate folds the pairs from first to last, starting from initial.
func Aggregate[K comparable, V, S any](m *ordmap.Map[K, V], f Reducer[K, V, S], initial S) S {
	return aggregate(m, m.Iter(), f, initial)
}

// AggregateRight folds the pairs from last to first, starting from initial.
func AggregateRight[K comparable, V, S any](m *ordmap.Map[K, V], f Reducer[K, V, S], initial S) S {
	return aggregate(m, m.Backward(), f, initial)
}

func aggregate[K comparable, V, S any](m *ordmap.Map[K, V], seq iter.Seq2[K, V], f Reducer[K, V, S], state S) S {
	for k, v := range seq {
		state = f(state, v, k, m)
	}
	return state
}
