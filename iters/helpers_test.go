package iters_test

import (
	"github.com/ehsanranjbar/elastic/ordmap"
)

type view = ordmap.Map[string, int]

func numbers() *view {
	m := ordmap.New[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e", "f"} {
		m.Set(k, i+1)
	}
	return m
}
