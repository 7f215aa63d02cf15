package schema

import (
	"github.com/ehsanranjbar/elastic/utils/reflecthelpers"
)

// guard tracks the collections on the current traversal stack so that a
// collection reachable from itself is reported instead of recursing forever.
// Shared sub-collections that are not ancestors of each other are fine.
type guard struct {
	maxDepth  int
	ancestors map[uintptr]struct{}
}

func newGuard(maxDepth int) *guard {
	return &guard{
		maxDepth:  maxDepth,
		ancestors: make(map[uintptr]struct{}),
	}
}

// enter registers v, found at p, as an ancestor. The returned func must be called
// when the traversal leaves v.
func (g *guard) enter(v any, p Path) (func(), error) {
	if g.maxDepth > 0 && len(p) > g.maxDepth {
		return nil, pathError("traverse", p, ErrMaxDepthExceeded)
	}

	id, ok := reflecthelpers.Identity(v)
	if !ok {
		return func() {}, nil
	}
	if _, seen := g.ancestors[id]; seen {
		return nil, pathError("traverse", p, ErrCyclicStructure)
	}

	g.ancestors[id] = struct{}{}
	return func() { delete(g.ancestors, id) }, nil
}
