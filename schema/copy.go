package schema

import (
	"strconv"
)

// DeepCopy returns a copy of v in which every collection is duplicated.
// Objects stay *Object, maps stay maps and arrays stay arrays; leaves are
// copied by value, so leaves holding references keep sharing them.
func DeepCopy(v any, maxDepth int) (any, error) {
	r := &rebuilder{
		g:       newGuard(maxDepth),
		objects: true,
		build: func(src any, entries *Object) any {
			if m, ok := src.(map[string]any); ok {
				cp := make(map[string]any, len(m))
				for k, child := range entries.Iter() {
					cp[k] = child
				}
				return cp
			}
			return entries
		},
	}
	return r.rebuild(v, nil)
}

// Normalize converts every map[string]any reachable from v into an *Object
// with sorted keys and rebuilds arrays around the converted elements. Existing
// *Object values are adopted as they are.
func Normalize(v any, maxDepth int) (any, error) {
	r := &rebuilder{
		g: newGuard(maxDepth),
		build: func(_ any, entries *Object) any {
			return entries
		},
	}
	return r.rebuild(v, nil)
}

// Plain converts every *Object reachable from v into a map[string]any and
// every array hole into nil.
func Plain(v any, maxDepth int) (any, error) {
	r := &rebuilder{
		g:       newGuard(maxDepth),
		objects: true,
		plain:   true,
		build: func(_ any, entries *Object) any {
			m := make(map[string]any, entries.Len())
			for k, child := range entries.Iter() {
				m[k] = child
			}
			return m
		},
	}
	return r.rebuild(v, nil)
}

// rebuilder walks a value bottom up. Arrays are always rebuilt, objects are
// handed to build with their rebuilt children.
type rebuilder struct {
	g     *guard
	build func(src any, entries *Object) any
	// objects rebuilds *Object values too instead of adopting them.
	objects bool
	// plain replaces holes with nil.
	plain bool
}

func (r *rebuilder) rebuild(v any, p Path) (any, error) {
	kind := Classify(v)
	if kind == KindLeaf {
		if r.plain && IsHole(v) {
			return nil, nil
		}
		return v, nil
	}
	if _, isObj := v.(*Object); isObj && !r.objects {
		return v, nil
	}

	leave, err := r.g.enter(v, p)
	if err != nil {
		return nil, err
	}
	defer leave()

	if kind == KindArray {
		src := v.([]any)
		dst := make([]any, len(src))
		for i, c := range src {
			dst[i], err = r.rebuild(c, p.Append(strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	entries := NewObject()
	for k, c := range Children(v) {
		rc, err := r.rebuild(c, p.Append(k))
		if err != nil {
			return nil, err
		}
		entries.Set(k, rc)
	}
	return r.build(v, entries), nil
}
