package schema

import (
	"errors"
	"fmt"

	"github.com/ehsanranjbar/elastic/utils/reflecthelpers"
)

// ErrPathNotFound is returned by ExtractPath when a path does not resolve.
var ErrPathNotFound = errors.New("path not found")

// PathExtractor is an interface for extracting a value with the given path from a given value.
type PathExtractor[T any] interface {
	ExtractPath(t T, path string) (any, error)
}

// Accessor is a PathExtractor over nested objects and arrays.
type Accessor struct{}

var _ PathExtractor[any] = Accessor{}

// ExtractPath implements the PathExtractor interface.
func (Accessor) ExtractPath(v any, path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	value, ok := Get(v, p)
	if !ok {
		return nil, pathError("extract", p, ErrPathNotFound)
	}
	return value, nil
}

// ConvertPathExtractor is a PathExtractor that converts the extracted value from base extractor using the given converter.
type ConvertPathExtractor[T any] struct {
	base PathExtractor[T]
	c    func(any) (any, error)
}

// NewConvertPathExtractor creates a new ConvertPathExtractor with the given base extractor and converter.
func NewConvertPathExtractor[T any](base PathExtractor[T], c func(any) (any, error)) ConvertPathExtractor[T] {
	return ConvertPathExtractor[T]{base: base, c: c}
}

// ExtractPath implements the PathExtractor interface.
func (pe ConvertPathExtractor[T]) ExtractPath(t T, path string) (any, error) {
	v, err := pe.base.ExtractPath(t, path)
	if err != nil {
		return nil, err
	}

	return pe.c(v)
}

// Get resolves p against root. It reports false when any segment is missing,
// including out of range indices, key segments against arrays and segments
// that would descend through a leaf. An empty path resolves to root.
func Get(root any, p Path) (any, bool) {
	cur := root
	for _, seg := range p {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Has reports whether every segment of p is an own key (or an in range index
// that is not a hole) of its parent.
func Has(root any, p Path) bool {
	_, ok := Get(root, p)
	return ok
}

func child(v any, seg string) (any, bool) {
	switch vv := v.(type) {
	case *Object:
		if vv == nil {
			return nil, false
		}
		return vv.Get(seg)
	case map[string]any:
		c, ok := vv[seg]
		return c, ok
	case []any:
		i, ok := IsIndex(seg)
		if !ok || i >= len(vv) || IsHole(vv[i]) {
			return nil, false
		}
		return vv[i], true
	default:
		return nil, false
	}
}

// Set writes value at p, creating missing intermediate collections: an array
// when the following segment is an index, an object otherwise. A nil
// intermediate or a hole counts as missing. Setting an index past the end of an array
// pads it with nils.
//
// Set returns root, which differs from the argument only when root is an array
// that had to grow.
func Set(root any, p Path, value any) (any, error) {
	if len(p) == 0 {
		return nil, pathError("set", p, ErrInvalidPath)
	}
	if !IsCollection(root) {
		return nil, pathError("set", nil, fmt.Errorf("%w: root is %T", ErrTypePathConflict, root))
	}

	return set(root, p, 0, value)
}

func set(node any, p Path, i int, value any) (any, error) {
	var (
		seg  = p[i]
		last = i == len(p)-1
	)

	switch n := node.(type) {
	case *Object:
		if last {
			n.Set(seg, value)
			return n, nil
		}
		c, _ := n.Get(seg)
		updated, err := setChild(c, p, i, value)
		if err != nil {
			return nil, err
		}
		n.Set(seg, updated)
		return n, nil

	case map[string]any:
		if last {
			n[seg] = value
			return n, nil
		}
		updated, err := setChild(n[seg], p, i, value)
		if err != nil {
			return nil, err
		}
		n[seg] = updated
		return n, nil

	case []any:
		idx, ok := IsIndex(seg)
		if !ok {
			return nil, pathError("set", p[:i+1], fmt.Errorf("%w: %q is not an array index", ErrTypePathConflict, seg))
		}
		if idx >= len(n) {
			n = append(n, make([]any, idx-len(n)+1)...)
		}
		if last {
			n[idx] = value
			return n, nil
		}
		updated, err := setChild(n[idx], p, i, value)
		if err != nil {
			return nil, err
		}
		n[idx] = updated
		return n, nil
	}

	return nil, pathError("set", p[:i], ErrTypePathConflict)
}

// setChild descends into c, the value found at p[:i+1], creating it when missing.
func setChild(c any, p Path, i int, value any) (any, error) {
	if reflecthelpers.IsNil(c) || IsHole(c) {
		if _, ok := IsIndex(p[i+1]); ok {
			c = []any{}
		} else {
			c = NewObject()
		}
	} else if !IsCollection(c) {
		return nil, pathError("set", p[:i+1], fmt.Errorf("%w: cannot descend through %T", ErrTypePathConflict, c))
	}

	return set(c, p, i+1, value)
}

// Delete removes the value at p and reports whether something was removed.
// A removed array element leaves a hole, so the array keeps its length and
// later elements keep their indices. Intermediate collections left empty are
// kept. Like Set, it returns root.
func Delete(root any, p Path) (any, bool, error) {
	if len(p) == 0 {
		return nil, false, pathError("delete", p, ErrInvalidPath)
	}

	parentPath, seg := p[:len(p)-1], p[len(p)-1]
	parent, ok := Get(root, parentPath)
	if !ok {
		return root, false, nil
	}

	switch pv := parent.(type) {
	case *Object:
		if pv == nil {
			return root, false, nil
		}
		return root, pv.Delete(seg), nil
	case map[string]any:
		if _, ok := pv[seg]; !ok {
			return root, false, nil
		}
		delete(pv, seg)
		return root, true, nil
	case []any:
		idx, ok := IsIndex(seg)
		if !ok || idx >= len(pv) || IsHole(pv[idx]) {
			return root, false, nil
		}
		pv[idx] = hole{}
		return root, true, nil
	}

	return root, false, nil
}
