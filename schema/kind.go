package schema

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Kind classifies a value for traversal purposes.
type Kind int

const (
	// KindLeaf is any value that is not descended into.
	KindLeaf Kind = iota
	// KindObject is a string keyed collection: *Object or map[string]any.
	KindObject
	// KindArray is an index addressed collection: []any.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "leaf"
	}
}

// Classify returns the kind of v. Typed slices and maps, structs, pointers other
// than *Object and nil are all leaves.
func Classify(v any) Kind {
	switch vv := v.(type) {
	case *Object:
		if vv == nil {
			return KindLeaf
		}
		return KindObject
	case map[string]any:
		if vv == nil {
			return KindLeaf
		}
		return KindObject
	case []any:
		return KindArray
	default:
		return KindLeaf
	}
}

// IsCollection reports whether v is an object or an array.
func IsCollection(v any) bool {
	return Classify(v) != KindLeaf
}

// Children iterates over the direct children of a collection in traversal
// order: insertion order for *Object, sorted keys for map[string]any and index
// order for arrays. Array holes are skipped. It yields nothing for leaves.
func Children(v any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		switch vv := v.(type) {
		case *Object:
			if vv == nil {
				return
			}
			for k, child := range vv.Iter() {
				if !yield(k, child) {
					return
				}
			}
		case map[string]any:
			for _, k := range slices.Sorted(maps.Keys(vv)) {
				if !yield(k, vv[k]) {
					return
				}
			}
		case []any:
			for i, child := range vv {
				if IsHole(child) {
					continue
				}
				if !yield(strconv.Itoa(i), child) {
					return
				}
			}
		}
	}
}
