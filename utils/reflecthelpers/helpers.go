package reflecthelpers

import (
	"reflect"
)

// Identity returns the address that identifies the referenced storage of v.
// Only pointers, maps and non-empty slices have an identity; two values with the
// same identity share their underlying storage.
func Identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return uintptr(rv.UnsafePointer()), true
	case reflect.Slice:
		if rv.Len() == 0 {
			return 0, false
		}
		return uintptr(rv.UnsafePointer()), true
	default:
		return 0, false
	}
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
