package elastic

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// num is a Go numeric value. Integers also keep their exact magnitude so that
// large values, which float64 cannot tell apart, still compare exactly.
type num struct {
	f     float64
	exact bool
	neg   bool
	mag   uint64
}

func signed[T constraints.Signed](v T) num {
	n := num{f: float64(v), exact: true}
	if v < 0 {
		n.neg = true
		n.mag = uint64(-(int64(v) + 1)) + 1
	} else {
		n.mag = uint64(v)
	}
	return n
}

func unsigned[T constraints.Unsigned](v T) num {
	return num{f: float64(v), exact: true, mag: uint64(v)}
}

func float[T constraints.Float](v T) num {
	return num{f: float64(v)}
}

func (n num) equal(o num) bool {
	if n.exact && o.exact {
		return n.neg == o.neg && n.mag == o.mag
	}
	return n.f == o.f
}

// number returns v as a num if it holds a Go numeric type.
func number(v any) (num, bool) {
	switch n := v.(type) {
	case int:
		return signed(n), true
	case int8:
		return signed(n), true
	case int16:
		return signed(n), true
	case int32:
		return signed(n), true
	case int64:
		return signed(n), true
	case uint:
		return unsigned(n), true
	case uint8:
		return unsigned(n), true
	case uint16:
		return unsigned(n), true
	case uint32:
		return unsigned(n), true
	case uint64:
		return unsigned(n), true
	case uintptr:
		return unsigned(n), true
	case float32:
		return float(n), true
	case float64:
		return float(n), true
	default:
		return num{}, false
	}
}

// coerce converts v to a number the way arithmetic on loosely typed data
// does: booleans are 0 or 1, nil is 0, and strings are parsed with the empty
// string counting as 0. NaN never coerces.
func coerce(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, false
		}
	default:
		n, ok := number(v)
		if !ok {
			return 0, false
		}
		f = n.f
	}

	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// NumericCompare orders a and b by their numeric value. Values that do not
// coerce to a number compare equal to everything, so a stable sort leaves
// them where they are relative to their neighbours.
func NumericCompare(a, b any) int {
	x, ok := coerce(a)
	if !ok {
		return 0
	}
	y, ok := coerce(b)
	if !ok {
		return 0
	}
	return cmp.Compare(x, y)
}

// StrictEqual reports whether a and b are the same value. Numbers of
// different Go types are compared by value, integers exactly; everything else
// must share a dynamic type. Values of non comparable types, like slices or
// maps, are never equal.
func StrictEqual(a, b any) bool {
	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x.equal(y)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
