package qlutil

import (
	"strings"
	"time"

	qlexpr "github.com/araddon/qlbridge/expr"
	qlvalue "github.com/araddon/qlbridge/value"
	"github.com/ehsanranjbar/elastic/schema"
)

// Reserved identifiers of PairContextWrapper.
const (
	ValueKey = "_value"
	PathKey  = "_path"
)

var valueExtractor = schema.NewConvertPathExtractor[any](schema.Accessor{}, PlainValue)

// PlainValue converts v into plain maps and slices that qlbridge can wrap.
func PlainValue(v any) (any, error) {
	return schema.Plain(v, 0)
}

// PairContextWrapper is a qlbridge.ContextReader over a single (path, value) pair
// of a flattened view. "_value" and "_path" resolve to the pair itself,
// "_value.<path>" descends into the value and any other identifier falls back to root.
type PairContextWrapper struct {
	root  qlexpr.ContextReader
	path  string
	value any
}

// NewPairContextWrapper creates a new PairContextWrapper. root may be nil.
func NewPairContextWrapper(root qlexpr.ContextReader, path string, value any) *PairContextWrapper {
	return &PairContextWrapper{
		root:  root,
		path:  path,
		value: value,
	}
}

// Get implements the qlbridge.ContextReader interface.
func (c *PairContextWrapper) Get(key string) (qlvalue.Value, bool) {
	switch {
	case key == PathKey:
		return qlvalue.NewStringValue(c.path), true
	case key == ValueKey:
		v, err := PlainValue(c.value)
		if err != nil {
			return qlvalue.NewErrorValue(err), false
		}
		return qlvalue.NewValue(v), true
	case strings.HasPrefix(key, ValueKey+"."):
		v, err := valueExtractor.ExtractPath(c.value, strings.TrimPrefix(key, ValueKey+"."))
		if err != nil {
			return qlvalue.NewErrorValue(err), false
		}
		return qlvalue.NewValue(v), true
	case c.root != nil:
		return c.root.Get(key)
	default:
		return qlvalue.NewNilValue(), false
	}
}

// Row implements the qlbridge.ContextReader interface.
func (c *PairContextWrapper) Row() map[string]qlvalue.Value {
	v, _ := c.Get(ValueKey)
	return map[string]qlvalue.Value{
		PathKey:  qlvalue.NewStringValue(c.path),
		ValueKey: v,
	}
}

// Ts implements the qlbridge.ContextReader interface.
func (c *PairContextWrapper) Ts() time.Time { return time.Time{} }
