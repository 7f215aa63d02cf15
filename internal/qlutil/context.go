package qlutil

import (
	"time"

	qlexpr "github.com/araddon/qlbridge/expr"
	qlvalue "github.com/araddon/qlbridge/value"
	qlvm "github.com/araddon/qlbridge/vm"
	"github.com/ehsanranjbar/elastic/schema"
)

// ContextWrapper is a wrapper around a type that implements the qlbridge.ContextReader interface.
// Identifiers are resolved as paths with the extractor.
type ContextWrapper[D any] struct {
	data      D
	extractor schema.PathExtractor[D]
	flatter   schema.Flatter[D]
}

// NewContextWrapper creates a new ContextWrapper.
func NewContextWrapper[D any](
	data D,
	extractor schema.PathExtractor[D],
	flatter schema.Flatter[D],
) *ContextWrapper[D] {
	return &ContextWrapper[D]{
		data:      data,
		extractor: extractor,
		flatter:   flatter,
	}
}

// Get implements the qlbridge.ContextReader interface.
func (c *ContextWrapper[D]) Get(key string) (qlvalue.Value, bool) {
	v, err := c.extractor.ExtractPath(c.data, key)
	if err != nil {
		return qlvalue.NewErrorValue(err), false
	}
	return qlvalue.NewValue(v), true
}

// Row implements the qlbridge.ContextReader interface.
func (c *ContextWrapper[D]) Row() map[string]qlvalue.Value {
	if c.flatter == nil {
		return nil
	}

	flat, err := c.flatter.Flatten(c.data)
	if err != nil {
		return nil
	}
	row := make(map[string]qlvalue.Value, flat.Len())
	for k, v := range flat.Iter() {
		if v, err = PlainValue(v); err != nil {
			return nil
		}
		row[k] = qlvalue.NewValue(v)
	}
	return row
}

// Ts implements the qlbridge.ContextReader interface.
func (c *ContextWrapper[D]) Ts() time.Time { return time.Time{} }

// Matcher is a parsed qlbridge boolean expression.
type Matcher struct {
	node qlexpr.Node
}

// Compile parses the given expression.
func Compile(q string) (*Matcher, error) {
	node, err := qlexpr.ParseExpression(q)
	if err != nil {
		return nil, err
	}
	return &Matcher{node: node}, nil
}

// Matches reports whether the expression evaluates to true in ctx.
// Evaluation failures, like unknown identifiers, count as no match.
func (m *Matcher) Matches(ctx qlexpr.EvalContext) bool {
	t, ok := qlvm.MatchesExpr(ctx, m.node)
	return ok && t
}

// String returns the expression text.
func (m *Matcher) String() string {
	return m.node.String()
}
