package elastic

import (
	"github.com/ehsanranjbar/elastic/internal/qlutil"
	"github.com/ehsanranjbar/elastic/schema"
)

var plainExtractor = schema.NewConvertPathExtractor[any](schema.Accessor{}, qlutil.PlainValue)

func (c *Container) context() *qlutil.ContextWrapper[any] {
	return qlutil.NewContextWrapper[any](c.Data(), plainExtractor, c.flatter(schema.AllLevels))
}

// Match evaluates a boolean qlbridge expression against c. Identifiers are
// paths, so `owner.name == "ann" AND age > 3` reads two values of c.
// Identifiers that do not resolve make the expression false.
func (c *Container) Match(expr string) (bool, error) {
	m, err := qlutil.Compile(expr)
	if err != nil {
		return false, err
	}
	return m.Matches(c.context()), nil
}

// Expr compiles a boolean qlbridge expression into a Predicate for the
// iteration methods. `_value` is the current leaf and `_path` its path;
// `_value.<path>` descends into it and any other identifier is a path of c.
func (c *Container) Expr(expr string) (Predicate, error) {
	m, err := qlutil.Compile(expr)
	if err != nil {
		return nil, err
	}

	root := c.context()
	return func(value any, path string, _ *View) bool {
		return m.Matches(qlutil.NewPairContextWrapper(root, path, value))
	}, nil
}
