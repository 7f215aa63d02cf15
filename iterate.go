package elastic

import (
	"fmt"

	"github.com/ehsanranjbar/elastic/iters"
	"github.com/ehsanranjbar/elastic/schema"
)

type (
	// Predicate reports whether a leaf matches. view is the flattened leaf view being iterated.
	Predicate = iters.Predicate[string, any]
	// Mapper returns the replacement for a leaf value.
	Mapper = iters.Func[string, any, any]
	// Reducer folds a leaf into the accumulator.
	Reducer = iters.Reducer[string, any, any]
)

// The iteration methods below run over the leaves of c in flatten order and
// only fail when the data cannot be flattened. Panics raised by callbacks are
// not recovered.

// ForEach calls f for every leaf.
func (c *Container) ForEach(f func(value any, path string, view *View)) error {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return err
	}

	iters.ForEach(flat, f)
	return nil
}

// Every reports whether pred holds for every leaf. It is true for an empty container.
func (c *Container) Every(pred Predicate) (bool, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return false, err
	}
	return iters.Every(flat, pred), nil
}

// Some reports whether pred holds for any leaf. It is false for an empty container.
func (c *Container) Some(pred Predicate) (bool, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return false, err
	}
	return iters.Some(flat, pred), nil
}

// Count returns the number of leaves matching pred, or all leaves if pred is nil.
func (c *Container) Count(pred Predicate) (int, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return 0, err
	}
	return iters.Count(flat, pred), nil
}

// Filter returns a new Container holding only the leaves that match pred,
// written back at their paths. Ancestors are recreated as needed.
func (c *Container) Filter(pred Predicate) (*Container, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return c.rebuild(iters.Filter(flat, pred))
}

// Map returns a new Container with the same leaf paths as c and every leaf
// value replaced by the result of f.
func (c *Container) Map(f Mapper) (*Container, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return c.rebuild(iters.Map(flat, f))
}

// Sort returns a new Container built by writing the leaves of c in the order
// given by cmp, so the top level keys appear in the order their first leaf was
// sorted into. A nil cmp sorts numerically with NumericCompare. The sort is stable.
func (c *Container) Sort(cmp func(a, b any) int) (*Container, error) {
	if cmp == nil {
		cmp = NumericCompare
	}

	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return c.rebuild(iters.Sort(flat, cmp))
}

func (c *Container) rebuild(flat *View) (*Container, error) {
	out := c.derive(schema.NewObject())
	for path, v := range flat.Iter() {
		p, err := schema.ParsePath(path)
		if err != nil {
			return nil, err
		}
		if err := out.SetPath(p, v); err != nil {
			return nil, fmt.Errorf("failed to rebuild %q: %w", path, err)
		}
	}
	return out, nil
}

// Find returns the first leaf value matching pred.
func (c *Container) Find(pred Predicate) (any, bool, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, false, err
	}

	_, v, ok := iters.First(flat, pred)
	return v, ok, nil
}

// FindPath is like Find but returns the path of the leaf.
func (c *Container) FindPath(pred Predicate) (string, bool, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return "", false, err
	}

	path, _, ok := iters.First(flat, pred)
	return path, ok, nil
}

// Reduce folds the leaves from first to last into initial. An object
// accumulator is returned as a Container.
func (c *Container) Reduce(f Reducer, initial any) (any, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return c.wrap(iters.Aggregate(flat, f, initial), nil)
}

// ReduceRight is like Reduce but folds from the last leaf to the first.
func (c *Container) ReduceRight(f Reducer, initial any) (any, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return c.wrap(iters.AggregateRight(flat, f, initial), nil)
}

// Includes reports whether any leaf is StrictEqual to target.
func (c *Container) Includes(target any) (bool, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return false, err
	}
	return iters.Contains(flat, target, StrictEqual), nil
}
