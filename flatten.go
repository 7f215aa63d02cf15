package elastic

import (
	"github.com/ehsanranjbar/elastic/schema"
)

func (c *Container) flatter(mode schema.FlattenMode) *schema.Flattener {
	return schema.NewFlattener(schema.WithMode(mode), schema.WithMaxDepth(c.maxDepth))
}

// Flatten returns every collection and leaf below the root keyed by path, in
// depth-first pre-order. The view is computed on every call.
func (c *Container) Flatten() (*View, error) {
	return c.flatter(schema.AllLevels).Flatten(c.Data())
}

// FlattenLeaves is like Flatten but only returns leaves.
func (c *Container) FlattenLeaves() (*View, error) {
	return c.flatter(schema.LeavesOnly).Flatten(c.Data())
}

// Paths returns the paths of Flatten in order.
func (c *Container) Paths() ([]string, error) {
	flat, err := c.Flatten()
	if err != nil {
		return nil, err
	}
	return flat.Keys(), nil
}

// FinalValues returns the leaf values in flatten order.
func (c *Container) FinalValues() ([]any, error) {
	flat, err := c.FlattenLeaves()
	if err != nil {
		return nil, err
	}
	return flat.Values(), nil
}
