package elastic

import (
	"fmt"

	"github.com/ehsanranjbar/elastic/schema"
)

// Get returns the value at path, or the first of def (nil without one) when
// the path does not resolve. Objects are returned as Containers sharing the
// data with c; raw maps met on the way are converted into objects in place so
// that the sharing holds for them too. Arrays and leaves are returned as they
// are; slots emptied by Delete read as schema.IsHole.
//
// Only a malformed path is an error; absence never is.
func (c *Container) Get(path string, def ...any) (any, error) {
	p, err := schema.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return c.GetPath(p, def...)
}

// GetPath is like Get but takes a pre-split path, as built by schema.PathOf.
func (c *Container) GetPath(p schema.Path, def ...any) (any, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	v, ok := schema.Get(c.Data(), p)
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return nil, nil
	}
	return c.wrap(v, p)
}

// wrap turns an object found at p into a Container over it.
func (c *Container) wrap(v any, p schema.Path) (any, error) {
	switch vv := v.(type) {
	case *schema.Object:
		return c.derive(vv), nil
	case map[string]any:
		obj, err := c.normalize(vv)
		if err != nil {
			return nil, err
		}
		if len(p) > 0 {
			if _, err := schema.Set(c.Data(), p, obj); err != nil {
				return nil, err
			}
		}
		return c.derive(obj.(*schema.Object)), nil
	default:
		return v, nil
	}
}

// Has reports whether path resolves, following own keys and in range indices
// only. A present nil counts, an array hole does not. Malformed paths never
// resolve.
func (c *Container) Has(path string) bool {
	p, err := schema.ParsePath(path)
	if err != nil {
		return false
	}
	return c.HasPath(p)
}

// HasPath is like Has but takes a pre-split path.
func (c *Container) HasPath(p schema.Path) bool {
	return len(p) > 0 && schema.Has(c.Data(), p)
}

// Set writes value at path, creating missing intermediate objects and arrays.
// It fails with ErrTypePathConflict instead of overwriting a leaf that the
// path would have to pass through.
func (c *Container) Set(path string, value any) error {
	p, err := schema.ParsePath(path)
	if err != nil {
		return err
	}
	return c.SetPath(p, value)
}

// SetPath is like Set but takes a pre-split path.
func (c *Container) SetPath(p schema.Path, value any) error {
	v, err := c.normalize(value)
	if err != nil {
		return err
	}
	_, err = schema.Set(c.Data(), p, v)
	return err
}

// MustSet is like Set but panics if an error occurs. It returns c for chaining.
func (c *Container) MustSet(path string, value any) *Container {
	if err := c.Set(path, value); err != nil {
		panic(err)
	}
	return c
}

// Delete removes the value at path and reports whether something was removed.
// A removed array element leaves a hole: the array keeps its length, later
// elements keep their indices and the hole encodes as null. Emptied parents
// are kept.
func (c *Container) Delete(path string) (bool, error) {
	p, err := schema.ParsePath(path)
	if err != nil {
		return false, err
	}
	return c.DeletePath(p)
}

// DeletePath is like Delete but takes a pre-split path.
func (c *Container) DeletePath(p schema.Path) (bool, error) {
	_, removed, err := schema.Delete(c.Data(), p)
	return removed, err
}
