package elastic

import (
	"github.com/ehsanranjbar/elastic/schema"
)

// Clone returns a deep copy of c with the same extensions and options.
func (c *Container) Clone() (*Container, error) {
	cp, err := schema.DeepCopy(c.Data(), c.maxDepth)
	if err != nil {
		return nil, err
	}
	return c.derive(cp.(*schema.Object)), nil
}

// CloneAt returns a deep copy of the value at path: a Container for objects,
// the copied value otherwise. A missing path yields nil.
func (c *Container) CloneAt(path string) (any, error) {
	p, err := schema.ParsePath(path)
	if err != nil {
		return nil, err
	}

	v, ok := schema.Get(c.Data(), p)
	if !ok {
		return nil, nil
	}

	v, err = c.normalize(v)
	if err != nil {
		return nil, err
	}
	cp, err := schema.DeepCopy(v, c.maxDepth)
	if err != nil {
		return nil, err
	}
	if obj, ok := cp.(*schema.Object); ok {
		return c.derive(obj), nil
	}
	return cp, nil
}
