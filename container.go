package elastic

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/ehsanranjbar/elastic/ordmap"
	"github.com/ehsanranjbar/elastic/schema"
)

// View is a flattened mapping of paths to values.
type View = ordmap.Map[string, any]

// Container wraps nested data with path based access and array like iteration.
// The data lives in an unexported field, so none of the container's own
// members ever show up in Keys, Entries or any encoded output.
//
// A Container is not safe for concurrent use.
type Container struct {
	data     *schema.Object
	exts     extensions
	maxDepth int
}

// WithMaxDepth limits how deep flattening, cloning and normalization may descend. Zero means unlimited.
func WithMaxDepth(depth int) func(*Container) {
	return func(c *Container) {
		c.maxDepth = depth
	}
}

// New creates an empty Container.
func New(opts ...func(*Container)) *Container {
	c := &Container{data: schema.NewObject()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create creates a new Container over data.
//
// A *schema.Object or another Container's data is adopted without copying, so
// later mutations are visible through both. A map[string]any is converted into
// an object with sorted keys and a []any becomes an object keyed by index.
// nil yields an empty Container. A Container source also passes on its
// extensions and options, which opts may then override.
func Create(data any, opts ...func(*Container)) (*Container, error) {
	c := &Container{data: schema.NewObject()}
	if src, ok := data.(*Container); ok && src != nil {
		c.data, c.exts, c.maxDepth = src.Data(), src.exts, src.maxDepth
	}
	for _, opt := range opts {
		opt(c)
	}

	switch d := data.(type) {
	case nil, *Container:
	case *schema.Object:
		if d != nil {
			c.data = d
		}
	case map[string]any, []any:
		v, err := c.normalize(d)
		if err != nil {
			return nil, err
		}
		switch vv := v.(type) {
		case *schema.Object:
			c.data = vv
		case []any:
			for i, e := range vv {
				c.data.Set(strconv.Itoa(i), e)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedData, data)
	}
	return c, nil
}

// MustCreate is like Create but panics if an error occurs.
func MustCreate(data any, opts ...func(*Container)) *Container {
	c, err := Create(data, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromEntries creates a new Container from key value pairs. Later duplicates
// overwrite earlier ones in place.
func FromEntries(entries iter.Seq2[string, any], opts ...func(*Container)) (*Container, error) {
	c := New(opts...)
	for k, v := range entries {
		nv, err := c.normalize(v)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", k, err)
		}
		c.data.Set(k, nv)
	}
	return c, nil
}

// Assign creates a new Container holding the top level keys of target
// followed by those of every source. Neither target nor the sources are modified.
func Assign(target any, sources ...any) (*Container, error) {
	c := New()
	if err := c.Assign(append([]any{target}, sources...)...); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign shallow merges the top level keys of every source into c, in order.
// Sources may be Containers, objects, maps or nil.
func (c *Container) Assign(sources ...any) error {
	for i, src := range sources {
		var seq iter.Seq2[string, any]
		switch s := src.(type) {
		case nil:
			continue
		case *Container:
			seq = s.Entries()
		case *schema.Object, map[string]any:
			seq = schema.Children(s)
		default:
			return fmt.Errorf("source %d: %w: %T", i, ErrUnsupportedData, src)
		}

		for k, v := range seq {
			nv, err := c.normalize(v)
			if err != nil {
				return fmt.Errorf("source %d: key %q: %w", i, k, err)
			}
			c.data.Set(k, nv)
		}
	}
	return nil
}

// derive creates a Container over data that shares c's extensions and options.
func (c *Container) derive(data *schema.Object) *Container {
	return &Container{
		data:     data,
		exts:     c.exts,
		maxDepth: c.maxDepth,
	}
}

// normalize converts raw maps reachable from v into objects. Containers are unwrapped.
func (c *Container) normalize(v any) (any, error) {
	if cc, ok := v.(*Container); ok {
		return cc.Data(), nil
	}
	return schema.Normalize(v, c.maxDepth)
}

// Data returns the underlying object. It is shared, not copied.
func (c *Container) Data() *schema.Object {
	if c.data == nil {
		c.data = schema.NewObject()
	}
	return c.data
}

// Keys returns the top level keys in order.
func (c *Container) Keys() []string {
	return c.Data().Keys()
}

// Values returns the top level values in order.
func (c *Container) Values() []any {
	return c.Data().Values()
}

// Entries iterates over the top level key value pairs in order.
func (c *Container) Entries() iter.Seq2[string, any] {
	return c.Data().Iter()
}

// Len returns the number of top level keys.
func (c *Container) Len() int {
	return c.Data().Len()
}
