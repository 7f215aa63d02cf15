package elastic

import (
	"fmt"
	"maps"
	"slices"
)

// Extension is an operation attached to a Container by name.
type Extension func(c *Container, args ...any) (any, error)

// extensions is an immutable name to extension registry. Registering always
// produces a new registry, so containers sharing one never see each other's
// later registrations.
type extensions map[string]Extension

// with returns a registry holding the functions of exts on top of e. Entries
// that are not functions of a supported shape are ignored.
func (e extensions) with(exts map[string]any) extensions {
	next := maps.Clone(e)
	if next == nil {
		next = make(extensions, len(exts))
	}
	for name, v := range exts {
		if ext := asExtension(v); ext != nil {
			next[name] = ext
		}
	}
	return next
}

// asExtension adapts the supported function shapes to Extension.
func asExtension(v any) Extension {
	switch f := v.(type) {
	case Extension:
		return f
	case func(*Container, ...any) (any, error):
		return f
	case func(*Container) (any, error):
		return func(c *Container, _ ...any) (any, error) {
			return f(c)
		}
	case func(*Container) any:
		return func(c *Container, _ ...any) (any, error) {
			return f(c), nil
		}
	default:
		return nil
	}
}

// WithExtensions registers extensions on the Container being created. Values
// must be an Extension or a func(*Container, ...any) (any, error),
// func(*Container) (any, error) or func(*Container) any; anything else is
// ignored. A name registered twice keeps the last function.
func WithExtensions(exts map[string]any) func(*Container) {
	return func(c *Container) {
		c.exts = c.exts.with(exts)
	}
}

// Extend returns a Container sharing the data of c whose registry holds the
// extensions of c plus exts. c itself is unchanged.
func (c *Container) Extend(exts map[string]any) *Container {
	d := c.derive(c.Data())
	d.exts = c.exts.with(exts)
	return d
}

// HasExtension reports whether name is registered on c.
func (c *Container) HasExtension(name string) bool {
	_, ok := c.exts[name]
	return ok
}

// Extensions returns the registered names in sorted order.
func (c *Container) Extensions() []string {
	return slices.Sorted(maps.Keys(c.exts))
}

// Call invokes the extension registered as name with c as its receiver.
func (c *Container) Call(name string, args ...any) (any, error) {
	ext, ok := c.exts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
	}
	return ext(c, args...)
}

// MustCall is like Call but panics if an error occurs.
func (c *Container) MustCall(name string, args ...any) any {
	v, err := c.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}
