package schema

import (
	"fmt"

	"github.com/ehsanranjbar/elastic/ordmap"
)

// Flatter is an interface for flattening a hierarchy of values to an ordered map of paths -> values.
type Flatter[T any] interface {
	Flatten(t T) (*ordmap.Map[string, any], error)
}

// FlattenMode selects which nodes a Flattener emits.
type FlattenMode int

const (
	// AllLevels emits every collection below the root and every leaf.
	AllLevels FlattenMode = iota
	// LeavesOnly emits leaves only.
	LeavesOnly
)

// Flattener is a Flatter for nested objects and arrays.
type Flattener struct {
	mode     FlattenMode
	maxDepth int
}

var _ Flatter[any] = (*Flattener)(nil)

// NewFlattener creates a new Flattener. The default mode is AllLevels with no depth limit.
func NewFlattener(opts ...func(*Flattener)) *Flattener {
	f := &Flattener{mode: AllLevels}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithMode sets the flatten mode.
func WithMode(mode FlattenMode) func(*Flattener) {
	return func(f *Flattener) {
		f.mode = mode
	}
}

// WithMaxDepth limits how many levels deep the flattener descends. Zero means unlimited.
func WithMaxDepth(depth int) func(*Flattener) {
	return func(f *Flattener) {
		f.maxDepth = depth
	}
}

// Flatten implements the Flatter interface. Entries are in depth-first pre-order;
// in AllLevels mode a collection precedes its children. A leaf root yields an
// empty map.
func (f *Flattener) Flatten(v any) (*ordmap.Map[string, any], error) {
	flat := ordmap.New[string, any]()
	if !IsCollection(v) {
		return flat, nil
	}

	err := f.walk(v, nil, flat, newGuard(f.maxDepth))
	if err != nil {
		return nil, err
	}
	return flat, nil
}

func (f *Flattener) walk(v any, p Path, flat *ordmap.Map[string, any], g *guard) error {
	leave, err := g.enter(v, p)
	if err != nil {
		return err
	}
	defer leave()

	for key, child := range Children(v) {
		cp := p.Append(key)
		path := FormatPath(cp)
		if !IsCollection(child) {
			if err := flat.Add(path, child); err != nil {
				return fmt.Errorf("failed to add %q: %w", path, err)
			}
			continue
		}

		if f.mode == AllLevels {
			if err := flat.Add(path, child); err != nil {
				return fmt.Errorf("failed to add %q: %w", path, err)
			}
		}
		if err := f.walk(child, cp, flat, g); err != nil {
			return err
		}
	}

	return nil
}

// Flatten flattens v in AllLevels mode.
func Flatten(v any) (*ordmap.Map[string, any], error) {
	return NewFlattener().Flatten(v)
}

// FlattenLeaves flattens v in LeavesOnly mode.
func FlattenLeaves(v any) (*ordmap.Map[string, any], error) {
	return NewFlattener(WithMode(LeavesOnly)).Flatten(v)
}
