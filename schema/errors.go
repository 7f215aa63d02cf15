package schema

import (
	"errors"
)

var (
	// ErrInvalidPath is returned when a path is empty or malformed.
	ErrInvalidPath = errors.New("invalid path")
	// ErrTypePathConflict is returned when a set would have to descend through a leaf
	// or use a key segment against an array.
	ErrTypePathConflict = errors.New("path conflicts with existing value type")
	// ErrCyclicStructure is returned when a collection contains itself.
	ErrCyclicStructure = errors.New("cyclic structure")
	// ErrMaxDepthExceeded is returned when a traversal goes deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("max depth exceeded")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error { return e.Err }

func pathError(op string, p Path, err error) error {
	return &PathError{Op: op, Path: FormatPath(p), Err: err}
}
