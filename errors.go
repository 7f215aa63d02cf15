package elastic

import (
	"errors"

	"github.com/ehsanranjbar/elastic/schema"
)

var (
	// ErrInvalidPath is returned for malformed or empty paths.
	ErrInvalidPath = schema.ErrInvalidPath
	// ErrTypePathConflict is returned when Set would have to descend through a leaf.
	ErrTypePathConflict = schema.ErrTypePathConflict
	// ErrCyclicStructure is returned when the data refers to one of its own ancestors.
	ErrCyclicStructure = schema.ErrCyclicStructure
	// ErrMaxDepthExceeded is returned when the data is nested deeper than the configured limit.
	ErrMaxDepthExceeded = schema.ErrMaxDepthExceeded
	// ErrUnsupportedData is returned when a value cannot be used as container data.
	ErrUnsupportedData = errors.New("unsupported data")
	// ErrNotObject is returned when a decoded document is not an object.
	ErrNotObject = errors.New("not an object")
	// ErrUnknownExtension is returned by Call for names that were never registered.
	ErrUnknownExtension = errors.New("unknown extension")
)
