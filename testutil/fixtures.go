package testutil

import (
	"github.com/ehsanranjbar/elastic/schema"
)

// Primitives returns a nested object holding one value of every scalar kind under "path.to".
func Primitives() *schema.Object {
	return schema.ObjectOf(
		"path", schema.ObjectOf(
			"to", schema.ObjectOf(
				"string", "string",
				"integer", 42,
				"float", 3.14,
				"boolean", true,
				"null", nil,
			),
		),
	)
}

// Numbers returns {a: 1, b: 2, c: 3, d: 4, e: 5, f: 6}.
func Numbers() *schema.Object {
	return schema.ObjectOf("a", 1, "b", 2, "c", 3, "d", 4, "e", 5, "f", 6)
}

// Unsorted returns {a: 3, b: 2, c: 1}.
func Unsorted() *schema.Object {
	return schema.ObjectOf("a", 3, "b", 2, "c", 1)
}

// UnsortedNested returns an object whose leaves are out of order across levels.
func UnsortedNested() *schema.Object {
	return schema.ObjectOf(
		"a", schema.ObjectOf("aa", 3, "ab", 1),
		"b", schema.ObjectOf("ba", schema.ObjectOf("baa", 2)),
		"c", 0,
	)
}

// Deep returns {a: {aa: {aaa: 1}, ab: 42}}.
func Deep() *schema.Object {
	return schema.ObjectOf(
		"a", schema.ObjectOf(
			"aa", schema.ObjectOf("aaa", 1),
			"ab", 42,
		),
	)
}

// Pet is a typed struct used to check that structs are treated as leaves.
type Pet struct {
	Name string   `json:"name,omitempty"`
	Tags []string `json:"tags,omitempty"`
}
