package qlutil_test

import (
	"testing"

	"github.com/ehsanranjbar/elastic/internal/qlutil"
	"github.com/ehsanranjbar/elastic/schema"
	"github.com/stretchr/testify/require"
)

func newContext(v any) *qlutil.ContextWrapper[any] {
	return qlutil.NewContextWrapper[any](
		v,
		schema.NewConvertPathExtractor[any](schema.Accessor{}, qlutil.PlainValue),
		schema.NewFlattener(),
	)
}

func TestContextWrapper(t *testing.T) {
	data := schema.ObjectOf(
		"name", "rex",
		"age", 4,
		"tags", []any{"good", "boy"},
		"owner", schema.ObjectOf("name", "ann"),
	)
	ctx := newContext(data)

	v, ok := ctx.Get("owner.name")
	require.True(t, ok)
	require.Equal(t, "ann", v.Value())

	_, ok = ctx.Get("owner.missing")
	require.False(t, ok)

	row := ctx.Row()
	require.Contains(t, row, "owner")
	require.Contains(t, row, "tags.1")

	tests := []struct {
		expr string
		want bool
	}{
		{expr: `name == "rex"`, want: true},
		{expr: `age > 3 AND owner.name == "ann"`, want: true},
		{expr: `age > 10`, want: false},
		{expr: `missing == 1`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			m, err := qlutil.Compile(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.want, m.Matches(ctx))
		})
	}
}

func TestPairContextWrapper(t *testing.T) {
	data := schema.ObjectOf("limit", 3, "a", schema.ObjectOf("b", 5))
	root := newContext(data)

	tests := []struct {
		name  string
		expr  string
		path  string
		value any
		want  bool
	}{
		{name: "Value", expr: `_value > 3`, path: "a.b", value: 5, want: true},
		{name: "Value below", expr: `_value > 3`, path: "x", value: 1, want: false},
		{name: "Path", expr: `_path == "a.b"`, path: "a.b", value: 5, want: true},
		{name: "Root fallback", expr: `_value > limit`, path: "a.b", value: 5, want: true},
		{name: "Nested value", expr: `_value.b == 5`, path: "a", value: schema.ObjectOf("b", 5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := qlutil.Compile(tt.expr)
			require.NoError(t, err)
			ctx := qlutil.NewPairContextWrapper(root, tt.path, tt.value)
			require.Equal(t, tt.want, m.Matches(ctx))
		})
	}

	ctx := qlutil.NewPairContextWrapper(nil, "p", 1)
	_, ok := ctx.Get("limit")
	require.False(t, ok)
	require.Len(t, ctx.Row(), 2)
}

func TestCompileError(t *testing.T) {
	_, err := qlutil.Compile(`a ==`)
	require.Error(t, err)
}
