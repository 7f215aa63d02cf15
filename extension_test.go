package elastic_test

import (
	"errors"
	"testing"

	"github.com/ehsanranjbar/elastic"
	"github.com/ehsanranjbar/elastic/testutil"
	"github.com/stretchr/testify/require"
)

func sumLeaves(c *elastic.Container, _ ...any) (any, error) {
	return c.Reduce(func(acc, v any, _ string, _ *elastic.View) any {
		return acc.(int) + v.(int)
	}, 0)
}

func TestExtensions(t *testing.T) {
	c := elastic.MustCreate(testutil.Numbers(), elastic.WithExtensions(map[string]any{
		"sum":     sumLeaves,
		"size":    func(c *elastic.Container) any { return c.Len() },
		"first":   func(c *elastic.Container) (any, error) { return c.Get("a") },
		"ignored": 42,
	}))

	require.Equal(t, []string{"first", "size", "sum"}, c.Extensions())
	require.False(t, c.HasExtension("ignored"))

	v, err := c.Call("sum")
	require.NoError(t, err)
	require.Equal(t, 21, v)
	require.Equal(t, 6, c.MustCall("size"))
	require.Equal(t, 1, c.MustCall("first"))

	_, err = c.Call("missing")
	require.ErrorIs(t, err, elastic.ErrUnknownExtension)
	require.Panics(t, func() { c.MustCall("missing") })
}

func TestExtensionArgs(t *testing.T) {
	c := elastic.New(elastic.WithExtensions(map[string]any{
		"put": elastic.Extension(func(c *elastic.Container, args ...any) (any, error) {
			if len(args) != 2 {
				return nil, errors.New("put needs a path and a value")
			}
			return c, c.Set(args[0].(string), args[1])
		}),
	}))

	_, err := c.Call("put", "a.b", 1)
	require.NoError(t, err)
	require.True(t, c.Has("a.b"))

	_, err = c.Call("put")
	require.Error(t, err)
}

func TestExtensionsAreInstanceLocal(t *testing.T) {
	a := elastic.MustCreate(testutil.Numbers(), elastic.WithExtensions(map[string]any{"sum": sumLeaves}))
	b := elastic.MustCreate(testutil.Numbers())
	require.True(t, a.HasExtension("sum"))
	require.False(t, b.HasExtension("sum"))

	extended := a.Extend(map[string]any{
		"size": func(c *elastic.Container) any { return c.Len() },
	})
	require.True(t, extended.HasExtension("sum"))
	require.True(t, extended.HasExtension("size"))
	require.False(t, a.HasExtension("size"))

	extended.MustSet("g", 7)
	require.True(t, a.Has("g"))

	overwritten := a.Extend(map[string]any{
		"sum": func(*elastic.Container) any { return -1 },
	})
	require.Equal(t, -1, overwritten.MustCall("sum"))
	require.Equal(t, 28, a.MustCall("sum"))
}

func TestExtensionsAreInherited(t *testing.T) {
	c := elastic.MustCreate(testutil.Primitives(), elastic.WithExtensions(map[string]any{
		"size": func(c *elastic.Container) any { return c.Len() },
	}))

	sub, err := c.Get("path.to")
	require.NoError(t, err)
	require.Equal(t, 5, sub.(*elastic.Container).MustCall("size"))

	filtered, err := c.Filter(func(v any, _ string, _ *elastic.View) bool { return v == true })
	require.NoError(t, err)
	require.True(t, filtered.HasExtension("size"))

	cp, err := c.Clone()
	require.NoError(t, err)
	require.True(t, cp.HasExtension("size"))

	wrapped, err := elastic.Create(c)
	require.NoError(t, err)
	require.True(t, wrapped.HasExtension("size"))
}

func TestExtensionsDoNotLeak(t *testing.T) {
	c := elastic.New(elastic.WithExtensions(map[string]any{"sum": sumLeaves}))
	require.Empty(t, c.Keys())
	require.Equal(t, 0, c.Len())

	js, err := c.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, "{}", js)

	paths, err := c.Paths()
	require.NoError(t, err)
	require.Empty(t, paths)
}
