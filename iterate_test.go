package elastic_test

import (
	"cmp"
	"testing"

	"github.com/ehsanranjbar/elastic"
	"github.com/ehsanranjbar/elastic/schema"
	"github.com/ehsanranjbar/elastic/testutil"
	"github.com/stretchr/testify/require"
)

func greaterThan(n int) elastic.Predicate {
	return func(v any, _ string, _ *elastic.View) bool {
		i, ok := v.(int)
		return ok && i > n
	}
}

func TestForEach(t *testing.T) {
	c := elastic.MustCreate(testutil.Deep())

	var paths []string
	err := c.ForEach(func(v any, path string, view *elastic.View) {
		require.Equal(t, 2, view.Len())
		paths = append(paths, path)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a.aa.aaa", "a.ab"}, paths)

	require.Panics(t, func() {
		_ = c.ForEach(func(any, string, *elastic.View) { panic("boom") })
	})
}

func TestEverySome(t *testing.T) {
	tests := []struct {
		name  string
		data  any
		pred  elastic.Predicate
		every bool
		some  bool
	}{
		{name: "All match", data: testutil.Numbers(), pred: greaterThan(0), every: true, some: true},
		{name: "Some match", data: testutil.Numbers(), pred: greaterThan(3), every: false, some: true},
		{name: "None match", data: testutil.Numbers(), pred: greaterThan(6), every: false, some: false},
		{name: "Empty", data: nil, pred: greaterThan(0), every: true, some: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := elastic.MustCreate(tt.data)

			every, err := c.Every(tt.pred)
			require.NoError(t, err)
			require.Equal(t, tt.every, every)

			some, err := c.Some(tt.pred)
			require.NoError(t, err)
			require.Equal(t, tt.some, some)
		})
	}
}

func TestFilter(t *testing.T) {
	c := elastic.MustCreate(testutil.Numbers())

	filtered, err := c.Filter(greaterThan(3))
	require.NoError(t, err)
	require.Equal(t, []string{"d", "e", "f"}, filtered.Keys())
	require.Equal(t, []any{4, 5, 6}, filtered.Values())
	require.Equal(t, 6, c.Len())

	nested := elastic.MustCreate(testutil.UnsortedNested())
	filtered, err = nested.Filter(greaterThan(1))
	require.NoError(t, err)
	js, err := filtered.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, `{"a":{"aa":3},"b":{"ba":{"baa":2}}}`, js)
}

func TestMap(t *testing.T) {
	c := elastic.MustCreate(testutil.UnsortedNested())

	mapped, err := c.Map(func(v any, _ string, _ *elastic.View) any {
		return v.(int) * 10
	})
	require.NoError(t, err)

	got, err := mapped.Get("b.ba.baa")
	require.NoError(t, err)
	require.Equal(t, 20, got)

	before, err := c.FlattenLeaves()
	require.NoError(t, err)
	after, err := mapped.FlattenLeaves()
	require.NoError(t, err)
	require.Equal(t, before.Keys(), after.Keys())

	mapped, err = elastic.MustCreate(schema.ObjectOf("list", []any{1, 2})).Map(func(v any, path string, _ *elastic.View) any {
		return path
	})
	require.NoError(t, err)
	got, err = mapped.Get("list")
	require.NoError(t, err)
	require.Equal(t, []any{"list.0", "list.1"}, got)
}

func TestFind(t *testing.T) {
	c := elastic.MustCreate(testutil.Deep())

	path, ok, err := c.FindPath(func(v any, _ string, _ *elastic.View) bool { return v == 42 })
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a.ab", path)

	v, ok, err := c.Find(greaterThan(0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok, err = c.Find(greaterThan(100))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, v)

	_, ok, err = c.FindPath(greaterThan(100))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReduce(t *testing.T) {
	c := elastic.MustCreate(testutil.Numbers())
	sum := func(acc, v any, _ string, _ *elastic.View) any {
		return acc.(int) + v.(int)
	}

	got, err := c.Reduce(sum, 0)
	require.NoError(t, err)
	require.Equal(t, 21, got)

	got, err = c.ReduceRight(func(acc, _ any, path string, _ *elastic.View) any {
		return acc.(string) + path
	}, "")
	require.NoError(t, err)
	require.Equal(t, "fedcba", got)

	got, err = c.Reduce(func(acc, v any, path string, _ *elastic.View) any {
		m := acc.(map[string]any)
		m[path] = v
		return m
	}, map[string]any{})
	require.NoError(t, err)
	require.IsType(t, &elastic.Container{}, got)
	require.Equal(t, 6, got.(*elastic.Container).Len())
}

func TestSort(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		sorted, err := elastic.MustCreate(testutil.Unsorted()).Sort(nil)
		require.NoError(t, err)
		require.Equal(t, []string{"c", "b", "a"}, sorted.Keys())
		require.Equal(t, []any{1, 2, 3}, sorted.Values())
	})

	t.Run("Comparator", func(t *testing.T) {
		sorted, err := elastic.MustCreate(testutil.Numbers()).Sort(func(a, b any) int {
			return cmp.Compare(b.(int), a.(int))
		})
		require.NoError(t, err)
		require.Equal(t, []string{"f", "e", "d", "c", "b", "a"}, sorted.Keys())
	})

	t.Run("Nested", func(t *testing.T) {
		sorted, err := elastic.MustCreate(testutil.UnsortedNested()).Sort(nil)
		require.NoError(t, err)
		js, err := sorted.ToJSON(false)
		require.NoError(t, err)
		require.Equal(t, `{"c":0,"a":{"ab":1,"aa":3},"b":{"ba":{"baa":2}}}`, js)
	})

	t.Run("Mixed", func(t *testing.T) {
		c := elastic.MustCreate(schema.ObjectOf("a", "10", "b", 9, "c", true))
		sorted, err := c.Sort(nil)
		require.NoError(t, err)
		require.Equal(t, []string{"c", "b", "a"}, sorted.Keys())
	})
}

func TestIncludes(t *testing.T) {
	c := elastic.MustCreate(schema.ObjectOf(
		"n", 3,
		"s", "str",
		"list", []any{nil},
		"ints", []int{1},
	))

	tests := []struct {
		target any
		want   bool
	}{
		{target: 3, want: true},
		{target: 3.0, want: true},
		{target: "3", want: false},
		{target: "str", want: true},
		{target: nil, want: true},
		{target: 7, want: false},
		{target: []int{1}, want: false},
	}

	for _, tt := range tests {
		got, err := c.Includes(tt.target)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%v", tt.target)
	}
}

func TestCount(t *testing.T) {
	c := elastic.MustCreate(testutil.Numbers())

	n, err := c.Count(greaterThan(4))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = c.Count(nil)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestRebuildKeepsSpecialKeys(t *testing.T) {
	keys := []string{"a.b", `a\b`, ""}

	identity := func(c *elastic.Container) (*elastic.Container, error) {
		return c.Map(func(v any, _ string, _ *elastic.View) any { return v })
	}
	all := func(c *elastic.Container) (*elastic.Container, error) {
		return c.Filter(func(any, string, *elastic.View) bool { return true })
	}
	sorted := func(c *elastic.Container) (*elastic.Container, error) {
		return c.Sort(nil)
	}

	ops := []struct {
		name string
		run  func(*elastic.Container) (*elastic.Container, error)
	}{
		{name: "Map", run: identity},
		{name: "Filter", run: all},
		{name: "Sort", run: sorted},
	}

	for _, key := range keys {
		for _, op := range ops {
			t.Run(op.name+"/"+key, func(t *testing.T) {
				c := elastic.MustCreate(schema.ObjectOf(
					key, schema.ObjectOf("x", 1),
					"x", 2,
					"n", schema.ObjectOf(key, 3),
				))

				out, err := op.run(c)
				require.NoError(t, err)

				before, err := c.FlattenLeaves()
				require.NoError(t, err)
				after, err := out.FlattenLeaves()
				require.NoError(t, err)
				require.Equal(t, before.Keys(), after.Keys())

				want, err := c.ToJSON(false)
				require.NoError(t, err)
				got, err := out.ToJSON(false)
				require.NoError(t, err)
				require.Equal(t, want, got)

				path, ok, err := out.FindPath(func(v any, _ string, _ *elastic.View) bool { return v == 3 })
				require.NoError(t, err)
				require.True(t, ok)
				v, err := out.Get(path, "missing")
				require.NoError(t, err)
				require.Equal(t, 3, v)
			})
		}
	}
}

func TestEmptyKeyAtRoot(t *testing.T) {
	c, err := elastic.FromJSON([]byte(`{"":1,"b":2}`))
	require.NoError(t, err)

	mapped, err := c.Map(func(v any, _ string, _ *elastic.View) any { return v })
	require.NoError(t, err)

	js, err := mapped.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, `{"":1,"b":2}`, js)

	paths, err := c.Paths()
	require.NoError(t, err)
	require.Equal(t, []string{`\e`, "b"}, paths)

	got, err := c.Get(`\e`)
	require.NoError(t, err)
	require.Equal(t, float64(1), got)
}
