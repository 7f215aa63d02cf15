package elastic_test

import (
	"testing"

	"github.com/ehsanranjbar/elastic"
	"github.com/ehsanranjbar/elastic/testutil"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const primitivesJSON = `{"path":{"to":{"string":"string","integer":42,"float":3.14,"boolean":true,"null":null}}}`

func TestToJSON(t *testing.T) {
	c := elastic.MustCreate(testutil.Primitives())

	js, err := c.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, primitivesJSON, js)

	js, err = elastic.MustCreate(testutil.Unsorted()).ToJSON(true)
	require.NoError(t, err)
	require.Equal(t, "{\n\t\"a\": 3,\n\t\"b\": 2,\n\t\"c\": 1\n}", js)

	js, err = elastic.New().ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, "{}", js)
}

func TestJSONMarshaler(t *testing.T) {
	c := elastic.MustCreate(testutil.Primitives())

	bz, err := json.Marshal(map[string]any{"doc": c})
	require.NoError(t, err)
	require.Equal(t, `{"doc":`+primitivesJSON+`}`, string(bz))

	var decoded elastic.Container
	require.NoError(t, json.Unmarshal([]byte(primitivesJSON), &decoded))
	require.Equal(t, []string{"path"}, decoded.Keys())

	v, err := decoded.Get("path.to.integer")
	require.NoError(t, err)
	require.Equal(t, float64(42), v)
}

func TestFromJSON(t *testing.T) {
	c, err := elastic.FromJSON([]byte(primitivesJSON))
	require.NoError(t, err)

	js, err := c.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, primitivesJSON, js)

	_, err = elastic.FromJSON([]byte(`[1, 2]`))
	require.ErrorIs(t, err, elastic.ErrNotObject)

	_, err = elastic.FromJSON([]byte(`{"a":`))
	require.Error(t, err)
}

func TestYAML(t *testing.T) {
	c := elastic.MustCreate(testutil.UnsortedNested())

	bz, err := c.ToYAML()
	require.NoError(t, err)

	decoded, err := elastic.FromYAML(bz)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, decoded.Keys())

	want, err := c.ToJSON(false)
	require.NoError(t, err)
	got, err := decoded.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = elastic.FromYAML([]byte("- 1\n- 2\n"))
	require.ErrorIs(t, err, elastic.ErrNotObject)
}

func TestBinary(t *testing.T) {
	c := elastic.MustCreate(testutil.Primitives())

	bz, err := c.MarshalBinary()
	require.NoError(t, err)

	decoded, err := elastic.FromBinary(bz)
	require.NoError(t, err)

	js, err := decoded.ToJSON(false)
	require.NoError(t, err)
	require.Equal(t, primitivesJSON, js)

	var other elastic.Container
	require.NoError(t, other.UnmarshalBinary(bz))
	require.Equal(t, 1, other.Len())
}
