package codec

import (
	"fmt"

	"github.com/ehsanranjbar/elastic/schema"
	"github.com/goccy/go-yaml"
)

// YAML is a codec for YAML documents. Mappings decode into *schema.Object in
// document order; non-string mapping keys are formatted with fmt.
type YAML struct{}

// Encode encodes the given value to YAML.
func (YAML) Encode(v any) ([]byte, error) {
	bz, err := yaml.Marshal(toMapSlice(v))
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return bz, nil
}

// Decode decodes a single YAML document.
func (YAML) Decode(bz []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(bz, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	return fromMapSlice(v)
}

func toMapSlice(v any) any {
	switch schema.Classify(v) {
	case schema.KindObject:
		ms := yaml.MapSlice{}
		for k, c := range schema.Children(v) {
			ms = append(ms, yaml.MapItem{Key: k, Value: toMapSlice(c)})
		}
		return ms
	case schema.KindArray:
		src := v.([]any)
		dst := make([]any, len(src))
		for i, c := range src {
			dst[i] = toMapSlice(c)
		}
		return dst
	default:
		if schema.IsHole(v) {
			return nil
		}
		return v
	}
}

func fromMapSlice(v any) (any, error) {
	switch vv := v.(type) {
	case yaml.MapSlice:
		obj := schema.NewObject()
		for _, item := range vv {
			c, err := fromMapSlice(item.Value)
			if err != nil {
				return nil, err
			}
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			obj.Set(key, c)
		}
		return obj, nil
	case []any:
		arr := make([]any, len(vv))
		for i, c := range vv {
			var err error
			arr[i], err = fromMapSlice(c)
			if err != nil {
				return nil, err
			}
		}
		return arr, nil
	case map[string]any:
		return schema.Normalize(vv, 0)
	default:
		return v, nil
	}
}
