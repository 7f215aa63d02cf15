package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ehsanranjbar/elastic/schema"
	json "github.com/goccy/go-json"
)

// JSON is a codec for JSON documents. Objects decode into *schema.Object so
// that key order survives a round trip; numbers decode as float64.
type JSON struct {
	// Pretty indents the output with tabs.
	Pretty bool
}

// Encode encodes the given value to JSON.
func (c JSON) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", "\t")
	}
	return json.Marshal(v)
}

// Decode decodes a single JSON document.
func (JSON) Decode(bz []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(bz))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}
	v, err := decodeJSONValue(dec, tok)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder, tok json.Token) (any, error) {
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch d {
	case '{':
		obj := schema.NewObject()
		for {
			kt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("failed to read object key: %w", err)
			}
			if kd, ok := kt.(json.Delim); ok && kd == '}' {
				return obj, nil
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", kt)
			}

			vt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("failed to read value of %q: %w", key, err)
			}
			v, err := decodeJSONValue(dec, vt)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
	case '[':
		arr := []any{}
		for {
			vt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("failed to read array element: %w", err)
			}
			if ad, ok := vt.(json.Delim); ok && ad == ']' {
				return arr, nil
			}
			v, err := decodeJSONValue(dec, vt)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
}
