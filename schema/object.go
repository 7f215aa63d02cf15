package schema

import (
	"bytes"
	"fmt"

	"github.com/ehsanranjbar/elastic/ordmap"
	json "github.com/goccy/go-json"
)

// Object is a string keyed collection that remembers insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	ordmap.Map[string, any]
}

// NewObject creates a new empty Object.
func NewObject() *Object {
	return &Object{}
}

// ObjectOf creates an Object from alternating key, value arguments.
// It panics if a key is not a string or the arguments are unbalanced.
func ObjectOf(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("schema: ObjectOf requires key value pairs")
	}

	obj := NewObject()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("schema: ObjectOf key must be a string but got %T", kv[i]))
		}
		obj.Set(k, kv[i+1])
	}
	return obj
}

// MarshalJSON implements the json.Marshaler interface, keeping key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range o.Iter() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
