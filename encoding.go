package elastic

import (
	"encoding"
	"fmt"

	"github.com/ehsanranjbar/elastic/codec"
	"github.com/ehsanranjbar/elastic/schema"
)

var (
	_ encoding.BinaryMarshaler   = (*Container)(nil)
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)

// ToJSON encodes the data of c as JSON, keeping key order. pretty indents with tabs.
func (c *Container) ToJSON(pretty bool) (string, error) {
	bz, err := codec.JSON{Pretty: pretty}.Encode(c.Data())
	if err != nil {
		return "", err
	}
	return string(bz), nil
}

// MarshalJSON implements the json.Marshaler interface.
func (c *Container) MarshalJSON() ([]byte, error) {
	return codec.JSON{}.Encode(c.Data())
}

// UnmarshalJSON implements the json.Unmarshaler interface. The document must be an object.
func (c *Container) UnmarshalJSON(bz []byte) error {
	return c.decode(codec.JSON{}, bz)
}

// ToYAML encodes the data of c as YAML, keeping key order.
func (c *Container) ToYAML() ([]byte, error) {
	return codec.YAML{}.Encode(c.Data())
}

// MarshalBinary encodes the data of c as MessagePack.
func (c *Container) MarshalBinary() ([]byte, error) {
	return codec.Msgpack{}.Encode(c.Data())
}

// UnmarshalBinary decodes MessagePack produced by MarshalBinary into c.
func (c *Container) UnmarshalBinary(bz []byte) error {
	return c.decode(codec.Msgpack{}, bz)
}

func (c *Container) decode(dec codec.Decoder[any], bz []byte) error {
	v, err := dec.Decode(bz)
	if err != nil {
		return err
	}

	obj, ok := v.(*schema.Object)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotObject, v)
	}
	c.data = obj
	return nil
}

// FromJSON creates a new Container from a JSON object.
func FromJSON(bz []byte, opts ...func(*Container)) (*Container, error) {
	return from(codec.JSON{}, bz, opts)
}

// FromYAML creates a new Container from a YAML mapping.
func FromYAML(bz []byte, opts ...func(*Container)) (*Container, error) {
	return from(codec.YAML{}, bz, opts)
}

// FromBinary creates a new Container from MessagePack produced by MarshalBinary.
func FromBinary(bz []byte, opts ...func(*Container)) (*Container, error) {
	return from(codec.Msgpack{}, bz, opts)
}

func from(dec codec.Decoder[any], bz []byte, opts []func(*Container)) (*Container, error) {
	c := New(opts...)
	if err := c.decode(dec, bz); err != nil {
		return nil, err
	}
	return c, nil
}
