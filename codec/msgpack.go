package codec

import (
	"bytes"
	"fmt"

	"github.com/ehsanranjbar/elastic/schema"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Msgpack is a binary codec based on MessagePack. Objects are written as maps
// in key order and read back into *schema.Object; integers decode as int64 or
// uint64 and floats as float64.
type Msgpack struct{}

// Encode encodes the given value to MessagePack.
func (Msgpack) Encode(v any) ([]byte, error) {
	enc := msgpack.GetEncoder()
	var buf bytes.Buffer
	enc.Reset(&buf)
	defer msgpack.PutEncoder(enc)

	if err := encodeMsgpackValue(enc, v); err != nil {
		return nil, fmt.Errorf("failed to encode msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeMsgpackValue(enc *msgpack.Encoder, v any) error {
	switch schema.Classify(v) {
	case schema.KindObject:
		n := 0
		for range schema.Children(v) {
			n++
		}
		if err := enc.EncodeMapLen(n); err != nil {
			return err
		}
		for k, c := range schema.Children(v) {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encodeMsgpackValue(enc, c); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		return nil
	case schema.KindArray:
		arr := v.([]any)
		if err := enc.EncodeArrayLen(len(arr)); err != nil {
			return err
		}
		for _, c := range arr {
			if err := encodeMsgpackValue(enc, c); err != nil {
				return err
			}
		}
		return nil
	default:
		if schema.IsHole(v) {
			return enc.EncodeNil()
		}
		return enc.Encode(v)
	}
}

// Decode decodes a single MessagePack value.
func (Msgpack) Decode(bz []byte) (any, error) {
	dec := msgpack.GetDecoder()
	r := bytes.NewReader(bz)
	dec.Reset(r)
	defer msgpack.PutDecoder(dec)

	v, err := decodeMsgpackValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode msgpack: %w", err)
	}
	if r.Len() > 0 {
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeMsgpackValue(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		obj := schema.NewObject()
		for i := 0; i < n; i++ {
			k, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return nil, err
			}
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			v, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		arr := make([]any, n)
		for i := range arr {
			arr[i], err = decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
		}
		return arr, nil
	default:
		return dec.DecodeInterfaceLoose()
	}
}
