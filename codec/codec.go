package codec

import (
	"errors"
)

// ErrTrailingData is returned when a document is followed by more data.
var ErrTrailingData = errors.New("trailing data after document")

// Codec is an interface for encoding and decoding values.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Encoder is an interface for encoding values.
type Encoder[T any] interface {
	Encode(v T) ([]byte, error)
}

// Decoder is an interface for decoding values.
type Decoder[T any] interface {
	Decode(bz []byte) (T, error)
}

var (
	_ Codec[any] = JSON{}
	_ Codec[any] = YAML{}
	_ Codec[any] = Msgpack{}
)
