package schema

// hole fills an array slot emptied by Delete so that later indices keep their
// positions. Get, Has and Flatten treat it as missing; encoders write null.
type hole struct{}

// MarshalJSON implements the json.Marshaler interface.
func (hole) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// IsHole reports whether v is an array slot emptied by Delete.
func IsHole(v any) bool {
	_, ok := v.(hole)
	return ok
}
