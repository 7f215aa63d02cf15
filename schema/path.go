package schema

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	separator = '.'
	escape    = '\\'
	// emptyMark follows escape to spell an empty segment.
	emptyMark = 'e'
)

// Path is a route from the root of a nested structure to a value.
// Segments are raw tokens; whether a segment addresses an array index or an
// object key is decided by the kind of the collection it is applied to.
type Path []string

// ParsePath splits a dotted path into segments.
// A backslash escapes a literal dot or backslash inside a segment, and a
// segment spelled `\e` is the empty key.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var (
		p     Path
		seg   strings.Builder
		empty bool
	)
	flush := func() error {
		switch {
		case empty:
			p = append(p, "")
		case seg.Len() == 0:
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, s)
		default:
			p = append(p, seg.String())
		}
		seg.Reset()
		empty = false
		return nil
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == separator {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if empty {
			return nil, fmt.Errorf("%w: \\%c must be a whole segment in %q", ErrInvalidPath, emptyMark, s)
		}
		if c != escape {
			seg.WriteByte(c)
			continue
		}

		if i+1 >= len(s) {
			return nil, fmt.Errorf("%w: trailing escape in %q", ErrInvalidPath, s)
		}
		i++
		switch s[i] {
		case separator, escape:
			seg.WriteByte(s[i])
		case emptyMark:
			if seg.Len() > 0 {
				return nil, fmt.Errorf("%w: \\%c must be a whole segment in %q", ErrInvalidPath, emptyMark, s)
			}
			empty = true
		default:
			return nil, fmt.Errorf("%w: unknown escape \\%c in %q", ErrInvalidPath, s[i], s)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return p, nil
}

// MustParsePath is like ParsePath but panics if an error occurs.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PathOf builds a path from pre-split segments. Each part must be a string or a
// non-negative int.
func PathOf(parts ...any) (Path, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	p := make(Path, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			p = append(p, v)
		case int:
			if v < 0 {
				return nil, fmt.Errorf("%w: negative index %d", ErrInvalidPath, v)
			}
			p = append(p, strconv.Itoa(v))
		default:
			return nil, fmt.Errorf("%w: unsupported segment type %T", ErrInvalidPath, part)
		}
	}
	return p, nil
}

// FormatPath joins segments with dots, escaping dots and backslashes in
// segments. An empty segment is written as `\e`.
func FormatPath(p Path) string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(separator)
		}
		writeSegment(&sb, seg)
	}
	return sb.String()
}

// String implements the fmt.Stringer interface.
func (p Path) String() string {
	return FormatPath(p)
}

// Append returns a new path with seg appended.
func (p Path) Append(seg string) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, seg)
}

func writeSegment(sb *strings.Builder, seg string) {
	if seg == "" {
		sb.WriteByte(escape)
		sb.WriteByte(emptyMark)
		return
	}
	if !strings.ContainsAny(seg, `.\`) {
		sb.WriteString(seg)
		return
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] == separator || seg[i] == escape {
			sb.WriteByte(escape)
		}
		sb.WriteByte(seg[i])
	}
}

// IsIndex reports whether seg is a canonical array index ("0", "12" but not "01" or "-1").
func IsIndex(seg string) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}

	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
