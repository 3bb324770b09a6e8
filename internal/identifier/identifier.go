// Package identifier implements the dotted-path keys used to name actions,
// tabs and menu entries.
//
// An Identifier is an ordered list of non-empty segments. Segments never
// contain the separator, so the joined form is a faithful encoding and the
// type can be compared with == and used directly as a map key.
package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins identifier segments.
const Separator = "."

var (
	// ErrEmptySegment reports a dotted string containing an empty segment.
	ErrEmptySegment = errors.New("identifier: empty segment")
	// ErrSeparatorInSegment reports a single segment containing the separator.
	ErrSeparatorInSegment = errors.New("identifier: segment contains separator")
)

// Identifier is a dotted path such as "file.quit". The zero value is the
// empty identifier.
type Identifier struct {
	path string
}

// Parse splits s on the separator. The empty string yields the empty
// identifier. Empty segments ("a..b", ".a") are programming errors and panic.
func Parse(s string) Identifier {
	id, err := TryParse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// TryParse is Parse for untrusted input such as configuration files.
func TryParse(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, nil
	}
	for _, seg := range strings.Split(s, Separator) {
		if seg == "" {
			return Identifier{}, fmt.Errorf("%w in %q", ErrEmptySegment, s)
		}
	}
	return Identifier{path: s}, nil
}

// New builds an identifier from individual segments.
func New(segments ...string) Identifier {
	var id Identifier
	for _, seg := range segments {
		id.Push(seg)
	}
	return id
}

// Push appends a single segment.
func (id *Identifier) Push(segment string) {
	if err := validateSegment(segment); err != nil {
		panic(err)
	}
	if id.path == "" {
		id.path = segment
		return
	}
	id.path += Separator + segment
}

// PushDotted appends every segment of a dotted string.
func (id *Identifier) PushDotted(dotted string) {
	for _, seg := range strings.Split(dotted, Separator) {
		id.Push(seg)
	}
}

// Pop removes and returns the last segment. It reports false when the
// identifier is already empty.
func (id *Identifier) Pop() (string, bool) {
	if id.path == "" {
		return "", false
	}
	idx := strings.LastIndex(id.path, Separator)
	if idx < 0 {
		last := id.path
		id.path = ""
		return last, true
	}
	last := id.path[idx+1:]
	id.path = id.path[:idx]
	return last, true
}

// Child returns a copy of id with segment appended.
func (id Identifier) Child(segment string) Identifier {
	id.Push(segment)
	return id
}

// Segments returns a fresh slice of the path segments.
func (id Identifier) Segments() []string {
	if id.path == "" {
		return nil
	}
	return strings.Split(id.path, Separator)
}

// Len returns the number of segments.
func (id Identifier) Len() int {
	if id.path == "" {
		return 0
	}
	return strings.Count(id.path, Separator) + 1
}

// IsEmpty reports whether id has no segments.
func (id Identifier) IsEmpty() bool {
	return id.path == ""
}

// String re-joins the segments with the separator.
func (id Identifier) String() string {
	return id.path
}

// Compare orders identifiers segment by segment.
func Compare(a, b Identifier) int {
	as, bs := a.Segments(), b.Segments()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.path), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := TryParse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validateSegment(segment string) error {
	if segment == "" {
		return ErrEmptySegment
	}
	if strings.Contains(segment, Separator) {
		return fmt.Errorf("%w: %q", ErrSeparatorInSegment, segment)
	}
	return nil
}
