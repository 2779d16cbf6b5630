package inline

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// Capacity is the fixed number of content bytes a String can hold.
// String.Len() can never exceed it. With the one-byte length prefix the
// whole value occupies 23 bytes of stack (or enclosing struct) space.
const Capacity = 22

var (
	// ErrNoSpace is returned when an operation would grow the content
	// past Capacity. The receiving String is left unchanged.
	ErrNoSpace = errors.New("inline: not enough space")

	// ErrInvalidUTF8 is returned when input bytes are not valid UTF-8.
	// The receiving String is left unchanged.
	ErrInvalidUTF8 = errors.New("inline: input is not valid UTF-8")
)

// String is a fixed-capacity UTF-8 string stored inline.
//
// The zero value is an empty String ready to use. Values are cheap to copy
// and carry no references; sharing a *String across goroutines follows the
// usual exclusive-writer rules, nothing more.
//
// Do not compare Strings with ==: bytes past Len() are dead storage whose
// contents depend on mutation history. Use Equal, or FixedBytes when a
// byte-exact fixed-width form is needed (for hashing or map keys).
type String struct {
	n uint8
	b [Capacity]byte
}

// From builds a String from s.
//
// It fails with ErrNoSpace if s is longer than Capacity bytes and with
// ErrInvalidUTF8 if s is not valid UTF-8. Go strings carry no encoding
// guarantee, so validation here is what upholds the content invariant.
func From(s string) (String, error) {
	if len(s) > Capacity {
		return String{}, ErrNoSpace
	}
	if !utf8.ValidString(s) {
		return String{}, ErrInvalidUTF8
	}
	var out String
	copy(out.b[:], s)
	out.n = uint8(len(s))
	out.assertSane()
	return out, nil
}

// FromBytes builds a String from p, with the same contract as From.
// p is copied; the result does not alias it.
func FromBytes(p []byte) (String, error) {
	if len(p) > Capacity {
		return String{}, ErrNoSpace
	}
	if !utf8.Valid(p) {
		return String{}, ErrInvalidUTF8
	}
	var out String
	copy(out.b[:], p)
	out.n = uint8(len(p))
	out.assertSane()
	return out, nil
}

// Len returns the number of content bytes.
func (s String) Len() int {
	s.assertSane()
	return int(s.n)
}

// IsEmpty reports whether the String holds no content.
func (s String) IsEmpty() bool {
	s.assertSane()
	return s.n == 0
}

// Bytes returns the occupied range as a view into the String's own storage.
// It never allocates. The view stays valid until the next mutation; writing
// through it can break the UTF-8 invariant and is the caller's problem.
func (s *String) Bytes() []byte {
	s.assertSane()
	return s.b[:s.n]
}

// FixedBytes returns the full Capacity-wide byte array with every byte at
// index >= Len() zeroed, regardless of what dead storage held before.
// Two Strings with equal content always produce identical FixedBytes
// results, which makes the returned array safe to compare or hash.
func (s String) FixedBytes() [Capacity]byte {
	s.assertSane()
	for i := int(s.n); i < Capacity; i++ {
		s.b[i] = 0
	}
	return s.b
}

// String returns the content as an ordinary growable string.
// The conversion cannot fail: Capacity is finite and string has no bound.
func (s String) String() string {
	s.assertSane()
	return string(s.b[:s.n])
}

// Equal reports whether s and t hold the same content.
func (s String) Equal(t String) bool {
	s.assertSane()
	t.assertSane()
	return s.n == t.n && bytes.Equal(s.b[:s.n], t.b[:t.n])
}

// EqualString reports whether s's content equals v.
func (s String) EqualString(v string) bool {
	s.assertSane()
	return string(s.b[:s.n]) == v
}

// Compare lexicographically compares s and t byte-wise, returning
// -1, 0, or +1 in the manner of bytes.Compare.
func (s String) Compare(t String) int {
	s.assertSane()
	t.assertSane()
	return bytes.Compare(s.b[:s.n], t.b[:t.n])
}

// Slice returns the content in [i, j) as a string.
//
// It panics if the bounds fall outside [0, Len()] or do not land on
// character boundaries, matching Go's own string-slicing semantics.
func (s String) Slice(i, j int) string {
	s.assertSane()
	if i < 0 || j > s.Len() || i > j {
		panic("inline: slice bounds out of range")
	}
	if !s.isCharBoundary(i) || !s.isCharBoundary(j) {
		panic("inline: slice bound not on a character boundary")
	}
	return string(s.b[i:j])
}

// Prefix returns the content in [0, j); same fault semantics as Slice.
func (s String) Prefix(j int) string {
	return s.Slice(0, j)
}

// Suffix returns the content in [i, Len()); same fault semantics as Slice.
func (s String) Suffix(i int) string {
	return s.Slice(i, s.Len())
}

// isCharBoundary reports whether offset i falls between complete UTF-8
// characters. 0 and Len() are always boundaries; anything outside
// [0, Len()] is not.
func (s *String) isCharBoundary(i int) bool {
	if i == 0 || i == int(s.n) {
		return true
	}
	if i < 0 || i > int(s.n) {
		return false
	}
	return utf8.RuneStart(s.b[i])
}
