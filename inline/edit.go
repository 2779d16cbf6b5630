package inline

import "unicode/utf8"

// Mutators check first and copy second: on any error the String is
// bit-for-bit what it was before the call.

// PushString appends v.
//
// It fails with ErrNoSpace if the result would exceed Capacity and with
// ErrInvalidUTF8 if v is not valid UTF-8.
func (s *String) PushString(v string) error {
	s.assertSane()

	if s.Len()+len(v) > Capacity {
		return ErrNoSpace
	}
	if !utf8.ValidString(v) {
		return ErrInvalidUTF8
	}

	// Source and destination never overlap, a plain copy suffices.
	copy(s.b[s.n:], v)
	s.n += uint8(len(v))

	s.assertSane()
	return nil
}

// Push appends a single character.
//
// An invalid rune (surrogate or out of range) is encoded as U+FFFD, the
// same convention as strings.Builder.WriteRune. Fails with ErrNoSpace if
// the character's encoding does not fit.
func (s *String) Push(r rune) error {
	s.assertSane()

	if utf8.RuneLen(r) < 0 {
		r = utf8.RuneError
	}
	w := utf8.RuneLen(r)
	if s.Len()+w > Capacity {
		return ErrNoSpace
	}

	utf8.EncodeRune(s.b[s.n:], r)
	s.n += uint8(w)

	s.assertSane()
	return nil
}

// Insert inserts a character at byte offset idx, shifting the tail right.
//
// It panics if idx is outside [0, Len()] or does not land on a character
// boundary; the fault is raised before any byte moves. Fails with
// ErrNoSpace if the character's encoding does not fit.
func (s *String) Insert(idx int, r rune) error {
	s.assertSane()

	if idx < 0 || idx > s.Len() {
		panic("inline: insert index out of range")
	}
	if !s.isCharBoundary(idx) {
		panic("inline: insert index not on a character boundary")
	}

	if utf8.RuneLen(r) < 0 {
		r = utf8.RuneError
	}
	w := utf8.RuneLen(r)
	n := s.Len()
	if n+w > Capacity {
		return ErrNoSpace
	}

	// The tail shift overlaps itself; copy is memmove and tolerates that.
	copy(s.b[idx+w:n+w], s.b[idx:n])
	utf8.EncodeRune(s.b[idx:idx+w], r)
	s.n = uint8(n + w)

	s.assertSane()
	return nil
}

// Remove removes and returns the character starting at byte offset idx,
// shifting the tail left.
//
// It panics unless a character begins at idx, in particular when
// idx == Len() or idx points into the middle of a character.
func (s *String) Remove(idx int) rune {
	s.assertSane()

	if idx < 0 || idx >= s.Len() {
		panic("inline: no character begins at remove index")
	}
	if !utf8.RuneStart(s.b[idx]) {
		panic("inline: remove index not on a character boundary")
	}

	r, w := utf8.DecodeRune(s.b[idx:s.n])
	n := s.Len()
	copy(s.b[idx:n-w], s.b[idx+w:n])
	s.n = uint8(n - w)

	s.assertSane()
	return r
}

// Truncate shortens the content to n bytes. It is a no-op when
// n >= Len(). Truncated bytes become dead storage and are not zeroed;
// see FixedBytes for the deterministic fixed-width form.
//
// It panics if n is negative or does not land on a character boundary.
func (s *String) Truncate(n int) {
	s.assertSane()

	if n >= s.Len() {
		return
	}
	if n < 0 || !s.isCharBoundary(n) {
		panic("inline: truncate length not on a character boundary")
	}
	s.n = uint8(n)

	s.assertSane()
}

// Pop removes and returns the last character.
// It reports false on an empty String.
func (s *String) Pop() (rune, bool) {
	s.assertSane()

	if s.n == 0 {
		return 0, false
	}
	r, w := utf8.DecodeLastRune(s.b[:s.n])
	s.n -= uint8(w)

	s.assertSane()
	return r, true
}

// Clear resets the content to empty. It never fails.
func (s *String) Clear() {
	s.assertSane()
	s.n = 0
}
