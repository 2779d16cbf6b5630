package inline

import "unicode/utf8"

// String is usable as a sink for incremental formatted output:
// fmt.Fprintf(&s, ...) works through io.Writer. Unlike formatting
// machinery that must collapse failures into a bare "sink failed" signal,
// Go's writer contract carries the error value itself, so a full buffer
// surfaces as ErrNoSpace from fmt.Fprintf directly.
//
// Writes are atomic: on error nothing is written and n is 0, which is a
// deliberate narrowing of io.Writer's permission to write partially.

// Write implements io.Writer. It fails with ErrNoSpace if p does not fit
// and with ErrInvalidUTF8 if p is not valid UTF-8 on its own; a character
// split across two Write calls is not accepted.
func (s *String) Write(p []byte) (int, error) {
	s.assertSane()

	if s.Len()+len(p) > Capacity {
		return 0, ErrNoSpace
	}
	if !utf8.Valid(p) {
		return 0, ErrInvalidUTF8
	}

	copy(s.b[s.n:], p)
	s.n += uint8(len(p))

	s.assertSane()
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (s *String) WriteString(v string) (int, error) {
	if err := s.PushString(v); err != nil {
		return 0, err
	}
	return len(v), nil
}

// WriteByte implements io.ByteWriter. Only ASCII bytes are accepted: a
// lone byte >= 0x80 could never keep the content valid UTF-8.
func (s *String) WriteByte(c byte) error {
	s.assertSane()

	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	if s.Len() >= Capacity {
		return ErrNoSpace
	}
	s.b[s.n] = c
	s.n++

	s.assertSane()
	return nil
}

// WriteRune appends a single character and returns the number of bytes
// written, in the manner of strings.Builder.WriteRune.
func (s *String) WriteRune(r rune) (int, error) {
	if utf8.RuneLen(r) < 0 {
		r = utf8.RuneError
	}
	if err := s.Push(r); err != nil {
		return 0, err
	}
	return utf8.RuneLen(r), nil
}
