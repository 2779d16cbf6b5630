package inline

import (
	"errors"
	"fmt"
)

// Serialization adapter: String renders as plain text. Implementing the
// encoding.Text* interfaces makes encoding/json, goccy/go-json, and yaml
// all encode a String as an ordinary string value.

// MarshalText implements encoding.TextMarshaler. It never fails.
func (s String) MarshalText() ([]byte, error) {
	s.assertSane()
	return append([]byte(nil), s.b[:s.n]...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It goes through the
// same fallible construction path as FromBytes; text longer than Capacity
// yields a descriptive error wrapping ErrNoSpace, and *s is left unchanged
// on any failure.
func (s *String) UnmarshalText(text []byte) error {
	v, err := FromBytes(text)
	if err != nil {
		if errors.Is(err, ErrNoSpace) {
			return fmt.Errorf("inline: text of %d bytes exceeds inline capacity %d: %w", len(text), Capacity, err)
		}
		return err
	}
	*s = v
	return nil
}
