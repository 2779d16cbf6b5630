package inline

import (
	"fmt"
	"unicode/utf8"
)

// checkInvariants verifies the two structural invariants: the length never
// exceeds Capacity, and the occupied range is valid UTF-8. A non-nil return
// signals a defect in this package, never caller misuse; it is exercised
// directly by tests and fuzzing, and by assertSane under the inlinedebug
// build tag.
func (s String) checkInvariants() error {
	if int(s.n) > Capacity {
		return fmt.Errorf("inline: internal error: length %d exceeds capacity %d", s.n, Capacity)
	}
	if !utf8.Valid(s.b[:s.n]) {
		return fmt.Errorf("inline: internal error: content is not valid UTF-8: %q", s.b[:s.n])
	}
	return nil
}
