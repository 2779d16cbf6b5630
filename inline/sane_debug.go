//go:build inlinedebug

package inline

// assertSane panics on an internal invariant violation. Enabled with
// `-tags inlinedebug`; release builds compile it away (sane_release.go).
func (s String) assertSane() {
	if err := s.checkInvariants(); err != nil {
		panic(err)
	}
}
