package inline

import "github.com/iw2rmb/inlinestr/internal/grapheme"

// GraphemeCount returns the number of grapheme clusters in the content.
// A multi-rune cluster (e.g. an emoji ZWJ sequence) counts once.
func (s String) GraphemeCount() int {
	s.assertSane()
	return grapheme.Count(string(s.b[:s.n]))
}

// Width returns the monospace cell width of the content, for aligning
// short labels in terminal output.
func (s String) Width() int {
	s.assertSane()
	return grapheme.Width(string(s.b[:s.n]))
}

// PopGrapheme removes and returns the last grapheme cluster, so that
// deleting backward over a combining sequence never strands part of it.
// It reports false on an empty String.
func (s *String) PopGrapheme() (string, bool) {
	s.assertSane()

	if s.n == 0 {
		return "", false
	}
	c := grapheme.LastCluster(string(s.b[:s.n]))
	s.n -= uint8(len(c))

	s.assertSane()
	return c, true
}
