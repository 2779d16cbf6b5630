package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the monospace cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// LastCluster returns the final grapheme cluster of text, or "" when text
// is empty. Cluster boundaries always coincide with UTF-8 character
// boundaries, so len(LastCluster(t)) is safe to trim off t byte-wise.
func LastCluster(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	last := ""
	for g.Next() {
		last = g.Str()
	}
	return last
}
