package search

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for comparison: lowercases it, replaces
// every rune that is not a letter or digit with a space, then collapses
// runs of whitespace into single spaces and trims the ends.
//
// Normalize is total and idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// stripWhitespace removes all whitespace from s. Classification codes are
// compared with internal whitespace removed.
func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
