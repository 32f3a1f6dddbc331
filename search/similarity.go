package search

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// fuzzyThreshold is the minimum similarity ratio for an edit-distance match.
const fuzzyThreshold = 0.8

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-rune insertions, deletions, and substitutions needed to turn
// one into the other.
func Levenshtein(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// FuzzyMatch reports whether text and target approximately match after
// normalization. Substring containment in either direction is a guaranteed
// match regardless of threshold; otherwise the strings match when their
// edit-distance similarity ratio reaches threshold.
func FuzzyMatch(text, target string, threshold float64) bool {
	normA := Normalize(text)
	normB := Normalize(target)

	// Containment short-circuit. This also covers empty strings: an empty
	// string is contained in everything, including another empty string.
	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return true
	}

	distance := Levenshtein(normA, normB)
	maxLen := utf8.RuneCountInString(normA)
	if l := utf8.RuneCountInString(normB); l > maxLen {
		maxLen = l
	}

	similarity := float64(maxLen-distance) / float64(maxLen)
	return similarity >= threshold
}
