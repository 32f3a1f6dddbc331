package search

import (
	"strings"

	"github.com/clinref/symptomsearch/core"
)

// Relevance weights per field and match tier. Checks accumulate: an entry
// may earn points from several fields at once. Within one field the three
// tiers are mutually exclusive, evaluated exact, then substring, then fuzzy.
const (
	scoreSymptomExact     = 100
	scoreSymptomSubstring = 80
	scoreSymptomFuzzy     = 70

	scoreMedicalExact     = 95
	scoreMedicalSubstring = 75
	scoreMedicalFuzzy     = 65

	scoreCommonExact     = 85
	scoreCommonSubstring = 65
	scoreCommonFuzzy     = 55

	scoreCodeExact = 90

	// Multi-word bonuses, granted per qualifying term.
	scoreAllWordsMatched  = 60
	scoreMostWordsMatched = 40
)

// urgencyBonus is the flat per-entry bonus, indexed by Urgency ordinal.
// Index 0 is unused.
var urgencyBonus = [...]int{
	0,
	core.UrgencyLow:       2,
	core.UrgencyMedium:    5,
	core.UrgencyHigh:      8,
	core.UrgencyEmergency: 10,
}

// scoreEntry computes the relevance score of one entry for one query.
// A zero score means no field matched; such entries are filtered out by
// the caller.
func scoreEntry(entry *core.SymptomEntry, query string) int {
	normQuery := Normalize(query)
	words := strings.Fields(normQuery)

	score := 0

	// Canonical name.
	normSymptom := Normalize(entry.Symptom)
	switch {
	case normSymptom == normQuery:
		score += scoreSymptomExact
	case strings.Contains(normSymptom, normQuery):
		score += scoreSymptomSubstring
	case FuzzyMatch(entry.Symptom, query, fuzzyThreshold):
		score += scoreSymptomFuzzy
	}

	// Medical terms, each contributing independently.
	for _, term := range entry.MedicalTerms {
		normTerm := Normalize(term)
		switch {
		case normTerm == normQuery:
			score += scoreMedicalExact
		case strings.Contains(normTerm, normQuery):
			score += scoreMedicalSubstring
		case FuzzyMatch(term, query, fuzzyThreshold):
			score += scoreMedicalFuzzy
		}
	}

	// Patient-facing phrasings.
	for _, term := range entry.CommonTerms {
		normTerm := Normalize(term)
		switch {
		case normTerm == normQuery:
			score += scoreCommonExact
		case strings.Contains(normTerm, normQuery):
			score += scoreCommonSubstring
		case FuzzyMatch(term, query, fuzzyThreshold):
			score += scoreCommonFuzzy
		}
	}

	// Classification codes: case-folded equality with all whitespace removed.
	queryCode := strings.ToLower(stripWhitespace(query))
	for _, code := range entry.Codes {
		if strings.ToLower(stripWhitespace(code)) == queryCode {
			score += scoreCodeExact
		}
	}

	if len(words) > 1 {
		score += multiWordBonus(entry, words)
	}

	// Entries with an out-of-range tier earn no bonus.
	if entry.Urgency >= core.UrgencyLow && entry.Urgency <= core.UrgencyEmergency {
		score += urgencyBonus[entry.Urgency]
	}

	return score
}

// multiWordBonus rewards terms that cover most or all words of a multi-word
// query. Each term in the entry's name and synonym fields qualifies
// independently: full coverage earns the larger bonus, coverage of more
// than half the query words earns the smaller one.
func multiWordBonus(entry *core.SymptomEntry, queryWords []string) int {
	bonus := 0

	allTerms := make([]string, 0, 1+len(entry.MedicalTerms)+len(entry.CommonTerms))
	allTerms = append(allTerms, entry.Symptom)
	allTerms = append(allTerms, entry.MedicalTerms...)
	allTerms = append(allTerms, entry.CommonTerms...)

	for _, term := range allTerms {
		termWords := strings.Fields(Normalize(term))

		matched := 0
		for _, queryWord := range queryWords {
			if wordMatchesAny(queryWord, termWords) {
				matched++
			}
		}

		if matched == len(queryWords) {
			bonus += scoreAllWordsMatched
		} else if 2*matched > len(queryWords) {
			bonus += scoreMostWordsMatched
		}
	}

	return bonus
}

// wordMatchesAny reports whether queryWord matches any of termWords by
// containment in either direction or fuzzy similarity.
func wordMatchesAny(queryWord string, termWords []string) bool {
	for _, termWord := range termWords {
		if strings.Contains(termWord, queryWord) ||
			strings.Contains(queryWord, termWord) ||
			FuzzyMatch(termWord, queryWord, fuzzyThreshold) {
			return true
		}
	}
	return false
}
