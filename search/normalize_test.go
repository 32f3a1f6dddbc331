package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Chest Pain", "chest pain"},
		{"strips punctuation", "chest-pain!", "chest pain"},
		{"collapses whitespace", "chest   \t pain", "chest pain"},
		{"trims", "  chest pain  ", "chest pain"},
		{"keeps digits", "ICD R06.02", "icd r06 02"},
		{"empty string", "", ""},
		{"pure punctuation", "!?.,;:-", ""},
		{"pure whitespace", " \t\n ", ""},
		{"mixed", "  Short-ness OF breath?? ", "short ness of breath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"!?.,",
		"Chest Pain",
		"  Short-ness   OF breath?? ",
		"dyspnée aiguë",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize is not idempotent for %q", input)
	}
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "r06.02", stripWhitespace("r 06 . 02"))
	assert.Equal(t, "abc", stripWhitespace("a\tb\nc"))
	assert.Equal(t, "", stripWhitespace("   "))
}
