package storage

import (
	"testing"
	"time"

	"github.com/clinref/symptomsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("chest pain")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalSymptomEntry(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name  string
		entry *core.SymptomEntry
	}{
		{
			name: "minimal entry",
			entry: &core.SymptomEntry{
				Id:         core.IDFromContent("cough"),
				Symptom:    "cough",
				Urgency:    core.UrgencyLow,
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "full entry",
			entry: &core.SymptomEntry{
				Id:                   core.IDFromContent("chest pain"),
				Symptom:              "chest pain",
				MedicalTerms:         []string{"angina", "thoracic pain"},
				CommonTerms:          []string{"pain in chest", "chest tightness"},
				Codes:                []string{"R07.9", "R07.89"},
				AssociatedConditions: []string{"acs", "pe", "gerd"},
				AssociatedTools:      []string{"heart-score", "timi"},
				Urgency:              core.UrgencyEmergency,
				Description:          "Pain or discomfort located in the chest.",
				RedFlags:             []string{"radiation to jaw or arm", "diaphoresis"},
				Differentials:        []string{"acute coronary syndrome", "pulmonary embolism"},
				PhysicalExamFindings: []string{"chest wall tenderness"},
				DiagnosticTests:      []string{"ecg", "troponin"},
				InsertedAt:           now,
				UpdatedAt:            now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalSymptomEntry(tt.entry)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalSymptomEntry(data)
			require.NoError(t, err)
			assert.Equal(t, tt.entry, decoded)
		})
	}
}

func TestUnmarshalSymptomEntry_Truncated(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := &core.SymptomEntry{
		Id:         core.IDFromContent("fever"),
		Symptom:    "fever",
		Urgency:    core.UrgencyMedium,
		InsertedAt: now,
		UpdatedAt:  now,
	}

	data := MarshalSymptomEntry(entry)
	_, err := UnmarshalSymptomEntry(data[:len(data)/2])
	assert.Error(t, err)
}
