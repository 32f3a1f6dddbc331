package search

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/clinref/symptomsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	entries := []core.SymptomEntry{
		{Symptom: "chest pain", Urgency: core.UrgencyEmergency},
	}

	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(entries)
		require.NoError(t, err)
		assert.NotNil(t, engine)
		assert.Equal(t, 1, engine.Len())
	})

	t.Run("with custom logger", func(t *testing.T) {
		engine, err := NewEngine(entries, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(entries, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("nil knowledge base", func(t *testing.T) {
		_, err := NewEngine(nil)
		assert.Equal(t, ErrKnowledgeBaseRequired, err)
	})

	t.Run("empty knowledge base is allowed", func(t *testing.T) {
		engine, err := NewEngine([]core.SymptomEntry{})
		require.NoError(t, err)
		assert.Empty(t, engine.SearchSymptoms("chest pain", 10))
	})
}

func TestSearchSymptoms_ShortQueries(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "chest pain", Urgency: core.UrgencyEmergency},
		{Symptom: "cough", Urgency: core.UrgencyLow},
	})
	require.NoError(t, err)

	for _, query := range []string{"", "a", " c ", "\t\n", "  "} {
		assert.Empty(t, engine.SearchSymptoms(query, 10), "query %q must return nothing", query)
	}
}

func TestSearchSymptoms_UrgencyBeforeScore(t *testing.T) {
	// The low-tier entry is an exact title match and scores far higher than
	// the emergency entry's substring hit, but urgency is the primary key.
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "palpitations", Urgency: core.UrgencyLow},
		{Symptom: "palpitations with syncope", Urgency: core.UrgencyEmergency},
	})
	require.NoError(t, err)

	results := engine.SearchSymptoms("palpitations", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "palpitations with syncope", results[0].Symptom)
	assert.Equal(t, "palpitations", results[1].Symptom)
}

func TestSearchSymptoms_ScoreWithinTier(t *testing.T) {
	// Same urgency tier: the exact canonical-name match must outrank the
	// entry matched only through a fuzzy common-term hit.
	engine, err := NewEngine([]core.SymptomEntry{
		{
			Symptom:     "wheeze",
			CommonTerms: []string{"dyspnoea"},
			Urgency:     core.UrgencyMedium,
		},
		{
			Symptom: "dyspnea",
			Urgency: core.UrgencyMedium,
		},
	})
	require.NoError(t, err)

	results := engine.SearchSymptoms("dyspnea", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "dyspnea", results[0].Symptom)
	assert.Equal(t, "wheeze", results[1].Symptom)
}

func TestSearchSymptoms_MultiWordQuery(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "back pain", Urgency: core.UrgencyMedium},
		{Symptom: "chest pain", Urgency: core.UrgencyMedium},
	})
	require.NoError(t, err)

	results := engine.SearchSymptoms("chest pain", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "chest pain", results[0].Symptom)
}

func TestSearchSymptoms_StableTieOrder(t *testing.T) {
	// Identical match profile and identical urgency: knowledge-base order
	// decides, and repeated queries must agree.
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "fever in adults", Urgency: core.UrgencyMedium},
		{Symptom: "fever in children", Urgency: core.UrgencyMedium},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		results := engine.SearchSymptoms("fever", 10)
		require.Len(t, results, 2)
		assert.Equal(t, "fever in adults", results[0].Symptom)
		assert.Equal(t, "fever in children", results[1].Symptom)
	}
}

func TestSearchSymptoms_Truncation(t *testing.T) {
	entries := make([]core.SymptomEntry, 0, 10)
	entries = append(entries,
		core.SymptomEntry{Symptom: "crushing chest pain", Urgency: core.UrgencyEmergency},
		core.SymptomEntry{Symptom: "tearing chest pain", Urgency: core.UrgencyEmergency},
		core.SymptomEntry{Symptom: "pleuritic chest pain", Urgency: core.UrgencyHigh},
	)
	for i := 0; i < 7; i++ {
		entries = append(entries, core.SymptomEntry{
			Symptom: fmt.Sprintf("chest pain variant %d", i),
			Urgency: core.UrgencyLow,
		})
	}

	engine, err := NewEngine(entries)
	require.NoError(t, err)

	all := engine.SearchSymptoms("chest pain", 20)
	require.Len(t, all, 10)

	results := engine.SearchSymptoms("chest pain", 3)
	require.Len(t, results, 3)
	assert.Equal(t, "crushing chest pain", results[0].Symptom)
	assert.Equal(t, "tearing chest pain", results[1].Symptom)
	assert.Equal(t, "pleuritic chest pain", results[2].Symptom)
}

func TestSearchSymptoms_DefaultMaxResults(t *testing.T) {
	entries := make([]core.SymptomEntry, 15)
	for i := range entries {
		entries[i] = core.SymptomEntry{
			Symptom: fmt.Sprintf("abdominal pain type %d", i),
			Urgency: core.UrgencyLow,
		}
	}

	engine, err := NewEngine(entries)
	require.NoError(t, err)

	results := engine.SearchSymptoms("abdominal pain", 0)
	assert.Len(t, results, 10)
}

func TestSearchByCode(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "dyspnea", Codes: []string{"R06.02", "R06.00"}, Urgency: core.UrgencyHigh},
		{Symptom: "chest pain", Codes: []string{"R07.9"}, Urgency: core.UrgencyEmergency},
		{Symptom: "wheezing", Codes: []string{"R06.2"}, Urgency: core.UrgencyMedium},
	})
	require.NoError(t, err)

	t.Run("case-insensitive equality", func(t *testing.T) {
		lower := engine.SearchByCode("r06.02")
		upper := engine.SearchByCode("R06.02")
		require.Len(t, lower, 1)
		assert.Equal(t, "dyspnea", lower[0].Symptom)
		assert.Equal(t, lower, upper)
	})

	t.Run("no fuzziness", func(t *testing.T) {
		// R06.2 and R06.02 are distinct codes.
		results := engine.SearchByCode("R06.2")
		require.Len(t, results, 1)
		assert.Equal(t, "wheezing", results[0].Symptom)
	})

	t.Run("unknown code", func(t *testing.T) {
		assert.Empty(t, engine.SearchByCode("Z99.9"))
	})

	t.Run("knowledge-base order", func(t *testing.T) {
		engine2, err := NewEngine([]core.SymptomEntry{
			{Symptom: "syncope", Codes: []string{"R55"}, Urgency: core.UrgencyLow},
			{Symptom: "collapse", Codes: []string{"R55"}, Urgency: core.UrgencyEmergency},
		})
		require.NoError(t, err)

		results := engine2.SearchByCode("R55")
		require.Len(t, results, 2)
		assert.Equal(t, "syncope", results[0].Symptom)
		assert.Equal(t, "collapse", results[1].Symptom)
	})
}

func TestConditionsForSymptom(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{
			Symptom:              "chest pain",
			AssociatedConditions: []string{"acs", "pe", "gerd"},
			Urgency:              core.UrgencyEmergency,
		},
		{
			Symptom:              "pleuritic chest pain",
			AssociatedConditions: []string{"pe", "pneumonia"},
			Urgency:              core.UrgencyHigh,
		},
	})
	require.NoError(t, err)

	conditions := engine.ConditionsForSymptom("chest pain")
	assert.Equal(t, []string{"acs", "pe", "gerd", "pneumonia"}, conditions)
}

func TestToolsForSymptom(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{
			Symptom:         "chest pain",
			AssociatedTools: []string{"heart-score", "timi"},
			Urgency:         core.UrgencyEmergency,
		},
		{
			Symptom:         "pleuritic chest pain",
			AssociatedTools: []string{"wells-pe", "heart-score"},
			Urgency:         core.UrgencyHigh,
		},
	})
	require.NoError(t, err)

	tools := engine.ToolsForSymptom("chest pain")
	assert.Equal(t, []string{"heart-score", "timi", "wells-pe"}, tools)
}

func TestRedFlagsFor(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{
			Symptom:  "headache",
			RedFlags: []string{"thunderclap onset", "fever with neck stiffness"},
			Urgency:  core.UrgencyMedium,
		},
		{
			Symptom:  "tension headache",
			RedFlags: []string{"new onset over 50"},
			Urgency:  core.UrgencyLow,
		},
	})
	require.NoError(t, err)

	t.Run("only the top match is surfaced", func(t *testing.T) {
		flags := engine.RedFlagsFor("headache")
		assert.Equal(t, []string{"thunderclap onset", "fever with neck stiffness"}, flags)
	})

	t.Run("short query", func(t *testing.T) {
		assert.Empty(t, engine.RedFlagsFor("h"))
	})

	t.Run("top match without red flags", func(t *testing.T) {
		engine2, err := NewEngine([]core.SymptomEntry{
			{Symptom: "fatigue", Urgency: core.UrgencyLow},
		})
		require.NoError(t, err)
		assert.Empty(t, engine2.RedFlagsFor("fatigue"))
	})
}

func TestDifferentialsFor(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{
			Symptom:       "dyspnea",
			Differentials: []string{"asthma", "copd", "pulmonary embolism"},
			Urgency:       core.UrgencyHigh,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"asthma", "copd", "pulmonary embolism"},
		engine.DifferentialsFor("dyspnea"))
	assert.Empty(t, engine.DifferentialsFor("x"))
}

// recordingMonitor captures pipeline callbacks for assertions.
type recordingMonitor struct {
	started string
	scored  int
	matched int
	results []core.SymptomEntry
}

func (m *recordingMonitor) Start(query string)                      { m.started = query }
func (m *recordingMonitor) EntryScored(_ *core.SymptomEntry, _ int) { m.scored++ }
func (m *recordingMonitor) AfterScoring(matched int)                { m.matched = matched }
func (m *recordingMonitor) Finish(results []core.SymptomEntry)      { m.results = results }

func TestSearchSymptomsWithMonitor(t *testing.T) {
	engine, err := NewEngine([]core.SymptomEntry{
		{Symptom: "chest pain", Urgency: core.UrgencyEmergency},
		{Symptom: "cough", Urgency: core.UrgencyLow},
	})
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results := engine.SearchSymptomsWithMonitor("chest pain", 10, monitor)

	assert.Equal(t, "chest pain", monitor.started)
	assert.Equal(t, 2, monitor.scored)
	assert.Equal(t, monitor.matched, len(results))
	assert.Equal(t, results, monitor.results)
}
