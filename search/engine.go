package search

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/clinref/symptomsearch/core"
)

const (
	// minQueryLength is the minimum trimmed query length; shorter queries
	// return no results without scoring anything.
	minQueryLength = 2

	// defaultMaxResults caps the result set when the caller passes a
	// non-positive limit.
	defaultMaxResults = 10

	// Result limits for the convenience projections.
	crossRefMaxResults = 5
	topMatchMaxResults = 1
)

// Engine ranks knowledge-base entries against free-text queries.
// The knowledge base is treated as read-only for the lifetime of the
// Engine; queries are pure and safe to run concurrently.
type Engine struct {
	entries []core.SymptomEntry
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates an engine over the given knowledge base. The entries
// slice must not be mutated after the call.
func NewEngine(entries []core.SymptomEntry, opts ...Option) (*Engine, error) {
	if entries == nil {
		return nil, ErrKnowledgeBaseRequired
	}

	e := &Engine{
		entries: entries,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Len returns the number of entries in the knowledge base.
func (e *Engine) Len() int {
	return len(e.entries)
}

// SearchSymptoms returns up to maxResults entries matching the query,
// ordered by urgency tier first and relevance score second. A non-positive
// maxResults uses the default of 10.
func (e *Engine) SearchSymptoms(query string, maxResults int) []core.SymptomEntry {
	return e.SearchSymptomsWithMonitor(query, maxResults, nil)
}

// SearchSymptomsWithMonitor is SearchSymptoms with observation hooks.
// The monitor receives callbacks at each stage of the query pipeline.
func (e *Engine) SearchSymptomsWithMonitor(query string, maxResults int, monitor SearchMonitor) []core.SymptomEntry {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryLength {
		monitor.Finish(nil)
		return []core.SymptomEntry{}
	}

	type scored struct {
		entry *core.SymptomEntry
		score int
	}

	matches := make([]scored, 0, len(e.entries))
	for i := range e.entries {
		entry := &e.entries[i]
		s := scoreEntry(entry, query)
		monitor.EntryScored(entry, s)
		if s > 0 {
			matches = append(matches, scored{entry: entry, score: s})
		}
	}
	monitor.AfterScoring(len(matches))

	// Urgency tier first, relevance second. The stable sort keeps
	// knowledge-base order for full ties, so identical queries always
	// produce identical rankings.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].entry.Urgency != matches[j].entry.Urgency {
			return matches[i].entry.Urgency > matches[j].entry.Urgency
		}
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	results := make([]core.SymptomEntry, len(matches))
	for i, m := range matches {
		results[i] = *m.entry
	}

	e.logger.Debug("symptom search complete", "query", query, "results", len(results))
	monitor.Finish(results)

	return results
}

// SearchByCode returns every entry carrying the given classification code,
// compared case-insensitively, in knowledge-base order. No fuzziness and
// no ranking apply.
func (e *Engine) SearchByCode(code string) []core.SymptomEntry {
	results := []core.SymptomEntry{}
	for i := range e.entries {
		for _, c := range e.entries[i].Codes {
			if strings.EqualFold(c, code) {
				results = append(results, e.entries[i])
				break
			}
		}
	}
	return results
}

// ConditionsForSymptom returns the condition identifiers associated with
// the top matches for the query, deduplicated in order of first appearance.
func (e *Engine) ConditionsForSymptom(query string) []string {
	return e.collectIdentifiers(query, func(entry *core.SymptomEntry) []string {
		return entry.AssociatedConditions
	})
}

// ToolsForSymptom returns the assessment tool identifiers associated with
// the top matches for the query, deduplicated in order of first appearance.
func (e *Engine) ToolsForSymptom(query string) []string {
	return e.collectIdentifiers(query, func(entry *core.SymptomEntry) []string {
		return entry.AssociatedTools
	})
}

// RedFlagsFor returns the red flags of the single best match for the
// query, or nothing when there is no match. Only the top match is
// surfaced, not an aggregate across matches.
func (e *Engine) RedFlagsFor(query string) []string {
	return e.topMatchStrings(query, func(entry *core.SymptomEntry) []string {
		return entry.RedFlags
	})
}

// DifferentialsFor returns the differential diagnoses of the single best
// match for the query, or nothing when there is no match.
func (e *Engine) DifferentialsFor(query string) []string {
	return e.topMatchStrings(query, func(entry *core.SymptomEntry) []string {
		return entry.Differentials
	})
}

func (e *Engine) collectIdentifiers(query string, field func(*core.SymptomEntry) []string) []string {
	matches := e.SearchSymptoms(query, crossRefMaxResults)

	seen := make(map[string]struct{})
	identifiers := []string{}
	for i := range matches {
		for _, id := range field(&matches[i]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			identifiers = append(identifiers, id)
		}
	}
	return identifiers
}

func (e *Engine) topMatchStrings(query string, field func(*core.SymptomEntry) []string) []string {
	matches := e.SearchSymptoms(query, topMatchMaxResults)
	if len(matches) == 0 {
		return []string{}
	}
	values := field(&matches[0])
	if len(values) == 0 {
		return []string{}
	}
	return values
}
