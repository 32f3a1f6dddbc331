package search

import "github.com/clinref/symptomsearch/core"

// SearchMonitor provides hooks to observe the query pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	EntryScored(entry *core.SymptomEntry, score int)
	AfterScoring(matched int)
	Finish(results []core.SymptomEntry)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) EntryScored(_ *core.SymptomEntry, _ int) {}
func (n *noopMonitor) AfterScoring(_ int)                      {}
func (n *noopMonitor) Finish(_ []core.SymptomEntry)            {}
