package ingestion

import "errors"

var (
	// ErrSymptomRepositoryRequired is returned when a symptom repository is not provided.
	ErrSymptomRepositoryRequired = errors.New("symptom repository required")

	// ErrNoEntries is returned when a load is attempted with no entries.
	ErrNoEntries = errors.New("no entries to load")
)
