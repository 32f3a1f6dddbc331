package storage

import (
	"context"

	"github.com/clinref/symptomsearch/core"
)

// SymptomRepository provides operations for managing knowledge-base entries.
// Implementations must be thread-safe and support concurrent access.
type SymptomRepository interface {
	// AddSymptomEntries adds one or more entries to storage.
	// For entries with ID=0, derives the ID from the canonical symptom name.
	// Sets InsertedAt/UpdatedAt timestamps and assigns each entry the next
	// position in load order.
	// Returns ErrDuplicateEntry if an entry with the same identity exists.
	AddSymptomEntries(ctx context.Context, entries ...*core.SymptomEntry) ([]*core.SymptomEntry, error)

	// GetSymptomEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetSymptomEntry(ctx context.Context, id core.ID) (*core.SymptomEntry, error)

	// GetSymptomEntryByName retrieves an entry by its canonical symptom
	// name, compared case-insensitively.
	// Returns ErrNotFound if the entry doesn't exist.
	GetSymptomEntryByName(ctx context.Context, name string) (*core.SymptomEntry, error)

	// GetSymptomEntriesByCode retrieves entries carrying the given
	// classification code, compared case-insensitively, in load order.
	GetSymptomEntriesByCode(ctx context.Context, code string) ([]*core.SymptomEntry, error)

	// GetAllSymptomEntries retrieves every entry in load order.
	GetAllSymptomEntries(ctx context.Context) ([]*core.SymptomEntry, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
