// Copyright 2026 Clinref Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package symptomsearch

import (
	"context"
	"log/slog"

	"github.com/clinref/symptomsearch/core"
	"github.com/clinref/symptomsearch/ingestion"
	"github.com/clinref/symptomsearch/search"
	"github.com/clinref/symptomsearch/storage"
	"github.com/clinref/symptomsearch/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	symptomRepo storage.SymptomRepository
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory opens the backing store in memory, without touching disk.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithDatabaseLogger sets a custom logger.
// Default is slog.Default().
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create symptom repository
	symptomRepo, err := badger.NewSymptomRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		symptomRepo: symptomRepo,
		logger:      options.logger,
	}, nil
}

func (db *Database) Close() error {
	if err := db.symptomRepo.Close(); err != nil {
		db.logger.Error("error closing symptom repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) SymptomRepository() storage.SymptomRepository {
	return db.symptomRepo
}

func (db *Database) NewLoadingPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.symptomRepo, opts...)
}

// NewEngine builds a search engine over the stored knowledge base. The
// engine holds its own snapshot of the entries in load order, so entries
// added after this call are not visible to it.
func (db *Database) NewEngine(ctx context.Context, opts ...search.Option) (*search.Engine, error) {
	stored, err := db.symptomRepo.GetAllSymptomEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]core.SymptomEntry, len(stored))
	for i, entry := range stored {
		entries[i] = *entry
	}

	return search.NewEngine(entries, opts...)
}
