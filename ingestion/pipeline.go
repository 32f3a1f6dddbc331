package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/clinref/symptomsearch/core"
	"github.com/clinref/symptomsearch/storage"
	"github.com/panjf2000/ants/v2"
)

// Pipeline orchestrates the loading of symptom entries into storage.
// Entries are validated concurrently before any of them is stored.
type Pipeline struct {
	symptomRepository storage.SymptomRepository
	validationPool    *ants.Pool
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent validation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.validationPool != nil {
			p.validationPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.validationPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new loading pipeline.
func NewPipeline(symptomRepository storage.SymptomRepository, opts ...Option) (*Pipeline, error) {
	if symptomRepository == nil {
		return nil, ErrSymptomRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		symptomRepository: symptomRepository,
		validationPool:    pool,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Load validates the given entries and adds them to storage in the given
// order. Validation failures carry the entry's position in the batch; the
// first failure wins and nothing is stored.
func (p *Pipeline) Load(ctx context.Context, entries []*core.SymptomEntry) ([]*core.SymptomEntry, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, entry := range entries {
		wg.Add(1)
		submitErr := p.validationPool.Submit(func() {
			defer wg.Done()
			if err := core.ValidateSymptomEntry(entry); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("entry %d: %w", i, err)
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	added, err := p.symptomRepository.AddSymptomEntries(ctx, entries...)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("loaded symptom entries", "count", len(added))
	return added, nil
}

// Release releases the validation worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.validationPool != nil {
		p.validationPool.Release()
	}
}
