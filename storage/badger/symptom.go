package badger

import (
	"context"
	"time"

	"github.com/clinref/symptomsearch/core"
	"github.com/clinref/symptomsearch/storage"
	"github.com/dgraph-io/badger/v4"
)

// SymptomRepository implements storage.SymptomRepository for BadgerDB.
type SymptomRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.SymptomRepository = (*SymptomRepository)(nil)

// NewSymptomRepository creates a new SymptomRepository.
func NewSymptomRepository(backend *Backend) (storage.SymptomRepository, error) {
	orderSeq, err := backend.GetSequence(symptomOrderSeq)
	if err != nil {
		return nil, err
	}
	return &SymptomRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the load-order sequence.
func (r *SymptomRepository) Close() error {
	return r.orderSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *SymptomRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSymptomEntries adds one or more entries to storage. Identity is the
// canonical symptom name: entries with ID=0 get a content-hashed ID, and a
// second entry with the same name is rejected.
func (r *SymptomRepository) AddSymptomEntries(ctx context.Context, entries ...*core.SymptomEntry) ([]*core.SymptomEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if entry.Id == 0 {
				entry.Id = core.IDFromContent(entry.Symptom)
			}

			// Reject a second entry with the same canonical name
			nameKey := makeSymptomNameKey(entry.Symptom)
			if _, err := tx.Get(nameKey); err == nil {
				return storage.ErrDuplicateEntry
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			// Set timestamps, truncated to the precision the codec keeps
			entry.InsertedAt = time.Now().UTC().Truncate(time.Microsecond)
			entry.UpdatedAt = entry.InsertedAt

			position, err := r.orderSeq.Next()
			if err != nil {
				return err
			}

			// Store primary record
			key := makeSymptomEntryKey(entry.Id)
			value := storage.MarshalSymptomEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store load-order index
			orderKey := makeSymptomOrderKey(position, entry.Id)
			if err := tx.Set(orderKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}

			// Store name index
			if err := tx.Set(nameKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}

			// Store code index
			for _, code := range entry.Codes {
				codeKey := makeSymptomCodeKey(code, position)
				if err := tx.Set(codeKey, storage.MarshalID(entry.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetSymptomEntry retrieves a single entry by ID.
func (r *SymptomRepository) GetSymptomEntry(ctx context.Context, id core.ID) (*core.SymptomEntry, error) {
	var result *core.SymptomEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSymptomEntryKey(id)
		var err error
		result, err = readSymptomEntry(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSymptomEntryByName retrieves an entry by its canonical symptom name,
// compared case-insensitively.
func (r *SymptomRepository) GetSymptomEntryByName(ctx context.Context, name string) (*core.SymptomEntry, error) {
	var result *core.SymptomEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSymptomNameKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readSymptomEntry(tx, makeSymptomEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSymptomEntriesByCode retrieves entries carrying the given
// classification code, in load order.
func (r *SymptomRepository) GetSymptomEntriesByCode(ctx context.Context, code string) ([]*core.SymptomEntry, error) {
	var results []*core.SymptomEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := scanIndex(tx, makeSymptomCodePrefix(code))
		if err != nil {
			return err
		}
		for _, id := range ids {
			entry, err := readSymptomEntry(tx, makeSymptomEntryKey(id))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetAllSymptomEntries retrieves every entry in load order.
func (r *SymptomRepository) GetAllSymptomEntries(ctx context.Context) ([]*core.SymptomEntry, error) {
	var results []*core.SymptomEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := scanIndex(tx, []byte(symptomOrderPrefix+":"))
		if err != nil {
			return err
		}
		for _, id := range ids {
			entry, err := readSymptomEntry(tx, makeSymptomEntryKey(id))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)
	return results, err
}

// Helper functions

// readSymptomEntry reads and deserializes an entry; missing keys yield nil.
func readSymptomEntry(tx *badger.Txn, key []byte) (*core.SymptomEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.SymptomEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalSymptomEntry(val)
		return err
	})
	return entry, err
}

// scanIndex collects the ID values of every index key under prefix, in key
// order.
func scanIndex(tx *badger.Txn, prefix []byte) ([]core.ID, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var ids []core.ID
	for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
		var id core.ID
		err := iter.Item().Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
