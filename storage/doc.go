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


// Package storage provides the storage abstraction layer for the symptom
// knowledge base.
//
// This package defines the repository interface that decouples storage
// implementation from the search engine. The knowledge base has a
// write-once lifecycle: entries are loaded during seeding, then read for
// the lifetime of the process. The engine itself never writes.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.SymptomRepository interface rather
// than backend-specific types:
//
//	repo, err := badger.NewSymptomRepository(backend)
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute in-memory implementations without modification.
//
// # Ordering
//
// GetAllSymptomEntries returns entries in load order. The curated knowledge
// base is an ordered sequence, and ranking ties are broken by that order,
// so the store must preserve it.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
