// Package ingestion provides pipeline orchestration for loading symptom
// entries into storage.
//
// The Pipeline type manages the loading workflow for a curated knowledge
// base, including:
//   - Validating entries before they reach storage
//   - Adding validated entries to storage in order
//
// Validation is performed concurrently using a worker pool. Any validation
// failure aborts the load before storage is touched, so a knowledge base is
// loaded either whole or not at all.
package ingestion
