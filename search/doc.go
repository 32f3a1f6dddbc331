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


// Package search provides fuzzy matching and urgency-aware ranking over a
// curated knowledge base of clinical symptom entries.
//
// The Engine type scores every entry against a free-text query using:
//   - Exact, substring, and edit-distance matching across canonical names,
//     medical terms, and patient-facing phrasings
//   - Case-insensitive classification code matching
//   - Multi-word query decomposition with per-term coverage bonuses
//   - A flat urgency bonus per entry
//
// Matched entries are sorted by urgency tier first and relevance score
// second, so clinically urgent entries always surface above better textual
// matches of lower urgency.
//
// Every query is a pure function of its arguments and the knowledge base
// given at construction; the Engine holds no mutable state and is safe for
// concurrent use.
package search
