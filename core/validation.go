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


package core

import (
	"fmt"
	"strings"
)

// ValidateSymptomEntry validates a SymptomEntry according to domain rules.
//
// Validation rules:
//   - Symptom must not be empty (or whitespace-only)
//   - Urgency must be one of the four tiers
//
// NOT validated (populated by the store):
//   - ID (0 means "derive from the symptom name on insert")
//   - InsertedAt / UpdatedAt
func ValidateSymptomEntry(entry *SymptomEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidSymptomEntry)
	}

	if strings.TrimSpace(entry.Symptom) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSymptomEntry, ErrEmptySymptom)
	}

	if err := ValidateUrgency(entry.Urgency); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSymptomEntry, err)
	}

	return nil
}

// ValidateUrgency validates that an Urgency has a valid tier value.
func ValidateUrgency(urgency Urgency) error {
	if urgency < UrgencyLow || urgency > UrgencyEmergency {
		return fmt.Errorf("%w: value %d", ErrInvalidUrgency, urgency)
	}
	return nil
}
