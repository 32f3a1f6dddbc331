package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Urgency is the clinical urgency tier attached to a symptom entry.
// Tiers form a total order: Emergency > High > Medium > Low.
type Urgency int

const (
	// UrgencyLow indicates routine, non-urgent presentation.
	UrgencyLow Urgency = iota + 1
	// UrgencyMedium indicates presentation warranting timely assessment.
	UrgencyMedium
	// UrgencyHigh indicates presentation requiring prompt assessment.
	UrgencyHigh
	// UrgencyEmergency indicates presentation requiring immediate assessment.
	UrgencyEmergency
)

// String returns the lowercase name of the urgency tier.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	case UrgencyEmergency:
		return "emergency"
	default:
		return "unknown"
	}
}

// ParseUrgency parses a tier name as produced by Urgency.String.
func ParseUrgency(s string) (Urgency, error) {
	switch s {
	case "low":
		return UrgencyLow, nil
	case "medium":
		return UrgencyMedium, nil
	case "high":
		return UrgencyHigh, nil
	case "emergency":
		return UrgencyEmergency, nil
	default:
		return 0, ErrInvalidUrgency
	}
}

// SymptomEntry is one row of the knowledge base describing a clinical
// symptom and its metadata. Entries are immutable after load; identity is
// the canonical Symptom name (IDs are content-hashed from it).
type SymptomEntry struct {
	Id           ID
	Symptom      string   // canonical display name, unique within the knowledge base
	MedicalTerms []string // clinical/latinate synonyms
	CommonTerms  []string // patient-facing phrasings
	Codes        []string // external classification codes, e.g. ICD-10

	AssociatedConditions []string // identifiers into the external condition catalog
	AssociatedTools      []string // identifiers into the external assessment tool catalog

	Urgency     Urgency
	Description string

	// Clinical metadata, not matched against; surfaced via convenience accessors.
	RedFlags             []string
	Differentials        []string
	PhysicalExamFindings []string
	DiagnosticTests      []string

	InsertedAt time.Time // When the entry was inserted into the store
	UpdatedAt  time.Time // When the entry was last updated
}
