package badger

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/clinref/symptomsearch/core"
)

// Key prefixes for different data types
const (
	symptomEntryPrefix = "symrec"
	symptomOrderPrefix = "symord"
	symptomNamePrefix  = "symname"
	symptomCodePrefix  = "symcode"
	symptomOrderSeq    = "symordseq"
)

// makeSymptomEntryKey generates a key for a symptom entry by ID.
func makeSymptomEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", symptomEntryPrefix, id))
}

// makeSymptomOrderKey generates a composite key for the load-order index.
// Format: prefix:position:id
func makeSymptomOrderKey(position uint64, id core.ID) []byte {
	prefix := symptomOrderPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for position + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort preserves load order
	binary.BigEndian.PutUint64(buf[offset:], position)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSymptomNameKey generates a key for the canonical-name index.
// Names are folded to lowercase so lookups are case-insensitive.
func makeSymptomNameKey(name string) []byte {
	folded := strings.ToLower(strings.TrimSpace(name))
	return []byte(fmt.Sprintf("%s:%s", symptomNamePrefix, folded))
}

// makeSymptomCodeKey generates a composite key for the classification-code
// index. Codes are folded to lowercase; the BigEndian position suffix keeps
// keys unique when several entries share a code and makes prefix scans
// yield entries in load order.
// Format: prefix:code:position
func makeSymptomCodeKey(code string, position uint64) []byte {
	prefix := makeSymptomCodePrefix(code)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}

// makeSymptomCodePrefix generates the scan prefix for one classification code.
func makeSymptomCodePrefix(code string) []byte {
	folded := strings.ToLower(strings.TrimSpace(code))
	return []byte(fmt.Sprintf("%s:%s:", symptomCodePrefix, folded))
}
