package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Handwritten MUS serializers for the domain types. Timestamps are encoded
// as microsecond Unix values, so round-trips truncate to microsecond
// precision.
var (
	IDMUS           = idMUS{}
	UrgencyMUS      = urgencyMUS{}
	SymptomEntryMUS = symptomEntryMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

type urgencyMUS struct{}

func (urgencyMUS) Marshal(u Urgency, bs []byte) int {
	return varint.Int.Marshal(int(u), bs)
}

func (urgencyMUS) Unmarshal(bs []byte) (Urgency, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return Urgency(v), n, err
}

func (urgencyMUS) Size(u Urgency) int {
	return varint.Int.Size(int(u))
}

type symptomEntryMUS struct{}

func (s symptomEntryMUS) Marshal(e SymptomEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Symptom, bs[n:])
	n += marshalStringSlice(e.MedicalTerms, bs[n:])
	n += marshalStringSlice(e.CommonTerms, bs[n:])
	n += marshalStringSlice(e.Codes, bs[n:])
	n += marshalStringSlice(e.AssociatedConditions, bs[n:])
	n += marshalStringSlice(e.AssociatedTools, bs[n:])
	n += UrgencyMUS.Marshal(e.Urgency, bs[n:])
	n += ord.String.Marshal(e.Description, bs[n:])
	n += marshalStringSlice(e.RedFlags, bs[n:])
	n += marshalStringSlice(e.Differentials, bs[n:])
	n += marshalStringSlice(e.PhysicalExamFindings, bs[n:])
	n += marshalStringSlice(e.DiagnosticTests, bs[n:])
	n += marshalTime(e.InsertedAt, bs[n:])
	n += marshalTime(e.UpdatedAt, bs[n:])
	return n
}

func (s symptomEntryMUS) Unmarshal(bs []byte) (e SymptomEntry, n int, err error) {
	var m int
	if e.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if e.Symptom, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if e.MedicalTerms, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.CommonTerms, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.Codes, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.AssociatedConditions, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.AssociatedTools, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.Urgency, m, err = UrgencyMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if e.Description, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if e.RedFlags, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.Differentials, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.PhysicalExamFindings, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.DiagnosticTests, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if e.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	if e.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	return
}

func (s symptomEntryMUS) Size(e SymptomEntry) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Symptom)
	size += sizeStringSlice(e.MedicalTerms)
	size += sizeStringSlice(e.CommonTerms)
	size += sizeStringSlice(e.Codes)
	size += sizeStringSlice(e.AssociatedConditions)
	size += sizeStringSlice(e.AssociatedTools)
	size += UrgencyMUS.Size(e.Urgency)
	size += ord.String.Size(e.Description)
	size += sizeStringSlice(e.RedFlags)
	size += sizeStringSlice(e.Differentials)
	size += sizeStringSlice(e.PhysicalExamFindings)
	size += sizeStringSlice(e.DiagnosticTests)
	size += sizeTime(e.InsertedAt)
	size += sizeTime(e.UpdatedAt)
	return size
}

func marshalStringSlice(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]string, length)
	var m int
	for i := 0; i < length; i++ {
		if v[i], m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
	}
	return v, n, nil
}

func sizeStringSlice(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
