package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "chest pain",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "acute onset pleuritic chest pain radiating to the left arm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("chest pain")
	id2 := IDFromContent("abdominal pain")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestUrgency_String(t *testing.T) {
	tests := []struct {
		urgency Urgency
		want    string
	}{
		{UrgencyLow, "low"},
		{UrgencyMedium, "medium"},
		{UrgencyHigh, "high"},
		{UrgencyEmergency, "emergency"},
		{Urgency(0), "unknown"},
		{Urgency(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.urgency.String(); got != tt.want {
				t.Errorf("Urgency.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUrgency_Order(t *testing.T) {
	if !(UrgencyEmergency > UrgencyHigh && UrgencyHigh > UrgencyMedium && UrgencyMedium > UrgencyLow) {
		t.Errorf("urgency tiers are not totally ordered: emergency=%d high=%d medium=%d low=%d",
			UrgencyEmergency, UrgencyHigh, UrgencyMedium, UrgencyLow)
	}
}

func TestParseUrgency(t *testing.T) {
	tests := []struct {
		input   string
		want    Urgency
		wantErr bool
	}{
		{"low", UrgencyLow, false},
		{"medium", UrgencyMedium, false},
		{"high", UrgencyHigh, false},
		{"emergency", UrgencyEmergency, false},
		{"", 0, true},
		{"critical", 0, true},
		{"EMERGENCY", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUrgency(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseUrgency(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseUrgency(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseUrgency(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUrgency_RoundTrip(t *testing.T) {
	for _, u := range []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency} {
		parsed, err := ParseUrgency(u.String())
		if err != nil {
			t.Errorf("ParseUrgency(%q) unexpected error: %v", u.String(), err)
		}
		if parsed != u {
			t.Errorf("ParseUrgency(%q) = %v, want %v", u.String(), parsed, u)
		}
	}
}
