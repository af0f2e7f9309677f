package meeting

import (
	"testing"
	"time"
)

func TestNewIDRoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	id := NewID(start)
	if id != "2024_01_01_10_00_00" {
		t.Errorf("NewID = %s, want 2024_01_01_10_00_00", id)
	}

	parsed, err := ParseID(id)
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if !parsed.Equal(start) {
		t.Errorf("ParseID = %v, want %v", parsed, start)
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "notes", "2024-01-01", "2024_01_01"} {
		if _, err := ParseID(id); err == nil {
			t.Errorf("ParseID(%q) should fail", id)
		}
	}
}

func TestIDOrderingMatchesChronology(t *testing.T) {
	earlier := NewID(time.Date(2024, 1, 1, 9, 59, 59, 0, time.Local))
	later := NewID(time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))
	if !(earlier < later) {
		t.Errorf("identifier ordering broken: %s !< %s", earlier, later)
	}
}

func TestLabel(t *testing.T) {
	rec := Record{
		ID:        "2024_01_01_10_00_00",
		StartedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
	}
	if got := rec.Label(); got != "2024/01/01 10:00:00" {
		t.Errorf("Label = %q", got)
	}

	rec.Title = "Kickoff"
	if got := rec.Label(); got != "2024/01/01 10:00:00 - Kickoff" {
		t.Errorf("titled Label = %q", got)
	}
}
