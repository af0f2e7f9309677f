package meeting

import (
	"fmt"
	"time"
)

// IDLayout is the timestamp format used for record identifiers. It sorts
// lexicographically in chronological order.
const IDLayout = "2006_01_02_15_04_05"

// NewID derives a record identifier from the session start time.
func NewID(t time.Time) string {
	return t.Format(IDLayout)
}

// ParseID recovers the session start time from an identifier.
func ParseID(id string) (time.Time, error) {
	t, err := time.ParseInLocation(IDLayout, id, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid meeting identifier %q: %w", id, err)
	}
	return t, nil
}

// Record represents one stored meeting.
type Record struct {
	ID        string
	Dir       string
	StartedAt time.Time
	Title     string
}

// Label is the display name shown in listings: the formatted start time,
// suffixed with the title when one has been set.
func (r Record) Label() string {
	label := r.StartedAt.Format("2006/01/02 15:04:05")
	if r.Title != "" {
		label += " - " + r.Title
	}
	return label
}
