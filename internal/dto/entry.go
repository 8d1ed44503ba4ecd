package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WorkDate parses the calendar date of a time entry from JSON as "2006-01-02".
// The date is distinct from the clock times; it is stored as midnight UTC.
type WorkDate struct{ t time.Time }

func (d *WorkDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: use YYYY-MM-DD")
	}
	raw = strings.TrimSpace(raw)
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fmt.Errorf("date: use YYYY-MM-DD")
	}
	d.t = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d WorkDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format("2006-01-02"))
}

// NewWorkDate wraps an already-parsed date for responses.
func NewWorkDate(t time.Time) WorkDate { return WorkDate{t: t} }

// Time returns the parsed date, midnight UTC.
func (d WorkDate) Time() time.Time { return d.t }

// IsZero reports whether the date was absent from the request body.
func (d WorkDate) IsZero() bool { return d.t.IsZero() }

type LogEntryRequest struct {
	// WorkerID attributes the entry to a registered crew member. Omit it for
	// a guest worker, in which case worker_name is required.
	WorkerID    *int64   `json:"worker_id"`
	WorkerName  string   `json:"worker_name" binding:"max=120"`
	Date        WorkDate `json:"date"`
	Start       string   `json:"start" binding:"required"` // "HH:MM"
	End         string   `json:"end" binding:"required"`   // "HH:MM"
	DeductBreak bool     `json:"deduct_break"`
}

type EntryResponse struct {
	ID            string   `json:"id"`
	TaskID        string   `json:"task_id"`
	WorkerID      *string  `json:"worker_id"`
	WorkerName    string   `json:"worker_name"`
	Date          WorkDate `json:"date"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	BreakDeducted bool     `json:"break_deducted"`
	HoursSpent    float64  `json:"hours_spent"`
	RecordedBy    string   `json:"recorded_by"`
	RecordedAt    time.Time `json:"recorded_at"`
}

type ListEntriesResponse struct {
	Items []EntryResponse `json:"items"`
}

type EntryTotalResponse struct {
	TaskID     int64   `json:"task_id"`
	WorkerID   *int64  `json:"worker_id,omitempty"`
	TotalHours float64 `json:"total_hours"`
}
