package domain

import (
	"strconv"
	"time"
)

// TaskStatus is the lifecycle state of a maintenance task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Known reports whether s is one of the defined statuses.
func (s TaskStatus) Known() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskKey renders a task ID as the string key used by the timeclock ledger.
func TaskKey(id int64) string { return strconv.FormatInt(id, 10) }

// Task is a maintenance job on a road-marking machine. Logged labor lives in
// the timeclock ledger keyed by the task ID; EstimatedHours feeds the
// overview aggregation.
type Task struct {
	ID             int64
	CompanyID      int64
	Title          string
	Description    string
	Machine        string
	Status         TaskStatus
	EstimatedHours float64
	CreatedBy      int64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
