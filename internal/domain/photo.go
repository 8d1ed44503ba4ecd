package domain

import "time"

// Photo is attachment metadata for a task. The binary itself lives in object
// storage; this service only records where it is and who attached it.
type Photo struct {
	ID         int64
	TaskID     int64
	URL        string
	Caption    string
	UploadedBy int64
	UploadedAt time.Time
}
