package domain

import "time"

// Company scopes every account, task and time entry. Crews join via the
// invite code; only admins may see or rotate it.
type Company struct {
	ID         int64
	Name       string
	InviteCode string
	CreatedAt  time.Time
}
