package domain

import "time"

// Role of a user within its company.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the domain entity for a crew member's account.
type User struct {
	ID           int64
	CompanyID    int64
	Username     string
	PasswordHash string
	DisplayName  string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user manages its company.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
