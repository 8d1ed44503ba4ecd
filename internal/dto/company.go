package dto

import "time"

// CompanyResponse describes the caller's company. InviteCode is only filled
// in for admins.
type CompanyResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
