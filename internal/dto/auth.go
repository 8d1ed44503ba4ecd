package dto

// RegisterAdminRequest is the JSON body for POST /auth/register: bootstraps a
// company and its admin account in one step.
type RegisterAdminRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=1,max=120"`
	Username    string `json:"username" binding:"required,min=1,max=120"`
	Password    string `json:"password" binding:"required,min=1"`
	DisplayName string `json:"display_name" binding:"max=120"`
}

// JoinRequest is the JSON body for POST /auth/join.
type JoinRequest struct {
	InviteCode  string `json:"invite_code" binding:"required"`
	Username    string `json:"username" binding:"required,min=1,max=120"`
	Password    string `json:"password" binding:"required,min=1"`
	DisplayName string `json:"display_name" binding:"max=120"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is returned when user info is needed (login, /auth/me).
type UserResponse struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"company_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
