package dto

import "time"

type CreateTaskRequest struct {
	Title          string  `json:"title" binding:"required,min=1,max=120"`
	Description    string  `json:"description" binding:"max=1000"`
	Machine        string  `json:"machine" binding:"max=120"`
	EstimatedHours float64 `json:"estimated_hours" binding:"gte=0"`
}

type UpdateTaskRequest struct {
	Title          *string  `json:"title" binding:"omitempty,min=1,max=120"`
	Description    *string  `json:"description" binding:"omitempty,max=1000"`
	Machine        *string  `json:"machine" binding:"omitempty,max=120"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Machine        string    `json:"machine"`
	Status         string    `json:"status"`
	EstimatedHours float64   `json:"estimated_hours"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

// OverviewResponse is the estimated-vs-actual summary across the company's
// tasks: pending count, estimated hours still outstanding (pending tasks
// only) and actual hours logged on all tasks.
type OverviewResponse struct {
	PendingCount        int     `json:"pending_count"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	TotalActualHours    float64 `json:"total_actual_hours"`
}
