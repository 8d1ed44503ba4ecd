package dto

import "time"

type AttachPhotoRequest struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption" binding:"max=300"`
}

type PhotoResponse struct {
	ID         int64     `json:"id"`
	TaskID     int64     `json:"task_id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	UploadedBy int64     `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ListPhotosResponse struct {
	Items []PhotoResponse `json:"items"`
}
