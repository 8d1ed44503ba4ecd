package handlers

import (
	"errors"
	"net/http"

	"github.com/akileinonen/maintenance-wizard/internal/auth"
	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/dto"
	"github.com/akileinonen/maintenance-wizard/internal/service"

	"github.com/gin-gonic/gin"
)

// PhotoHandler handles task photo metadata.
type PhotoHandler struct {
	svc *service.PhotoService
}

// NewPhotoHandler returns a new PhotoHandler.
func NewPhotoHandler(svc *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{svc: svc}
}

// Attach godoc
// @Summary      Attach a photo to a task
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.AttachPhotoRequest  true  "Photo location"
// @Success      201   {object}  dto.PhotoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/photos [post]
func (h *PhotoHandler) Attach(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := auth.IdentityFromContext(c)
	p, err := h.svc.Attach(c.Request.Context(), id.CompanyID, taskID, id.UserID, req.URL, req.Caption)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrInvalidPhotoURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, photoToResponse(p))
}

// List godoc
// @Summary      List a task's photos
// @Tags         photos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.ListPhotosResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id := auth.IdentityFromContext(c)
	list, err := h.svc.ListByTask(c.Request.Context(), id.CompanyID, taskID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.PhotoResponse, len(list))
	for i := range list {
		items[i] = photoToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListPhotosResponse{Items: items})
}

func photoToResponse(p dom.Photo) dto.PhotoResponse {
	return dto.PhotoResponse{
		ID:         p.ID,
		TaskID:     p.TaskID,
		URL:        p.URL,
		Caption:    p.Caption,
		UploadedBy: p.UploadedBy,
		UploadedAt: p.UploadedAt,
	}
}
