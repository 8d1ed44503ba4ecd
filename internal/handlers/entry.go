package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akileinonen/maintenance-wizard/internal/auth"
	"github.com/akileinonen/maintenance-wizard/internal/dto"
	"github.com/akileinonen/maintenance-wizard/internal/service"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/gin-gonic/gin"
)

// EntryHandler handles time logging against tasks.
type EntryHandler struct {
	svc *service.TimesheetService
}

// NewEntryHandler returns a new EntryHandler.
func NewEntryHandler(svc *service.TimesheetService) *EntryHandler {
	return &EntryHandler{svc: svc}
}

// Log godoc
// @Summary      Log a time entry against a task
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.LogEntryRequest  true  "Time entry"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/entries [post]
func (h *EntryHandler) Log(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}
	id := auth.IdentityFromContext(c)
	entry, err := h.svc.LogTime(c.Request.Context(), id.CompanyID, taskID, service.LogTimeInput{
		WorkerID:    req.WorkerID,
		WorkerName:  req.WorkerName,
		Date:        req.Date.Time(),
		Start:       req.Start,
		End:         req.End,
		DeductBreak: req.DeductBreak,
		RecordedBy:  id.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, timeclock.ErrInvalidFormat),
			errors.Is(err, timeclock.ErrMissingWorkerIdentity),
			errors.Is(err, service.ErrWorkerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, entryToResponse(entry))
}

// List godoc
// @Summary      List a task's time entries
// @Tags         entries
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.ListEntriesResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id := auth.IdentityFromContext(c)
	entries, err := h.svc.EntriesForTask(c.Request.Context(), id.CompanyID, taskID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		items[i] = entryToResponse(entries[i])
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Items: items})
}

// Total godoc
// @Summary      Total logged hours for a task
// @Description  Sums hours over all entries, or over one registered worker's
// @Description  entries when worker_id is given. Guest entries never count
// @Description  toward a worker total.
// @Tags         entries
// @Produce      json
// @Security     CookieAuth
// @Param        id         path      int  true   "Task ID"
// @Param        worker_id  query     int  false  "Registered worker ID"
// @Success      200  {object}  dto.EntryTotalResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/entries/total [get]
func (h *EntryHandler) Total(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id := auth.IdentityFromContext(c)
	resp := dto.EntryTotalResponse{TaskID: taskID}

	var (
		total float64
		err   error
	)
	if raw := c.Query("worker_id"); raw != "" {
		workerID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || workerID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker_id"})
			return
		}
		resp.WorkerID = &workerID
		total, err = h.svc.TotalForWorker(c.Request.Context(), id.CompanyID, taskID, workerID)
	} else {
		total, err = h.svc.TotalForTask(c.Request.Context(), id.CompanyID, taskID)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp.TotalHours = total
	c.JSON(http.StatusOK, resp)
}

func entryToResponse(e timeclock.Entry) dto.EntryResponse {
	resp := dto.EntryResponse{
		ID:            e.ID,
		TaskID:        e.TaskID,
		WorkerName:    e.Worker.Name(),
		Date:          dto.NewWorkDate(e.Date),
		Start:         e.Start.String(),
		End:           e.End.String(),
		BreakDeducted: e.BreakDeducted,
		HoursSpent:    e.HoursSpent,
		RecordedBy:    e.RecordedBy,
		RecordedAt:    e.RecordedAt,
	}
	if id, ok := e.Worker.ID(); ok {
		resp.WorkerID = &id
	}
	return resp
}
