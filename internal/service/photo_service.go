package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidPhotoURL is returned when a photo URL is blank or not http(s).
var ErrInvalidPhotoURL = errors.New("photo url must be a http(s) URL")

// PhotoService records photo attachment metadata for tasks. The binaries are
// uploaded to object storage by the client; only the location lands here.
type PhotoService struct {
	photos repo.PhotoRepo
	tasks  repo.TaskRepo
}

// NewPhotoService returns a new PhotoService.
func NewPhotoService(photos repo.PhotoRepo, tasks repo.TaskRepo) *PhotoService {
	return &PhotoService{photos: photos, tasks: tasks}
}

// Attach registers a photo against a company task.
func (s *PhotoService) Attach(ctx context.Context, companyID, taskID, uploadedBy int64, rawURL, caption string) (dom.Photo, error) {
	if _, err := s.tasks.GetByID(ctx, companyID, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Photo{}, ErrNotFound
		}
		return dom.Photo{}, err
	}
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dom.Photo{}, ErrInvalidPhotoURL
	}
	return s.photos.Insert(ctx, dom.Photo{
		TaskID:     taskID,
		URL:        rawURL,
		Caption:    strings.TrimSpace(caption),
		UploadedBy: uploadedBy,
	})
}

// ListByTask returns the task's photos, oldest first.
func (s *PhotoService) ListByTask(ctx context.Context, companyID, taskID int64) ([]dom.Photo, error) {
	if _, err := s.tasks.GetByID(ctx, companyID, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.photos.ListByTask(ctx, taskID)
}
