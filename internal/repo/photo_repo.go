package repo

import (
	"context"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PhotoRepo provides task photo metadata persistence.
type PhotoRepo interface {
	Insert(ctx context.Context, p dom.Photo) (dom.Photo, error)
	ListByTask(ctx context.Context, taskID int64) ([]dom.Photo, error)
}

// PGPhotoRepo implements PhotoRepo with Postgres.
type PGPhotoRepo struct {
	db *pgxpool.Pool
}

// NewPGPhotoRepo returns a new PGPhotoRepo.
func NewPGPhotoRepo(db *pgxpool.Pool) *PGPhotoRepo {
	return &PGPhotoRepo{db: db}
}

func (r *PGPhotoRepo) Insert(ctx context.Context, p dom.Photo) (dom.Photo, error) {
	query := `
		INSERT INTO task_photos (task_id, url, caption, uploaded_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, task_id, url, caption, uploaded_by, uploaded_at`
	var out dom.Photo
	err := r.db.QueryRow(ctx, query, p.TaskID, p.URL, p.Caption, p.UploadedBy).Scan(
		&out.ID, &out.TaskID, &out.URL, &out.Caption, &out.UploadedBy, &out.UploadedAt,
	)
	return out, err
}

func (r *PGPhotoRepo) ListByTask(ctx context.Context, taskID int64) ([]dom.Photo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, task_id, url, caption, uploaded_by, uploaded_at
		 FROM task_photos WHERE task_id = $1 ORDER BY uploaded_at, id`,
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Photo
	for rows.Next() {
		var p dom.Photo
		if err := rows.Scan(&p.ID, &p.TaskID, &p.URL, &p.Caption, &p.UploadedBy, &p.UploadedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
