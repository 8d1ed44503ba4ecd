package repo

import (
	"context"
	"time"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides maintenance task persistence. All queries are scoped to a
// company; a task ID from another company behaves like a missing row.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, companyID, id int64) (dom.Task, error)
	List(ctx context.Context, companyID int64) ([]dom.Task, error)
	Update(ctx context.Context, companyID, id int64, patch dom.Task) (dom.Task, error)
	SetStatus(ctx context.Context, companyID, id int64, status dom.TaskStatus) (dom.Task, error)
	SoftDelete(ctx context.Context, companyID, id int64) error
}

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

// NewPGTaskRepo returns a new PGTaskRepo.
func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, company_id, title, description, machine, status, estimated_hours,
	created_by, created_at, updated_at, deleted_at`

func scanTask(row interface{ Scan(dest ...any) error }) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.Machine,
		&t.Status, &t.EstimatedHours, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (company_id, title, description, machine, status, estimated_hours, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query,
		t.CompanyID, t.Title, t.Description, t.Machine, t.Status, t.EstimatedHours, t.CreatedBy))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, companyID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`
	return scanTask(r.db.QueryRow(ctx, query, id, companyID))
}

func (r *PGTaskRepo) List(ctx context.Context, companyID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY
			CASE status WHEN 'completed' THEN 1 ELSE 0 END,
			created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, companyID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, machine = $5, estimated_hours = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query,
		id, companyID, patch.Title, patch.Description, patch.Machine, patch.EstimatedHours))
}

func (r *PGTaskRepo) SetStatus(ctx context.Context, companyID, id int64, status dom.TaskStatus) (dom.Task, error) {
	query := `
		UPDATE tasks SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, companyID, status))
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, companyID, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = $3, updated_at = $3
		 WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID, now)
	return err
}
