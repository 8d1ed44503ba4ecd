package repo

import (
	"context"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepo provides company persistence.
type CompanyRepo interface {
	Create(ctx context.Context, name, inviteCode string) (dom.Company, error)
	GetByID(ctx context.Context, id int64) (dom.Company, error)
	GetByInviteCode(ctx context.Context, code string) (dom.Company, error)
	RotateInviteCode(ctx context.Context, id int64, code string) (dom.Company, error)
}

// PGCompanyRepo implements CompanyRepo with Postgres.
type PGCompanyRepo struct {
	db *pgxpool.Pool
}

// NewPGCompanyRepo returns a new PGCompanyRepo.
func NewPGCompanyRepo(db *pgxpool.Pool) *PGCompanyRepo {
	return &PGCompanyRepo{db: db}
}

func (r *PGCompanyRepo) Create(ctx context.Context, name, inviteCode string) (dom.Company, error) {
	query := `
		INSERT INTO companies (name, invite_code)
		VALUES ($1, $2)
		RETURNING id, name, invite_code, created_at`
	var c dom.Company
	err := r.db.QueryRow(ctx, query, name, inviteCode).Scan(
		&c.ID, &c.Name, &c.InviteCode, &c.CreatedAt,
	)
	return c, err
}

func (r *PGCompanyRepo) GetByID(ctx context.Context, id int64) (dom.Company, error) {
	var c dom.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, name, invite_code, created_at FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.InviteCode, &c.CreatedAt)
	return c, err
}

func (r *PGCompanyRepo) GetByInviteCode(ctx context.Context, code string) (dom.Company, error) {
	var c dom.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, name, invite_code, created_at FROM companies WHERE invite_code = $1`,
		code,
	).Scan(&c.ID, &c.Name, &c.InviteCode, &c.CreatedAt)
	return c, err
}

func (r *PGCompanyRepo) RotateInviteCode(ctx context.Context, id int64, code string) (dom.Company, error) {
	query := `
		UPDATE companies SET invite_code = $2
		WHERE id = $1
		RETURNING id, name, invite_code, created_at`
	var c dom.Company
	err := r.db.QueryRow(ctx, query, id, code).Scan(
		&c.ID, &c.Name, &c.InviteCode, &c.CreatedAt,
	)
	return c, err
}
