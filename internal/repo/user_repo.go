package repo

import (
	"context"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (company_id, username, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, username, password_hash, display_name, role, created_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.CompanyID, u.Username, u.PasswordHash, u.DisplayName, u.Role).Scan(
		&out.ID, &out.CompanyID, &out.Username, &out.PasswordHash, &out.DisplayName, &out.Role, &out.CreatedAt,
	)
	return out, err
}

func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, company_id, username, password_hash, display_name, role, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, company_id, username, password_hash, display_name, role, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *PGUserRepo) ListByCompany(ctx context.Context, companyID int64) ([]dom.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, username, password_hash, display_name, role, created_at
		 FROM users WHERE company_id = $1 ORDER BY display_name, id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash,
			&u.DisplayName, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
