package service

import (
	"context"
	"errors"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/repo"
	"github.com/akileinonen/maintenance-wizard/internal/utils"

	"github.com/jackc/pgx/v5"
)

// CompanyService exposes company info and invite-code rotation.
type CompanyService struct {
	companies repo.CompanyRepo
}

// NewCompanyService returns a new CompanyService.
func NewCompanyService(companies repo.CompanyRepo) *CompanyService {
	return &CompanyService{companies: companies}
}

// Get returns the company by ID.
func (s *CompanyService) Get(ctx context.Context, id int64) (dom.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Company{}, ErrNotFound
		}
		return dom.Company{}, err
	}
	return c, nil
}

// RotateInviteCode replaces the company's invite code with a fresh one.
// Outstanding copies of the old code stop working immediately.
func (s *CompanyService) RotateInviteCode(ctx context.Context, id int64) (dom.Company, error) {
	code, err := utils.NewInviteCode()
	if err != nil {
		return dom.Company{}, err
	}
	c, err := s.companies.RotateInviteCode(ctx, id, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Company{}, ErrNotFound
		}
		return dom.Company{}, err
	}
	return c, nil
}
