package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/repo"
	"github.com/akileinonen/maintenance-wizard/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidInviteCode  = errors.New("invalid invite code")
	ErrCompanyNameEmpty   = errors.New("company name required")
)

// UserService handles onboarding and auth: the first user of a company
// registers as admin and gets an invite code, the rest of the crew joins with
// that code as regular users.
type UserService struct {
	users     repo.UserRepo
	companies repo.CompanyRepo
}

// NewUserService returns a new UserService.
func NewUserService(users repo.UserRepo, companies repo.CompanyRepo) *UserService {
	return &UserService{users: users, companies: companies}
}

// RegisterAdmin creates a company together with its admin account.
// TODO: wrap company+admin creation in a single pg transaction so a failed
// admin insert does not leave an empty company behind.
func (s *UserService) RegisterAdmin(ctx context.Context, companyName, username, password, displayName string) (dom.User, dom.Company, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return dom.User{}, dom.Company{}, ErrCompanyNameEmpty
	}
	username, displayName, hash, err := s.prepareAccount(username, password, displayName)
	if err != nil {
		return dom.User{}, dom.Company{}, err
	}

	code, err := utils.NewInviteCode()
	if err != nil {
		return dom.User{}, dom.Company{}, err
	}
	company, err := s.companies.Create(ctx, companyName, code)
	if err != nil {
		return dom.User{}, dom.Company{}, err
	}

	u, err := s.users.Create(ctx, dom.User{
		CompanyID:    company.ID,
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         dom.RoleAdmin,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, dom.Company{}, ErrUsernameTaken
		}
		return dom.User{}, dom.Company{}, err
	}
	return u, company, nil
}

// RegisterWithInvite creates a regular user in the company owning the code.
func (s *UserService) RegisterWithInvite(ctx context.Context, inviteCode, username, password, displayName string) (dom.User, error) {
	company, err := s.companies.GetByInviteCode(ctx, strings.TrimSpace(inviteCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidInviteCode
		}
		return dom.User{}, err
	}
	username, displayName, hash, err := s.prepareAccount(username, password, displayName)
	if err != nil {
		return dom.User{}, err
	}

	u, err := s.users.Create(ctx, dom.User{
		CompanyID:    company.ID,
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         dom.RoleUser,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns the user with the given ID. Used by the session middleware.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

func (s *UserService) prepareAccount(username, password, displayName string) (string, string, string, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)
	if username == "" || password == "" {
		return "", "", "", ErrInvalidCredentials
	}
	if displayName == "" {
		displayName = username
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", "", err
	}
	return username, displayName, string(hash), nil
}
