package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/akileinonen/maintenance-wizard/internal/cache"
	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/repo"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrTitleEmpty      = errors.New("title required")
	ErrInvalidEstimate = errors.New("estimated hours must not be negative")
	ErrUnknownStatus   = errors.New("unknown task status")
)

// TaskService handles maintenance task CRUD and the estimated-vs-actual
// overview. List and Overview results are cached per company; every write
// (including time entries, see TimesheetService) invalidates the cache.
type TaskService struct {
	repo       repo.TaskRepo
	entries    repo.EntryRepo
	cache      *cache.TaskCache
	breakHours float64
	sf         singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, entries repo.EntryRepo, c *cache.TaskCache, breakHours float64) *TaskService {
	return &TaskService{repo: r, entries: entries, cache: c, breakHours: breakHours}
}

func (s *TaskService) Create(ctx context.Context, companyID, createdBy int64, title, description, machine string, estimatedHours float64) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Task{}, ErrTitleEmpty
	}
	if estimatedHours < 0 {
		return dom.Task{}, ErrInvalidEstimate
	}
	t, err := s.repo.Create(ctx, dom.Task{
		CompanyID:      companyID,
		Title:          title,
		Description:    strings.TrimSpace(description),
		Machine:        strings.TrimSpace(machine),
		Status:         dom.StatusPending,
		EstimatedHours: estimatedHours,
		CreatedBy:      createdBy,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, companyID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, companyID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(companyID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, companyID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, companyID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, companyID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, companyID)
}

func (s *TaskService) GetByID(ctx context.Context, companyID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, companyID, id int64, title, description, machine *string, estimatedHours *float64) (dom.Task, error) {
	existing, err := s.GetByID(ctx, companyID, id)
	if err != nil {
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
		if patch.Title == "" {
			return dom.Task{}, ErrTitleEmpty
		}
	}
	if description != nil {
		patch.Description = strings.TrimSpace(*description)
	}
	if machine != nil {
		patch.Machine = strings.TrimSpace(*machine)
	}
	if estimatedHours != nil {
		if *estimatedHours < 0 {
			return dom.Task{}, ErrInvalidEstimate
		}
		patch.EstimatedHours = *estimatedHours
	}
	t, err := s.repo.Update(ctx, companyID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, companyID)
	return t, nil
}

func (s *TaskService) SetStatus(ctx context.Context, companyID, id int64, status dom.TaskStatus) (dom.Task, error) {
	if !status.Known() {
		return dom.Task{}, ErrUnknownStatus
	}
	t, err := s.repo.SetStatus(ctx, companyID, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, companyID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.repo.SoftDelete(ctx, companyID, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, companyID)
	return nil
}

// Overview rehydrates the company's time ledger and combines it with task
// estimates: pending-task count, estimated hours still outstanding (pending
// tasks only) and actual hours logged across all tasks.
func (s *TaskService) Overview(ctx context.Context, companyID int64) (timeclock.Stats, error) {
	if s.cache != nil {
		key := "overview:" + strconv.FormatInt(companyID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if stats, err := s.cache.GetOverview(ctx, companyID); err == nil && stats != nil {
				return *stats, nil
			}
			stats, err := s.computeOverview(ctx, companyID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetOverview(ctx, companyID, stats)
			return stats, nil
		})
		if err != nil {
			return timeclock.Stats{}, err
		}
		return v.(timeclock.Stats), nil
	}
	return s.computeOverview(ctx, companyID)
}

func (s *TaskService) computeOverview(ctx context.Context, companyID int64) (timeclock.Stats, error) {
	tasks, err := s.repo.List(ctx, companyID)
	if err != nil {
		return timeclock.Stats{}, err
	}
	entries, err := s.entries.ListByCompany(ctx, companyID)
	if err != nil {
		return timeclock.Stats{}, err
	}
	ledger := timeclock.NewLedger(s.breakHours)
	ledger.Rehydrate(entries)

	facts := make([]timeclock.TaskFacts, len(tasks))
	for i, t := range tasks {
		facts[i] = timeclock.TaskFacts{
			ID:             dom.TaskKey(t.ID),
			EstimatedHours: t.EstimatedHours,
			Status:         string(t.Status),
		}
	}
	return timeclock.Overview(facts, ledger), nil
}

func (s *TaskService) invalidateCache(ctx context.Context, companyID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, companyID)
	}
}
