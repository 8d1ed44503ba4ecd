package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/akileinonen/maintenance-wizard/internal/cache"
	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/repo"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/jackc/pgx/v5"
)

// ErrWorkerNotFound is returned when a worker_id does not resolve to a user
// in the caller's company.
var ErrWorkerNotFound = errors.New("worker not found in company")

// LogTimeInput is one candidate time entry as submitted by a crew member.
// WorkerID nil means a guest worker, in which case WorkerName must be set.
type LogTimeInput struct {
	WorkerID    *int64
	WorkerName  string
	Date        time.Time
	Start       string
	End         string
	DeductBreak bool
	RecordedBy  int64
}

// TimesheetService records labor against tasks. All computation is delegated
// to the timeclock ledger; this service resolves identities, rehydrates a
// per-call ledger from Postgres and persists what the ledger produced. The
// per-call ledger keeps Insert single-writer without any shared lock.
type TimesheetService struct {
	tasks      repo.TaskRepo
	entries    repo.EntryRepo
	users      repo.UserRepo
	cache      *cache.TaskCache
	breakHours float64
}

// NewTimesheetService creates a TimesheetService. breakHours is the configured
// fixed break deduction; if c is nil, cache invalidation is skipped.
func NewTimesheetService(tasks repo.TaskRepo, entries repo.EntryRepo, users repo.UserRepo, c *cache.TaskCache, breakHours float64) *TimesheetService {
	return &TimesheetService{tasks: tasks, entries: entries, users: users, cache: c, breakHours: breakHours}
}

// LogTime validates and records one time entry against a company task.
// Start/end are "HH:MM" strings; a malformed one fails with
// timeclock.ErrInvalidFormat, a guest entry without a name with
// timeclock.ErrMissingWorkerIdentity.
func (s *TimesheetService) LogTime(ctx context.Context, companyID, taskID int64, in LogTimeInput) (timeclock.Entry, error) {
	if _, err := s.taskInCompany(ctx, companyID, taskID); err != nil {
		return timeclock.Entry{}, err
	}
	start, err := timeclock.ParseTimeOfDay(in.Start)
	if err != nil {
		return timeclock.Entry{}, err
	}
	end, err := timeclock.ParseTimeOfDay(in.End)
	if err != nil {
		return timeclock.Entry{}, err
	}
	worker, err := s.resolveWorker(ctx, companyID, in)
	if err != nil {
		return timeclock.Entry{}, err
	}

	ledger, err := s.ledgerForTask(ctx, taskID)
	if err != nil {
		return timeclock.Entry{}, err
	}
	entry, err := ledger.Insert(timeclock.Insertion{
		TaskID:      dom.TaskKey(taskID),
		Worker:      worker,
		Date:        in.Date,
		Start:       start,
		End:         end,
		DeductBreak: in.DeductBreak,
		RecordedBy:  strconv.FormatInt(in.RecordedBy, 10),
	})
	if err != nil {
		return timeclock.Entry{}, err
	}
	if err := s.entries.Insert(ctx, taskID, entry); err != nil {
		return timeclock.Entry{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, companyID)
	}
	return entry, nil
}

// EntriesForTask returns the task's entries in the order they were recorded.
func (s *TimesheetService) EntriesForTask(ctx context.Context, companyID, taskID int64) ([]timeclock.Entry, error) {
	if _, err := s.taskInCompany(ctx, companyID, taskID); err != nil {
		return nil, err
	}
	ledger, err := s.ledgerForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return ledger.EntriesForTask(dom.TaskKey(taskID)), nil
}

// TotalForTask sums logged hours over all of the task's entries.
func (s *TimesheetService) TotalForTask(ctx context.Context, companyID, taskID int64) (float64, error) {
	if _, err := s.taskInCompany(ctx, companyID, taskID); err != nil {
		return 0, err
	}
	ledger, err := s.ledgerForTask(ctx, taskID)
	if err != nil {
		return 0, err
	}
	return ledger.TotalHoursForTask(dom.TaskKey(taskID)), nil
}

// TotalForWorker sums the task's logged hours for one registered worker.
// Guest entries never count here.
func (s *TimesheetService) TotalForWorker(ctx context.Context, companyID, taskID, workerID int64) (float64, error) {
	if _, err := s.taskInCompany(ctx, companyID, taskID); err != nil {
		return 0, err
	}
	ledger, err := s.ledgerForTask(ctx, taskID)
	if err != nil {
		return 0, err
	}
	return ledger.TotalHoursForWorker(dom.TaskKey(taskID), strconv.FormatInt(workerID, 10)), nil
}

func (s *TimesheetService) taskInCompany(ctx context.Context, companyID, taskID int64) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, companyID, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TimesheetService) ledgerForTask(ctx context.Context, taskID int64) (*timeclock.Ledger, error) {
	persisted, err := s.entries.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	ledger := timeclock.NewLedger(s.breakHours)
	ledger.Rehydrate(persisted)
	return ledger, nil
}

// resolveWorker maps the submitted identity onto a ledger worker: a worker_id
// must belong to the caller's company and takes its display name from the
// account; otherwise the entry is attributed to a guest by name.
func (s *TimesheetService) resolveWorker(ctx context.Context, companyID int64, in LogTimeInput) (timeclock.Worker, error) {
	if in.WorkerID == nil {
		return timeclock.GuestWorker(in.WorkerName), nil
	}
	u, err := s.users.GetByID(ctx, *in.WorkerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.Worker{}, ErrWorkerNotFound
		}
		return timeclock.Worker{}, err
	}
	if u.CompanyID != companyID {
		return timeclock.Worker{}, ErrWorkerNotFound
	}
	return timeclock.RegisteredWorker(strconv.FormatInt(u.ID, 10), u.DisplayName), nil
}
