package service

import (
	"context"
	"testing"
	"time"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskRepo struct {
	tasks map[int64]dom.Task
}

func (s *stubTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	t.ID = int64(len(s.tasks) + 1)
	s.tasks[t.ID] = t
	return t, nil
}

func (s *stubTaskRepo) GetByID(_ context.Context, companyID, id int64) (dom.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.CompanyID != companyID || t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (s *stubTaskRepo) List(_ context.Context, companyID int64) ([]dom.Task, error) {
	var list []dom.Task
	for i := int64(1); i <= int64(len(s.tasks)); i++ {
		if t, ok := s.tasks[i]; ok && t.CompanyID == companyID && t.DeletedAt == nil {
			list = append(list, t)
		}
	}
	return list, nil
}

func (s *stubTaskRepo) Update(_ context.Context, companyID, id int64, patch dom.Task) (dom.Task, error) {
	if _, ok := s.tasks[id]; !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.CompanyID = companyID
	s.tasks[id] = patch
	return patch, nil
}

func (s *stubTaskRepo) SetStatus(_ context.Context, companyID, id int64, status dom.TaskStatus) (dom.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.CompanyID != companyID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Status = status
	s.tasks[id] = t
	return t, nil
}

func (s *stubTaskRepo) SoftDelete(_ context.Context, companyID, id int64) error {
	t, ok := s.tasks[id]
	if !ok || t.CompanyID != companyID {
		return nil
	}
	now := time.Now()
	t.DeletedAt = &now
	s.tasks[id] = t
	return nil
}

type stubEntryRepo struct {
	byTask map[int64][]timeclock.Entry
}

func (s *stubEntryRepo) Insert(_ context.Context, taskID int64, e timeclock.Entry) error {
	s.byTask[taskID] = append(s.byTask[taskID], e)
	return nil
}

func (s *stubEntryRepo) ListByTask(_ context.Context, taskID int64) ([]timeclock.Entry, error) {
	return s.byTask[taskID], nil
}

func (s *stubEntryRepo) ListByCompany(_ context.Context, _ int64) ([]timeclock.Entry, error) {
	var all []timeclock.Entry
	for i := int64(1); i <= 64; i++ {
		all = append(all, s.byTask[i]...)
	}
	return all, nil
}

type stubUserRepo struct {
	users map[int64]dom.User
}

func (s *stubUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	u.ID = int64(len(s.users) + 1)
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := s.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (s *stubUserRepo) ListByCompany(_ context.Context, companyID int64) ([]dom.User, error) {
	var list []dom.User
	for _, u := range s.users {
		if u.CompanyID == companyID {
			list = append(list, u)
		}
	}
	return list, nil
}

func newTimesheetFixture() (*TimesheetService, *stubEntryRepo) {
	tasks := &stubTaskRepo{tasks: map[int64]dom.Task{
		1: {ID: 1, CompanyID: 10, Title: "Replace spray nozzles", Status: dom.StatusPending, EstimatedHours: 5},
		2: {ID: 2, CompanyID: 99, Title: "Other company's task", Status: dom.StatusPending},
	}}
	entries := &stubEntryRepo{byTask: map[int64][]timeclock.Entry{}}
	users := &stubUserRepo{users: map[int64]dom.User{
		7: {ID: 7, CompanyID: 10, Username: "anna", DisplayName: "Anna", Role: dom.RoleUser},
		8: {ID: 8, CompanyID: 10, Username: "bert", DisplayName: "Bert", Role: dom.RoleUser},
		9: {ID: 9, CompanyID: 99, Username: "eve", DisplayName: "Eve", Role: dom.RoleUser},
	}}
	return NewTimesheetService(tasks, entries, users, nil, 0.5), entries
}

func logInput(workerID *int64, name, start, end string, deductBreak bool) LogTimeInput {
	return LogTimeInput{
		WorkerID:    workerID,
		WorkerName:  name,
		Date:        time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		Start:       start,
		End:         end,
		DeductBreak: deductBreak,
		RecordedBy:  7,
	}
}

func ptr(v int64) *int64 { return &v }

func TestTimesheet_LogTimeComputesAndPersists(t *testing.T) {
	svc, entries := newTimesheetFixture()

	e, err := svc.LogTime(context.Background(), 10, 1, logInput(ptr(7), "", "08:00", "16:00", true))
	require.NoError(t, err)

	assert.Equal(t, 7.5, e.HoursSpent)
	assert.True(t, e.Worker.Registered())
	assert.Equal(t, "Anna", e.Worker.Name())
	require.Len(t, entries.byTask[1], 1)
	assert.Equal(t, e, entries.byTask[1][0])
}

func TestTimesheet_LogTimeRejectsBadClockString(t *testing.T) {
	svc, entries := newTimesheetFixture()

	_, err := svc.LogTime(context.Background(), 10, 1, logInput(ptr(7), "", "8:00am", "16:00", false))
	require.ErrorIs(t, err, timeclock.ErrInvalidFormat)
	assert.Empty(t, entries.byTask[1])
}

func TestTimesheet_LogTimeRejectsNamelessGuest(t *testing.T) {
	svc, entries := newTimesheetFixture()

	_, err := svc.LogTime(context.Background(), 10, 1, logInput(nil, "  ", "08:00", "16:00", false))
	require.ErrorIs(t, err, timeclock.ErrMissingWorkerIdentity)
	assert.Empty(t, entries.byTask[1])
}

func TestTimesheet_LogTimeRejectsForeignWorker(t *testing.T) {
	svc, _ := newTimesheetFixture()

	_, err := svc.LogTime(context.Background(), 10, 1, logInput(ptr(9), "", "08:00", "16:00", false))
	require.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestTimesheet_LogTimeRejectsForeignTask(t *testing.T) {
	svc, _ := newTimesheetFixture()

	_, err := svc.LogTime(context.Background(), 10, 2, logInput(ptr(7), "", "08:00", "16:00", false))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTimesheet_Totals(t *testing.T) {
	svc, _ := newTimesheetFixture()
	ctx := context.Background()

	_, err := svc.LogTime(ctx, 10, 1, logInput(ptr(7), "", "08:00", "16:00", false))
	require.NoError(t, err)
	_, err = svc.LogTime(ctx, 10, 1, logInput(ptr(8), "", "09:00", "12:00", false))
	require.NoError(t, err)
	_, err = svc.LogTime(ctx, 10, 1, logInput(nil, "John Doe", "10:00", "12:00", false))
	require.NoError(t, err)

	total, err := svc.TotalForTask(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 13.0, total)

	anna, err := svc.TotalForWorker(ctx, 10, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 8.0, anna)

	list, err := svc.EntriesForTask(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Anna", list[0].Worker.Name())
	assert.Equal(t, "John Doe", list[2].Worker.Name())
}
