package service

import (
	"context"
	"testing"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskFixture() (*TaskService, *stubTaskRepo, *stubEntryRepo) {
	tasks := &stubTaskRepo{tasks: map[int64]dom.Task{
		1: {ID: 1, CompanyID: 10, Title: "Recalibrate line guide", Status: dom.StatusPending, EstimatedHours: 5},
		2: {ID: 2, CompanyID: 10, Title: "Replace paint pump", Status: dom.StatusCompleted, EstimatedHours: 3},
	}}
	entries := &stubEntryRepo{byTask: map[int64][]timeclock.Entry{}}
	return NewTaskService(tasks, entries, nil, 0.5), tasks, entries
}

// storedEntry mimics a row rehydrated from Postgres: hours already computed
// and denormalized at insert time.
func storedEntry(t *testing.T, taskID string, hours float64) timeclock.Entry {
	t.Helper()
	start, err := timeclock.ParseTimeOfDay("08:00")
	require.NoError(t, err)
	return timeclock.Entry{
		ID:         "stored-" + taskID,
		TaskID:     taskID,
		Worker:     timeclock.RegisteredWorker("7", "Anna"),
		Start:      start,
		End:        start,
		HoursSpent: hours,
		RecordedBy: "7",
	}
}

func TestTaskService_OverviewAsymmetry(t *testing.T) {
	svc, _, entries := newTaskFixture()

	// 7 hours on the pending task, 2 on the completed one.
	entries.byTask[1] = []timeclock.Entry{storedEntry(t, "1", 7)}
	entries.byTask[2] = []timeclock.Entry{storedEntry(t, "2", 2)}

	stats, err := svc.Overview(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 5.0, stats.TotalEstimatedHours, "completed tasks must not add to the outstanding estimate")
	assert.Equal(t, 9.0, stats.TotalActualHours, "logged hours count regardless of task status")
}

func TestTaskService_CreateValidates(t *testing.T) {
	svc, _, _ := newTaskFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, 10, 7, "   ", "", "", 1)
	require.ErrorIs(t, err, ErrTitleEmpty)

	_, err = svc.Create(ctx, 10, 7, "Grease bearings", "", "", -1)
	require.ErrorIs(t, err, ErrInvalidEstimate)

	task, err := svc.Create(ctx, 10, 7, "  Grease bearings  ", "weekly", "LineLazer 3400", 2)
	require.NoError(t, err)
	assert.Equal(t, "Grease bearings", task.Title)
	assert.Equal(t, dom.StatusPending, task.Status)
}

func TestTaskService_SetStatusValidates(t *testing.T) {
	svc, _, _ := newTaskFixture()
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, 10, 1, "archived")
	require.ErrorIs(t, err, ErrUnknownStatus)

	task, err := svc.SetStatus(ctx, 10, 1, dom.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, dom.StatusInProgress, task.Status)
}

func TestTaskService_GetByIDScopedToCompany(t *testing.T) {
	svc, _, _ := newTaskFixture()

	_, err := svc.GetByID(context.Background(), 99, 1)
	require.ErrorIs(t, err, ErrNotFound)
}
