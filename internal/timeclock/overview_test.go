package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview(t *testing.T) {
	l := testLedger(t)
	_, err := l.Insert(insertion(t, "T1", RegisteredWorker("U1", "Anna"), "08:00", "15:00", false))
	require.NoError(t, err)
	_, err = l.Insert(insertion(t, "T2", RegisteredWorker("U2", "Bert"), "08:00", "10:00", false))
	require.NoError(t, err)

	tasks := []TaskFacts{
		{ID: "T1", EstimatedHours: 5, Status: "pending"},
		{ID: "T2", EstimatedHours: 3, Status: "completed"},
	}
	s := Overview(tasks, l)

	assert.Equal(t, 1, s.PendingCount)
	// Only pending tasks count toward the outstanding estimate...
	assert.Equal(t, 5.0, s.TotalEstimatedHours)
	// ...but logged hours count regardless of status.
	assert.Equal(t, 9.0, s.TotalActualHours)
}

func TestOverview_Empty(t *testing.T) {
	s := Overview(nil, NewLedger(DefaultBreakHours))
	assert.Zero(t, s.PendingCount)
	assert.Zero(t, s.TotalEstimatedHours)
	assert.Zero(t, s.TotalActualHours)
}

func TestOverview_TasksWithoutEntries(t *testing.T) {
	l := NewLedger(DefaultBreakHours)
	tasks := []TaskFacts{
		{ID: "T1", EstimatedHours: 4, Status: "pending"},
		{ID: "T2", EstimatedHours: 2, Status: "in_progress"},
		{ID: "T3", EstimatedHours: 1, Status: "pending"},
	}
	s := Overview(tasks, l)

	assert.Equal(t, 2, s.PendingCount)
	assert.Equal(t, 5.0, s.TotalEstimatedHours)
	assert.Zero(t, s.TotalActualHours)
}
