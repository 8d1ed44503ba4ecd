package timeclock

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger(t *testing.T) *Ledger {
	t.Helper()
	n := 0
	return NewLedger(DefaultBreakHours,
		WithClock(func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("entry-%d", n) }),
	)
}

func insertion(t *testing.T, taskID string, w Worker, start, end string, deductBreak bool) Insertion {
	t.Helper()
	return Insertion{
		TaskID:      taskID,
		Worker:      w,
		Date:        time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		Start:       mustParse(t, start),
		End:         mustParse(t, end),
		DeductBreak: deductBreak,
		RecordedBy:  "U1",
	}
}

func TestLedger_InsertComputesAndStamps(t *testing.T) {
	l := testLedger(t)

	e, err := l.Insert(insertion(t, "T1", RegisteredWorker("U1", "Anna"), "08:00", "16:30", true))
	require.NoError(t, err)

	assert.Equal(t, "entry-1", e.ID)
	assert.Equal(t, "T1", e.TaskID)
	assert.Equal(t, 8.0, e.HoursSpent)
	assert.True(t, e.BreakDeducted)
	assert.Equal(t, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), e.RecordedAt)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_TaskAndWorkerTotals(t *testing.T) {
	l := testLedger(t)

	_, err := l.Insert(insertion(t, "T1", RegisteredWorker("U1", "Anna"), "08:00", "16:00", false))
	require.NoError(t, err)
	_, err = l.Insert(insertion(t, "T1", RegisteredWorker("U2", "Bert"), "09:00", "12:00", false))
	require.NoError(t, err)
	_, err = l.Insert(insertion(t, "T1", GuestWorker("John Doe"), "10:00", "12:00", false))
	require.NoError(t, err)

	assert.Equal(t, 13.0, l.TotalHoursForTask("T1"))
	assert.Equal(t, 8.0, l.TotalHoursForWorker("T1", "U1"))
	assert.Equal(t, 3.0, l.TotalHoursForWorker("T1", "U2"))
	assert.Zero(t, l.TotalHoursForTask("T2"))
	assert.Zero(t, l.TotalHoursForWorker("T1", "U3"))
}

func TestLedger_GuestEntriesNeverAggregatePerWorker(t *testing.T) {
	l := testLedger(t)

	// Two guests sharing a name still have no stable identity.
	_, err := l.Insert(insertion(t, "T1", GuestWorker("John Doe"), "08:00", "10:00", false))
	require.NoError(t, err)
	_, err = l.Insert(insertion(t, "T1", GuestWorker("John Doe"), "10:00", "12:00", false))
	require.NoError(t, err)

	assert.Equal(t, 4.0, l.TotalHoursForTask("T1"))
	assert.Zero(t, l.TotalHoursForWorker("T1", ""))
	assert.Zero(t, l.TotalHoursForWorker("T1", "John Doe"))
}

func TestLedger_MissingWorkerIdentity(t *testing.T) {
	l := testLedger(t)

	_, err := l.Insert(insertion(t, "T1", GuestWorker(""), "08:00", "16:00", false))
	require.ErrorIs(t, err, ErrMissingWorkerIdentity)

	_, err = l.Insert(insertion(t, "T1", GuestWorker("   "), "08:00", "16:00", false))
	require.ErrorIs(t, err, ErrMissingWorkerIdentity)

	assert.Zero(t, l.Len(), "failed insert must leave the ledger unchanged")
}

func TestLedger_EntriesForTaskInsertionOrder(t *testing.T) {
	l := testLedger(t)

	for i, span := range [][2]string{{"08:00", "09:00"}, {"09:00", "10:00"}, {"10:00", "11:00"}} {
		w := RegisteredWorker(fmt.Sprintf("U%d", i+1), "Worker")
		_, err := l.Insert(insertion(t, "T1", w, span[0], span[1], false))
		require.NoError(t, err)
	}
	_, err := l.Insert(insertion(t, "T2", RegisteredWorker("U9", "Other"), "08:00", "09:00", false))
	require.NoError(t, err)

	entries := l.EntriesForTask("T1")
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("entry-%d", i+1), e.ID)
		assert.Equal(t, "T1", e.TaskID)
	}

	// Returned slice is a copy; mutating it must not corrupt the ledger.
	entries[0].HoursSpent = 999
	assert.Equal(t, 3.0, l.TotalHoursForTask("T1"))
}

func TestLedger_RehydrateKeepsStoredHours(t *testing.T) {
	l := testLedger(t)
	_, err := l.Insert(insertion(t, "T1", RegisteredWorker("U1", "Anna"), "08:00", "16:00", true))
	require.NoError(t, err)
	persisted := l.EntriesForTask("T1")

	// Rehydrate into a ledger configured with a different break duration: the
	// stored HoursSpent must survive untouched.
	fresh := NewLedger(2.0)
	fresh.Rehydrate(persisted)

	got := fresh.EntriesForTask("T1")
	require.Len(t, got, 1)
	assert.Equal(t, persisted[0], got[0])
	assert.Equal(t, 7.5, fresh.TotalHoursForTask("T1"))
}
