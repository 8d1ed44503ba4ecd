package timeclock

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one worker's logged interval against one task. Entries are created
// by Ledger.Insert and immutable afterwards; corrections are made by inserting
// compensating entries or by the persistence layer, never by mutation here.
type Entry struct {
	ID            string
	TaskID        string
	Worker        Worker
	Date          time.Time // calendar date of the work, midnight UTC
	Start         TimeOfDay
	End           TimeOfDay
	BreakDeducted bool
	// HoursSpent is computed once at insert time and stored, so historical
	// entries stay stable if the configured break duration changes later.
	HoursSpent float64
	RecordedBy string
	RecordedAt time.Time
}

// Insertion is the input to Ledger.Insert.
type Insertion struct {
	TaskID      string
	Worker      Worker
	Date        time.Time
	Start       TimeOfDay
	End         TimeOfDay
	DeductBreak bool
	RecordedBy  string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the RecordedAt clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides entry ID generation. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// Ledger is an append-only collection of time entries keyed by task. It is a
// pure in-memory structure: callers rehydrate it from durable storage, insert,
// and persist the returned entry themselves. Insert must be serialized per
// instance by the caller; the query methods are safe once writes stop.
type Ledger struct {
	breakHours float64
	now        func() time.Time
	newID      func() string
	entries    []Entry
	byTask     map[string][]int
}

// NewLedger returns an empty ledger. breakHours is the fixed deduction applied
// to entries inserted with the break flag; pass DefaultBreakHours unless the
// integrating system configures its own.
func NewLedger(breakHours float64, opts ...Option) *Ledger {
	l := &Ledger{
		breakHours: breakHours,
		now:        time.Now,
		newID:      uuid.NewString,
		byTask:     make(map[string][]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rehydrate appends previously persisted entries as-is, keeping their stored
// IDs, timestamps and HoursSpent. Hours are deliberately not recomputed.
func (l *Ledger) Rehydrate(entries []Entry) {
	for _, e := range entries {
		l.append(e)
	}
}

// Insert validates the insertion, computes the elapsed hours with the ledger's
// configured break duration, stamps a fresh ID and RecordedAt, and appends the
// entry. A failed insert leaves the ledger unchanged.
func (l *Ledger) Insert(in Insertion) (Entry, error) {
	if !in.Worker.Registered() && strings.TrimSpace(in.Worker.Name()) == "" {
		return Entry{}, ErrMissingWorkerIdentity
	}
	e := Entry{
		ID:            l.newID(),
		TaskID:        in.TaskID,
		Worker:        in.Worker,
		Date:          in.Date,
		Start:         in.Start,
		End:           in.End,
		BreakDeducted: in.DeductBreak,
		HoursSpent:    ComputeHours(in.Start, in.End, in.DeductBreak, l.breakHours),
		RecordedBy:    in.RecordedBy,
		RecordedAt:    l.now(),
	}
	l.append(e)
	return e, nil
}

func (l *Ledger) append(e Entry) {
	l.entries = append(l.entries, e)
	l.byTask[e.TaskID] = append(l.byTask[e.TaskID], len(l.entries)-1)
}

// EntriesForTask returns the task's entries in insertion order. The slice is a
// copy and safe to keep.
func (l *Ledger) EntriesForTask(taskID string) []Entry {
	idx := l.byTask[taskID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = l.entries[j]
	}
	return out
}

// TotalHoursForTask sums HoursSpent over the task's entries; 0 if none.
func (l *Ledger) TotalHoursForTask(taskID string) float64 {
	var total float64
	for _, j := range l.byTask[taskID] {
		total += l.entries[j].HoursSpent
	}
	return total
}

// TotalHoursForWorker sums HoursSpent over the task's entries attributed to
// the given registered worker. Guest entries have no stable identity and are
// never counted here, even when guest names collide.
func (l *Ledger) TotalHoursForWorker(taskID, workerID string) float64 {
	var total float64
	for _, j := range l.byTask[taskID] {
		if id, ok := l.entries[j].Worker.ID(); ok && id == workerID {
			total += l.entries[j].HoursSpent
		}
	}
	return total
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }
