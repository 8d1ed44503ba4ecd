package repo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryRepo persists timeclock ledger entries. The ledger itself is pure and
// in-memory; services rehydrate one from here, insert, and hand the new entry
// back for durable storage. Entries are append-only at this layer too.
type EntryRepo interface {
	Insert(ctx context.Context, taskID int64, e timeclock.Entry) error
	ListByTask(ctx context.Context, taskID int64) ([]timeclock.Entry, error)
	ListByCompany(ctx context.Context, companyID int64) ([]timeclock.Entry, error)
}

// PGEntryRepo implements EntryRepo with Postgres.
type PGEntryRepo struct {
	db *pgxpool.Pool
}

// NewPGEntryRepo returns a new PGEntryRepo.
func NewPGEntryRepo(db *pgxpool.Pool) *PGEntryRepo {
	return &PGEntryRepo{db: db}
}

func (r *PGEntryRepo) Insert(ctx context.Context, taskID int64, e timeclock.Entry) error {
	var workerID *int64
	if id, ok := e.Worker.ID(); ok {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return fmt.Errorf("worker id %q is not numeric: %w", id, err)
		}
		workerID = &n
	}
	recordedBy, err := strconv.ParseInt(e.RecordedBy, 10, 64)
	if err != nil {
		return fmt.Errorf("recorded_by %q is not numeric: %w", e.RecordedBy, err)
	}
	// hours_spent is stored exactly as the ledger computed it and never
	// recomputed from start/end on read.
	_, err = r.db.Exec(ctx, `
		INSERT INTO time_entries
			(id, task_id, worker_id, worker_name, work_date, start_at, end_at,
			 break_deducted, hours_spent, recorded_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, taskID, workerID, e.Worker.Name(), e.Date,
		e.Start.String(), e.End.String(),
		e.BreakDeducted, e.HoursSpent, recordedBy, e.RecordedAt)
	return err
}

const entryColumns = `e.id, e.task_id, e.worker_id, e.worker_name, e.work_date,
	e.start_at, e.end_at, e.break_deducted, e.hours_spent, e.recorded_by, e.recorded_at`

func (r *PGEntryRepo) ListByTask(ctx context.Context, taskID int64) ([]timeclock.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM time_entries e
		WHERE e.task_id = $1
		ORDER BY e.recorded_at, e.id`,
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PGEntryRepo) ListByCompany(ctx context.Context, companyID int64) ([]timeclock.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM time_entries e
		JOIN tasks t ON t.id = e.task_id
		WHERE t.company_id = $1
		ORDER BY e.recorded_at, e.id`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgRows) ([]timeclock.Entry, error) {
	var list []timeclock.Entry
	for rows.Next() {
		var (
			e          timeclock.Entry
			taskID     int64
			workerID   *int64
			workerName string
			startStr   string
			endStr     string
			recordedBy int64
		)
		if err := rows.Scan(&e.ID, &taskID, &workerID, &workerName, &e.Date,
			&startStr, &endStr, &e.BreakDeducted, &e.HoursSpent,
			&recordedBy, &e.RecordedAt); err != nil {
			return nil, err
		}
		start, err := timeclock.ParseTimeOfDay(startStr)
		if err != nil {
			return nil, fmt.Errorf("entry %s start: %w", e.ID, err)
		}
		end, err := timeclock.ParseTimeOfDay(endStr)
		if err != nil {
			return nil, fmt.Errorf("entry %s end: %w", e.ID, err)
		}
		e.TaskID = strconv.FormatInt(taskID, 10)
		e.Start = start
		e.End = end
		e.RecordedBy = strconv.FormatInt(recordedBy, 10)
		if workerID != nil {
			e.Worker = timeclock.RegisteredWorker(strconv.FormatInt(*workerID, 10), workerName)
		} else {
			e.Worker = timeclock.GuestWorker(workerName)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
