package timeclock

// StatusPending is the task status counted as outstanding work. Task status
// itself is owned by the surrounding domain; the aggregator only reads it.
const StatusPending = "pending"

// TaskFacts is the slice of a task the aggregator needs.
type TaskFacts struct {
	ID             string
	EstimatedHours float64
	Status         string
}

// Stats summarizes estimated vs. actual hours across tasks.
type Stats struct {
	PendingCount        int
	TotalEstimatedHours float64
	TotalActualHours    float64
}

// Overview combines task estimates with the ledger's actual hours.
//
// Estimated hours are summed over pending tasks only ("how much work is
// left"), while actual hours are summed over every task passed in, whatever
// its status ("how much work was logged"). The asymmetry is intentional.
func Overview(tasks []TaskFacts, ledger *Ledger) Stats {
	var s Stats
	for _, t := range tasks {
		if t.Status == StatusPending {
			s.PendingCount++
			s.TotalEstimatedHours += t.EstimatedHours
		}
		s.TotalActualHours += ledger.TotalHoursForTask(t.ID)
	}
	return s
}
