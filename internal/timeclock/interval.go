package timeclock

const (
	// DefaultBreakHours is the fixed break deduction applied when an entry is
	// logged with the break flag and no other break duration is configured.
	DefaultBreakHours = 0.5

	minutesPerDay = 24 * 60
)

// ComputeHours returns the elapsed hours between start and end. An end before
// start is treated as a shift spanning midnight, so the duration is always
// same-or-next-day and never negative. When deductBreak is set, breakHours is
// subtracted. The result is clamped to zero and returned unrounded; display
// rounding is the caller's concern.
//
// start == end without a break deduction yields 0, not 24.
func ComputeHours(start, end TimeOfDay, deductBreak bool, breakHours float64) float64 {
	raw := end.MinuteOfDay() - start.MinuteOfDay()
	if raw < 0 {
		raw += minutesPerDay
	}
	hours := float64(raw) / 60.0
	if deductBreak {
		hours -= breakHours
	}
	if hours < 0 {
		return 0
	}
	return hours
}
