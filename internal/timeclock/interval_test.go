package timeclock

import "testing"

func mustParse(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		deductBreak bool
		breakHours  float64
		want        float64
	}{
		{"full day shift", "08:00", "16:00", false, 0.5, 8.0},
		{"full day shift with break", "08:00", "16:00", true, 0.5, 7.5},
		{"overnight wrap", "22:00", "06:00", false, 0.5, 8.0},
		{"overnight wrap with break", "22:00", "06:00", true, 0.5, 7.5},
		{"zero length is zero not a day", "09:00", "09:00", false, 0.5, 0.0},
		{"break clamps to zero", "09:00", "09:00", true, 0.5, 0.0},
		{"break longer than shift clamps", "09:00", "09:15", true, 0.5, 0.0},
		{"custom break duration", "08:00", "16:00", true, 1.0, 7.0},
		{"break flag ignores break hours when unset", "08:00", "16:00", false, 99, 8.0},
		{"fractional result", "08:00", "08:20", false, 0.5, 1.0 / 3.0},
		{"one minute before midnight", "00:00", "23:59", false, 0.5, 1439.0 / 60.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(mustParse(t, tt.start), mustParse(t, tt.end), tt.deductBreak, tt.breakHours)
			if got != tt.want {
				t.Errorf("ComputeHours(%s, %s, %v, %v) = %v, want %v",
					tt.start, tt.end, tt.deductBreak, tt.breakHours, got, tt.want)
			}
		})
	}
}
