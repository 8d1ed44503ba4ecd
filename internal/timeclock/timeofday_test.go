package timeclock

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "00:00"},
		{"08:00", "08:00"},
		{"8:0", "08:00"},
		{"9:30", "09:30"},
		{"23:59", "23:59"},
		{"12:05", "12:05"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tod, err := ParseTimeOfDay(tt.in)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) error: %v", tt.in, err)
			}
			if got := tod.String(); got != tt.want {
				t.Errorf("ParseTimeOfDay(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimeOfDay_RoundTripCanonical(t *testing.T) {
	// Every canonical HH:MM string must survive parse+format unchanged.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			in := TimeOfDay{minutes: h*60 + m}.String()
			tod, err := ParseTimeOfDay(in)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) error: %v", in, err)
			}
			if got := tod.String(); got != in {
				t.Errorf("round trip %q -> %q", in, got)
			}
		}
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"25:00",
		"24:00",
		"08:60",
		"8:00am",
		"08-00",
		"08:",
		":30",
		"-8:00",
		"08:000",
		"008:00",
		"8 :00",
		"08: 0",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeOfDay(in)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseTimeOfDay(%q) = %v, want ErrInvalidFormat", in, err)
			}
		})
	}
}

func TestTimeOfDay_Accessors(t *testing.T) {
	tod, err := ParseTimeOfDay("14:45")
	if err != nil {
		t.Fatal(err)
	}
	if tod.Hour() != 14 || tod.Minute() != 45 || tod.MinuteOfDay() != 14*60+45 {
		t.Errorf("accessors: got %d:%d (%d)", tod.Hour(), tod.Minute(), tod.MinuteOfDay())
	}
}
