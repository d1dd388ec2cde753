package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, loc)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", now},
		{"now", now},
		{"Today", time.Date(2025, 3, 14, 0, 0, 0, 0, loc)},
		{"yesterday", time.Date(2025, 3, 13, 0, 0, 0, 0, loc)},
		{"2025-01-02", time.Date(2025, 1, 2, 0, 0, 0, 0, loc)},
		{"2025-01-02 08:30", time.Date(2025, 1, 2, 8, 30, 0, 0, loc)},
		{"2025-01-02T08:30:15", time.Date(2025, 1, 2, 8, 30, 15, 0, loc)},
		{"2025-01-02t08:30", time.Date(2025, 1, 2, 8, 30, 0, 0, loc)},
		{"2025-01-02T08:30:00Z", time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)},
		{"07:45", time.Date(2025, 3, 14, 7, 45, 0, 0, loc)},
		{"-1d", now.Add(-24 * time.Hour)},
		{"-2d3h", now.Add(-51 * time.Hour)},
		{"+90m", now.Add(90 * time.Minute)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, now)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"soon", "2025-13-01", "25:99", "-x", "2025/01/02"} {
		if _, err := Parse(in, now); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 59, 59, 999, time.UTC)
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestFormatZero(t *testing.T) {
	if Short(time.Time{}) != "" || Long(time.Time{}) != "" {
		t.Errorf("zero time should format as empty")
	}
}
