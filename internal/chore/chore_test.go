package chore

import (
	"strings"
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

func TestNeededResolve(t *testing.T) {
	completed := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	explicit := completed.Add(-19 * time.Hour)

	if at, ok := DefaultNeeded().Resolve(completed); !ok || !at.Equal(completed) {
		t.Errorf("default: got %v, %v", at, ok)
	}
	if _, ok := NoNeeded().Resolve(completed); ok {
		t.Errorf("none must not record an interval")
	}
	if at, ok := NeededOn(explicit).Resolve(completed); !ok || !at.Equal(explicit) {
		t.Errorf("explicit: got %v, %v", at, ok)
	}
}

func TestParseNeeded(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		kind NeededKind
	}{
		{"", NeededDefault},
		{"  ", NeededDefault},
		{"none", NeededNone},
		{"NONE", NeededNone},
		{"yesterday", NeededAt},
		{"2025-04-30 15:00", NeededAt},
	}
	for _, tt := range tests {
		got, err := ParseNeeded(tt.in, now)
		if err != nil {
			t.Errorf("ParseNeeded(%q): %v", tt.in, err)
			continue
		}
		if got.Kind != tt.kind {
			t.Errorf("ParseNeeded(%q) kind = %d, want %d", tt.in, got.Kind, tt.kind)
		}
	}

	_, err := ParseNeeded("whenever", now)
	if !clierr.HasCode(err, clierr.InvalidDate) {
		t.Errorf("ParseNeeded(whenever) = %v, want %s", err, clierr.InvalidDate)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(NormalizeName("  fill bird feeders ")); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	bad := []string{"", "two\nlines", strings.Repeat("x", MaxNameLength+1)}
	for _, name := range bad {
		if err := ValidateName(name); !clierr.HasCode(err, clierr.InvalidName) {
			t.Errorf("ValidateName(%q) = %v, want %s", name, err, clierr.InvalidName)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"#12", 12, true},
		{"7", 7, true},
		{"#0", 0, false},
		{"ab", 0, false},
		{"#-3", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChoreBucket(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	c := &Chore{ID: 1, Name: "water plants"}
	if got := c.Bucket(now); got != forecast.BucketInactive {
		t.Errorf("fresh chore bucket = %v, want inactive", got)
	}

	c.LastCompletion = FromUnix(now.Unix() - 100)
	if got := c.Bucket(now); got != forecast.BucketNew {
		t.Errorf("once-completed chore bucket = %v, want new", got)
	}

	c.NextDue = FromUnix(now.Unix() + 1000)
	if got := c.Bucket(now); got != forecast.BucketEarly {
		t.Errorf("forecast chore bucket = %v, want early", got)
	}
}

func TestUnixConversion(t *testing.T) {
	if FromUnix(0) != nil {
		t.Errorf("FromUnix(0) should be unset")
	}
	if ToUnix(nil) != 0 {
		t.Errorf("ToUnix(nil) should be 0")
	}
	if got := ToUnix(FromUnix(1234)); got != 1234 {
		t.Errorf("round trip = %d, want 1234", got)
	}
}
