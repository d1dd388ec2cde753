// Package date parses the datetimes typed for completions and formats
// timestamps for display.
package date

import (
	"fmt"
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/duration"
)

// Display layouts.
const (
	ShortFormat = "06-01-02"
	LongFormat  = "2006-01-02 15:04"
)

// absolute layouts accepted by Parse, tried in order.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// StartOfDay returns midnight at the start of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Parse interprets s relative to now. Accepted forms:
//
//	now, today, yesterday
//	YYYY-MM-DD, YYYY-MM-DD HH:MM[:SS], YYYY-MM-DDTHH:MM[:SS], RFC3339
//	HH:MM                      (on now's day)
//	-2d3h, +1h                 (offset from now)
//
// Dates without a zone are read in now's location.
func Parse(s string, now time.Time) (time.Time, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "", "now":
		return now, nil
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	}

	if in[0] == '-' || in[0] == '+' {
		offset, err := duration.Parse(in)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid offset %q: expected e.g. -2d3h", s)
		}
		return now.Add(time.Duration(offset) * time.Second), nil
	}

	if t, err := time.Parse(time.RFC3339, strings.ToUpper(in)); err == nil {
		return t, nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, strings.ToUpper(in), now.Location()); err == nil {
			return t, nil
		}
	}
	if clock, err := time.ParseInLocation("15:04", in, now.Location()); err == nil {
		day := StartOfDay(now)
		return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), nil
	}

	return time.Time{}, fmt.Errorf("invalid datetime %q: expected YYYY-MM-DD [HH:MM], HH:MM, now, today, yesterday, or an offset like -1d", s)
}

// Short formats t as YY-MM-DD, or "" for the zero time.
func Short(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(ShortFormat)
}

// Long formats t as YYYY-MM-DD HH:MM, or "" for the zero time.
func Long(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(LongFormat)
}
