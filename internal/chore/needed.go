package chore

import (
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/date"
)

// NeededKind selects how a completion records its interval.
type NeededKind int

const (
	// NeededDefault uses the completion time as the needed time.
	NeededDefault NeededKind = iota
	// NeededNone records no interval; only the last completion moves.
	NeededNone
	// NeededAt uses an explicit needed time.
	NeededAt
)

// Needed is the "when was this actually needed" answer of a completion.
type Needed struct {
	Kind NeededKind
	At   time.Time
}

// DefaultNeeded returns the accept-the-default answer.
func DefaultNeeded() Needed { return Needed{Kind: NeededDefault} }

// NoNeeded returns the skip-this-interval answer.
func NoNeeded() Needed { return Needed{Kind: NeededNone} }

// NeededOn returns an explicit needed time.
func NeededOn(t time.Time) Needed { return Needed{Kind: NeededAt, At: t} }

// Resolve returns the needed time for a completion at completedAt, and
// false when no interval should be recorded.
func (n Needed) Resolve(completedAt time.Time) (time.Time, bool) {
	switch n.Kind {
	case NeededNone:
		return time.Time{}, false
	case NeededAt:
		return n.At, true
	default:
		return completedAt, true
	}
}

// String returns the form ParseNeeded accepts.
func (n Needed) String() string {
	switch n.Kind {
	case NeededNone:
		return "none"
	case NeededAt:
		return date.Long(n.At)
	default:
		return ""
	}
}

// ParseNeeded reads a needed answer: empty means default, "none" skips the
// interval, anything else is a datetime parsed relative to now.
func ParseNeeded(s string, now time.Time) (Needed, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case "":
		return DefaultNeeded(), nil
	case "none":
		return NoNeeded(), nil
	}
	t, err := date.Parse(in, now)
	if err != nil {
		return Needed{}, ValidateDate("needed", s, err)
	}
	return NeededOn(t), nil
}
