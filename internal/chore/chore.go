// Package chore defines the chore and interval records and the inputs
// that drive them.
package chore

import (
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

// Chore is a recurring task with its derived forecast state.
type Chore struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Created         time.Time  `json:"created"`
	FirstCompletion *time.Time `json:"first_completion,omitempty"`
	LastCompletion  *time.Time `json:"last_completion,omitempty"`
	MeanInterval    int64      `json:"mean_interval"`
	MadLess         int64      `json:"mad_less"`
	MadMore         int64      `json:"mad_more"`
	NextDue         *time.Time `json:"next_due,omitempty"`
	NumIntervals    int        `json:"num_intervals"`
}

// Interval is one recorded gap between two successive "needed" times.
type Interval struct {
	ID       int64 `json:"id"`
	ChoreID  int64 `json:"chore_id"`
	Duration int64 `json:"duration"`
}

// Completed reports whether the chore has been completed at least once.
func (c *Chore) Completed() bool { return c.LastCompletion != nil }

// Forecast returns the chore's derived state as stored.
func (c *Chore) Forecast() forecast.Forecast {
	return forecast.Forecast{
		MeanInterval: c.MeanInterval,
		MadLess:      c.MadLess,
		MadMore:      c.MadMore,
		NextDue:      ToUnix(c.NextDue),
	}
}

// Bucket classifies now against the chore's forecast.
func (c *Chore) Bucket(now time.Time) forecast.Bucket {
	return c.Forecast().Bucket(now.Unix(), c.Completed())
}

// FromUnix converts stored seconds into an optional time; 0 is unset.
func FromUnix(sec int64) *time.Time {
	if sec == forecast.Unset {
		return nil
	}
	t := time.Unix(sec, 0)
	return &t
}

// ToUnix converts an optional time into stored seconds; nil is 0.
func ToUnix(t *time.Time) int64 {
	if t == nil {
		return forecast.Unset
	}
	return t.Unix()
}
