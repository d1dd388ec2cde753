// Package directory orchestrates chores: it applies edits through the
// store, recomputes forecasts from the stored history, and builds the
// tagged listings the presentation layers render.
package directory

import (
	"fmt"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
	"github.com/twiced-technology-gmbh/choremate/internal/store"
)

// Options configures a Directory.
type Options struct {
	// LogPath is the activity log file; empty disables logging.
	LogPath string
	// DayResolution classifies urgency against the start of the local day.
	DayResolution bool
	// Now overrides the clock.
	Now func() time.Time
}

// Directory applies chore edits and builds listings.
type Directory struct {
	store         store.Store
	logPath       string
	dayResolution bool
	now           func() time.Time
}

// New creates a Directory over s.
func New(s store.Store, opts Options) *Directory {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Directory{
		store:         s,
		logPath:       opts.LogPath,
		dayResolution: opts.DayResolution,
		now:           now,
	}
}

// Now returns the current time.
func (d *Directory) Now() time.Time { return d.now() }

// AddChore creates a chore named name and returns its id.
func (d *Directory) AddChore(name string, created time.Time) (int64, error) {
	name = chore.NormalizeName(name)
	if err := chore.ValidateName(name); err != nil {
		return 0, err
	}
	id, err := d.store.CreateChore(name, created)
	if err != nil {
		return 0, err
	}
	d.logMutation(ActionAdd, id, name)
	return id, nil
}

// RecordCompletion records that chore id was completed at completedAt.
//
// The first completion only sets the first and last completion times. Later
// completions append needed - last_completion as an interval unless needed
// is NoNeeded, then recompute the forecast from completedAt. The last
// completion always advances to completedAt.
func (d *Directory) RecordCompletion(id int64, completedAt time.Time, needed chore.Needed) error {
	c, err := d.store.GetChore(id)
	if err != nil {
		return err
	}

	detail := "first completion"
	if c.LastCompletion != nil {
		if at, ok := needed.Resolve(completedAt); ok {
			iv := at.Unix() - c.LastCompletion.Unix()
			if _, err := d.store.AppendInterval(id, iv); err != nil {
				return fmt.Errorf("recording interval: %w", err)
			}
			detail = "interval " + duration.Format(iv)
		} else {
			detail = "no interval"
		}
		if err := d.recompute(id, completedAt.Unix()); err != nil {
			return err
		}
	} else if err := d.store.SetFirstCompletion(id, completedAt); err != nil {
		return err
	}

	if err := d.store.SetLastCompletion(id, completedAt); err != nil {
		return err
	}
	d.logMutation(ActionComplete, id, detail)
	return nil
}

// RemoveChore deletes a chore and its history.
func (d *Directory) RemoveChore(id int64) error {
	c, err := d.store.GetChore(id)
	if err != nil {
		return err
	}
	if err := d.store.DeleteChore(id); err != nil {
		return err
	}
	d.logMutation(ActionRemove, id, c.Name)
	return nil
}

// RenameChore changes a chore's name.
func (d *Directory) RenameChore(id int64, name string) error {
	name = chore.NormalizeName(name)
	if err := chore.ValidateName(name); err != nil {
		return err
	}
	c, err := d.store.GetChore(id)
	if err != nil {
		return err
	}
	if c.Name == name {
		return nil
	}
	if err := d.store.RenameChore(id, name); err != nil {
		return err
	}
	d.logMutation(ActionRename, id, c.Name+" -> "+name)
	return nil
}

// GetChore returns one chore.
func (d *Directory) GetChore(id int64) (*chore.Chore, error) {
	return d.store.GetChore(id)
}

// GetInterval returns one interval.
func (d *Directory) GetInterval(id int64) (*chore.Interval, error) {
	return d.store.GetInterval(id)
}

// UpdateInterval replaces an interval's duration and recomputes its chore.
func (d *Directory) UpdateInterval(intervalID, seconds int64) error {
	iv, err := d.store.GetInterval(intervalID)
	if err != nil {
		return err
	}
	if err := d.store.UpdateIntervalDuration(intervalID, seconds); err != nil {
		return err
	}
	if err := d.refresh(iv.ChoreID); err != nil {
		return err
	}
	d.logMutation(ActionIntervalUpdate, iv.ChoreID,
		fmt.Sprintf("#%d %s -> %s", intervalID, duration.Format(iv.Duration), duration.Format(seconds)))
	return nil
}

// RemoveInterval deletes an interval and recomputes its chore. The last
// completion does not move.
func (d *Directory) RemoveInterval(intervalID int64) error {
	iv, err := d.store.GetInterval(intervalID)
	if err != nil {
		return err
	}
	if err := d.store.DeleteInterval(intervalID); err != nil {
		return err
	}
	if err := d.refresh(iv.ChoreID); err != nil {
		return err
	}
	d.logMutation(ActionIntervalRemove, iv.ChoreID,
		fmt.Sprintf("#%d %s", intervalID, duration.Format(iv.Duration)))
	return nil
}

// refresh recomputes a chore's forecast from its last completion.
func (d *Directory) refresh(id int64) error {
	c, err := d.store.GetChore(id)
	if err != nil {
		return err
	}
	return d.recompute(id, chore.ToUnix(c.LastCompletion))
}

func (d *Directory) recompute(id, completionTime int64) error {
	ivs, err := d.store.ListIntervals(id)
	if err != nil {
		return err
	}
	durations := make([]int64, len(ivs))
	for i, iv := range ivs {
		durations[i] = iv.Duration
	}
	f := forecast.Recompute(durations, completionTime)
	if err := d.store.SetDerivedFields(id, f); err != nil {
		return fmt.Errorf("storing forecast: %w", err)
	}
	return nil
}

// Reset removes every chore.
func (d *Directory) Reset() error {
	return d.store.Reset()
}

// classifyAt returns the moment urgency is classified against.
func (d *Directory) classifyAt(now time.Time) time.Time {
	if d.dayResolution {
		return date.StartOfDay(now)
	}
	return now
}
