// Package store persists chores and their interval history.
//
// The store holds no forecasting logic: derived fields are written only
// through SetDerivedFields by the caller that ran the forecast. Every call
// is a single committed unit.
package store

import (
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

// Store is the persistence contract used by the directory.
type Store interface {
	// CreateChore inserts a chore and returns its id. A name held by a
	// live chore is a DuplicateName error.
	CreateChore(name string, created time.Time) (int64, error)
	// DeleteChore removes a chore and all of its intervals.
	DeleteChore(id int64) error
	// RenameChore changes a chore's name.
	RenameChore(id int64, name string) error
	// GetChore returns one chore snapshot.
	GetChore(id int64) (*chore.Chore, error)
	// ListChores returns all chores ordered by next_due - mad_less, then
	// next_due, then name.
	ListChores() ([]*chore.Chore, error)

	// AppendInterval records an interval for a chore and returns its id.
	AppendInterval(choreID, seconds int64) (int64, error)
	// GetInterval returns one interval.
	GetInterval(id int64) (*chore.Interval, error)
	// ListIntervals returns a chore's intervals, most recent first.
	ListIntervals(choreID int64) ([]chore.Interval, error)
	// UpdateIntervalDuration replaces an interval's duration.
	UpdateIntervalDuration(id, seconds int64) error
	// DeleteInterval removes one interval.
	DeleteInterval(id int64) error

	// SetDerivedFields stores a forecast computed by the caller.
	SetDerivedFields(id int64, f forecast.Forecast) error
	// SetLastCompletion moves the last completion pointer.
	SetLastCompletion(id int64, t time.Time) error
	// SetFirstCompletion records the first completion.
	SetFirstCompletion(id int64, t time.Time) error

	// Reset removes every chore and interval. Ids are not reused afterwards.
	Reset() error
	// Close releases the underlying database.
	Close() error
}
