package directory

import (
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
	"github.com/twiced-technology-gmbh/choremate/internal/tag"
)

// Row is one chore as displayed in a listing.
type Row struct {
	Tag          string          `json:"tag"`
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Last         *time.Time      `json:"last,omitempty"`
	Next         *time.Time      `json:"next,omitempty"`
	DueIn        int64           `json:"due_in"`
	MeanInterval int64           `json:"mean_interval"`
	Mean         string          `json:"mean"`
	Spread       int64           `json:"spread"`
	Bucket       forecast.Bucket `json:"bucket"`
	Urgency      string          `json:"urgency"`
	NumIntervals int             `json:"num_intervals"`
}

// DueInText formats the time until the forecast, or "" without one.
// Past forecasts have a leading '-'.
func (r Row) DueInText() string {
	if r.Next == nil {
		return ""
	}
	return duration.FormatShort(r.DueIn)
}

// SpreadText formats the spread, or "" when there is none.
func (r Row) SpreadText() string {
	if r.Spread == 0 {
		return ""
	}
	return duration.FormatShort(r.Spread)
}

// Listing is one ordered, tagged rendering of the chores. Its tags are
// valid only until the next mutation.
type Listing struct {
	Now  time.Time `json:"now"`
	Rows []Row     `json:"chores"`

	tags tag.Mapping
}

// ListOptions controls which rows a listing shows.
type ListOptions struct {
	Filter FilterOptions
	Limit  int
}

// List builds a listing in urgency order. Tags are allocated over every
// chore before filtering, so a chore keeps its tag whichever filter shows it.
func (d *Directory) List(opts ListOptions) (*Listing, error) {
	chores, err := d.store.ListChores()
	if err != nil {
		return nil, err
	}

	now := d.now()
	at := d.classifyAt(now).Unix()
	ids := make([]int64, len(chores))
	for i, c := range chores {
		ids[i] = c.ID
	}
	l := &Listing{Now: now, tags: tag.Allocate(ids)}

	for i, c := range chores {
		row := newRow(c, l.tags.At(i), at)
		if !matchesFilter(row, opts.Filter) {
			continue
		}
		l.Rows = append(l.Rows, row)
	}
	if opts.Limit > 0 && len(l.Rows) > opts.Limit {
		l.Rows = l.Rows[:opts.Limit]
	}
	return l, nil
}

func newRow(c *chore.Chore, code string, at int64) Row {
	f := c.Forecast()
	b := f.Bucket(at, c.Completed())
	row := Row{
		Tag:          code,
		ID:           c.ID,
		Name:         c.Name,
		Last:         c.LastCompletion,
		Next:         c.NextDue,
		MeanInterval: c.MeanInterval,
		Bucket:       b,
		Urgency:      b.String(),
		NumIntervals: c.NumIntervals,
	}
	if c.NumIntervals > 0 {
		row.Mean = duration.FormatShort(c.MeanInterval)
	}
	if f.HasNextDue() {
		row.DueIn = f.NextDue - at
		row.Spread = f.Spread(at)
	}
	return row
}

// TagWidth returns the width of the listing's tags.
func (l *Listing) TagWidth() int { return l.tags.Width() }

// Resolve turns a tag or "#ID" reference into a chore id.
func (l *Listing) Resolve(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "#") {
		id, ok := chore.ParseID(ref)
		if !ok {
			return 0, clierr.Newf(clierr.InvalidInput, "invalid chore id %q", ref).
				WithDetails(map[string]any{"input": ref})
		}
		if _, listed := l.tags.Tag(id); !listed {
			return 0, chore.NotFound(id)
		}
		return id, nil
	}
	if id, ok := l.tags.Resolve(ref); ok {
		return id, nil
	}
	return 0, clierr.Newf(clierr.TagNotFound, "there is no chore tagged %q", ref).
		WithDetails(map[string]any{"tag": ref})
}
