package directory

import (
	"strings"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
	"github.com/twiced-technology-gmbh/choremate/internal/tag"
)

// IntervalRow is one tagged interval of a chore's history.
type IntervalRow struct {
	Tag      string `json:"tag"`
	ID       int64  `json:"id"`
	Duration int64  `json:"duration"`
	Text     string `json:"text"`
}

// Detail is a full chore snapshot with its tagged history, most recent first.
type Detail struct {
	Chore      *chore.Chore    `json:"chore"`
	Bucket     forecast.Bucket `json:"bucket"`
	Urgency    string          `json:"urgency"`
	Spread     int64           `json:"spread"`
	Boundaries []int64         `json:"boundaries,omitempty"`
	Intervals  []IntervalRow   `json:"intervals"`

	tags tag.Mapping
}

// Detail returns a chore with its tagged intervals.
func (d *Directory) Detail(id int64) (*Detail, error) {
	c, err := d.store.GetChore(id)
	if err != nil {
		return nil, err
	}
	ivs, err := d.store.ListIntervals(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(ivs))
	for i, iv := range ivs {
		ids[i] = iv.ID
	}
	at := d.classifyAt(d.now()).Unix()
	f := c.Forecast()
	detail := &Detail{
		Chore:     c,
		Bucket:    f.Bucket(at, c.Completed()),
		Intervals: make([]IntervalRow, len(ivs)),
		tags:      tag.Allocate(ids),
	}
	detail.Urgency = detail.Bucket.String()
	if f.HasNextDue() {
		detail.Spread = f.Spread(at)
		// Drop the leading sentinel; callers show only the real boundaries.
		detail.Boundaries = forecast.Boundaries(f.NextDue, f.MadLess, f.MadMore)[1:]
	}
	for i, iv := range ivs {
		detail.Intervals[i] = IntervalRow{
			Tag:      detail.tags.At(i),
			ID:       iv.ID,
			Duration: iv.Duration,
			Text:     duration.Format(iv.Duration),
		}
	}
	return detail, nil
}

// TagWidth returns the width of the interval tags.
func (dt *Detail) TagWidth() int { return dt.tags.Width() }

// ResolveInterval turns an interval tag or "#ID" reference into an interval id.
func (dt *Detail) ResolveInterval(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "#") {
		id, ok := chore.ParseID(ref)
		if ok {
			if _, listed := dt.tags.Tag(id); listed {
				return id, nil
			}
		}
		return 0, chore.IntervalNotFound(id)
	}
	if id, ok := dt.tags.Resolve(ref); ok {
		return id, nil
	}
	return 0, clierr.Newf(clierr.TagNotFound, "there is no interval tagged %q", ref).
		WithDetails(map[string]any{"tag": ref})
}
