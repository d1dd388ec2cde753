package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
)

// ChoreCompact renders a listing in one-line-per-record compact format.
func ChoreCompact(w io.Writer, l *directory.Listing) {
	if len(l.Rows) == 0 {
		fmt.Fprintln(os.Stderr, "No chores found.")
		return
	}

	for _, r := range l.Rows {
		fmt.Fprintln(w, formatRowLine(r))
	}
}

// ChoreDetailCompact renders a single chore with its history in compact format.
func ChoreDetailCompact(w io.Writer, d *directory.Detail) {
	c := d.Chore
	line := "#" + strconv.FormatInt(c.ID, 10) + " [" + strconv.Itoa(int(d.Bucket)) + "/" + d.Urgency + "] " + c.Name
	fmt.Fprintln(w, line)

	ts := "  created:" + date.Short(c.Created)
	if c.LastCompletion != nil {
		ts += " last:" + date.Long(*c.LastCompletion)
	}
	if c.NextDue != nil {
		ts += " next:" + date.Long(*c.NextDue)
	}
	fmt.Fprintln(w, ts)

	if len(d.Intervals) > 0 {
		parts := make([]string, 0, len(d.Intervals))
		for _, iv := range d.Intervals {
			parts = append(parts, iv.Tag+"="+iv.Text)
		}
		fmt.Fprintln(w, "  intervals: "+strings.Join(parts, " "))
	}
}

// OverviewCompact renders per-bucket counts in compact format.
func OverviewCompact(w io.Writer, o directory.Overview) {
	fmt.Fprintf(w, "chores (%d)\n", o.Total)

	parts := make([]string, 0, len(o.Buckets))
	for _, bc := range o.Buckets {
		if bc.Count == 0 {
			continue
		}
		parts = append(parts, bc.Urgency+"="+strconv.Itoa(bc.Count))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, "  "+strings.Join(parts, " "))
	}
}

// LogCompact renders activity log entries one per line.
func LogCompact(w io.Writer, entries []directory.LogEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s #%d %s\n", e.Timestamp.Format("2006-01-02T15:04:05"), e.Action, e.ChoreID, e.Detail)
	}
}

// formatRowLine builds the one-line representation of a listed chore.
func formatRowLine(r directory.Row) string {
	line := r.Tag + " #" + strconv.FormatInt(r.ID, 10) + " [" + r.Urgency + "] " + r.Name

	if r.Next != nil {
		line += " next:" + date.Short(*r.Next) + " (" + r.DueInText() + ")"
	}
	if r.Mean != "" {
		line += " every:" + r.Mean
	}
	if s := r.SpreadText(); s != "" {
		line += " ±" + s
	}
	return line
}
