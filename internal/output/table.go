package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
)

const ellipsis = "…"

// ChoreTable renders a listing as a formatted table. Names wider than
// nameWidth are truncated.
func ChoreTable(w io.Writer, l *directory.Listing, nameWidth int) {
	if len(l.Rows) == 0 {
		fmt.Fprintln(os.Stderr, "No chores found.")
		return
	}

	const pad = 2
	tagW := max(3, l.TagWidth()+pad) //nolint:mnd // "TAG" header
	nameW := 6                        //nolint:mnd // "NAME" header plus padding
	for _, r := range l.Rows {
		nameW = max(nameW, min(len([]rune(r.Name))+pad, nameWidth+pad))
	}
	const dateW, durW = 10, 8

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %s",
		tagW, "TAG", nameW, "NAME", dateW, "LAST", dateW, "NEXT",
		durW, "DUE", durW, "+/-", "MEAN")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, r := range l.Rows {
		st := BucketStyle(r.Bucket)
		cells := []string{
			padRight(dimStyle.Render(r.Tag), tagW),
			padRight(st.Render(Truncate(r.Name, nameWidth)), nameW),
			padRight(st.Render(orDash(date.Short(timeOrZero(r.Last)))), dateW),
			padRight(st.Render(orDash(date.Short(timeOrZero(r.Next)))), dateW),
			padRight(st.Render(orDash(r.DueInText())), durW),
			padRight(st.Render(orDash(r.SpreadText())), durW),
			st.Render(orDash(r.Mean)),
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

// ChoreDetail renders one chore with its tagged interval history.
func ChoreDetail(w io.Writer, d *directory.Detail, now time.Time) {
	c := d.Chore
	titleLine := fmt.Sprintf("Chore #%d: %s", c.ID, c.Name)
	fmt.Fprintln(w, BucketStyle(d.Bucket).Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(titleLine))))

	printField(w, "Urgency", BucketStyle(d.Bucket).Render(fmt.Sprintf("%d (%s)", d.Bucket, d.Urgency)))
	printField(w, "Created", date.Long(c.Created))
	printField(w, "First", orDash(date.Long(timeOrZero(c.FirstCompletion))))
	last := orDash(date.Long(timeOrZero(c.LastCompletion)))
	if c.LastCompletion != nil {
		last += dimStyle.Render(" (" + humanize.RelTime(*c.LastCompletion, now, "ago", "from now") + ")")
	}
	printField(w, "Last", last)
	next := orDash(date.Long(timeOrZero(c.NextDue)))
	if c.NextDue != nil {
		next += dimStyle.Render(" (" + humanize.RelTime(*c.NextDue, now, "ago", "from now") + ")")
	}
	printField(w, "Next", next)
	printField(w, "Mean", durationOrDash(c.MeanInterval, c.NumIntervals > 0))
	printField(w, "MAD less", durationOrDash(c.MadLess, c.MadLess != 0))
	printField(w, "MAD more", durationOrDash(c.MadMore, c.MadMore != 0))
	printField(w, "Spread", durationOrDash(d.Spread, d.Spread != 0))
	printField(w, "Intervals", fmt.Sprintf("%d", c.NumIntervals))

	if len(d.Boundaries) > 0 {
		marks := make([]string, len(d.Boundaries))
		for i, b := range d.Boundaries {
			marks[i] = date.Long(time.Unix(b, 0))
		}
		printField(w, "Boundaries", dimStyle.Render(strings.Join(marks, " | ")))
	}

	if len(d.Intervals) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-*s %s", max(3, d.TagWidth()), "TAG", "INTERVAL"))) //nolint:mnd // "TAG" header
	for _, iv := range d.Intervals {
		fmt.Fprintf(w, "  %s %s\n", padRight(dimStyle.Render(iv.Tag), max(3, d.TagWidth())), iv.Text) //nolint:mnd // "TAG" header
	}
}

// OverviewTable renders per-bucket chore counts.
func OverviewTable(w io.Writer, o directory.Overview) {
	fmt.Fprintln(w, titleStyle.Render("Chores"))
	fmt.Fprintf(w, "Total: %d chores\n\n", o.Total)

	const bucketColW = 16
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s %6s", bucketColW, "URGENCY", "COUNT")))
	for _, bc := range o.Buckets {
		label := fmt.Sprintf("%2d %s", bc.Bucket, bc.Urgency)
		fmt.Fprintf(w, "%s %6d\n", padRight(BucketStyle(bc.Bucket).Render(label), bucketColW), bc.Count)
	}
}

// LogTable renders activity log entries.
func LogTable(w io.Writer, entries []directory.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No activity recorded.")
		return
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-16s %-16s %-6s %s", "TIME", "ACTION", "CHORE", "DETAIL")))
	for _, e := range entries {
		fmt.Fprintf(w, "%-16s %-16s %-6s %s\n",
			date.Long(e.Timestamp), e.Action, fmt.Sprintf("#%d", e.ChoreID), e.Detail)
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", padRight(labelStyle.Render(label+":"), 12), valueStyle.Render(value)) //nolint:mnd // label column width
}

// Truncate shortens s to at most width runes, ending in an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return string(r[:width-1]) + ellipsis
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

func durationOrDash(seconds int64, ok bool) string {
	if !ok {
		return "--"
	}
	return duration.Format(seconds)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
