package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func sampleListing() *directory.Listing {
	next := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &directory.Listing{
		Now: last,
		Rows: []directory.Row{
			{Tag: "a", ID: 4, Name: "water the plants on the balcony", Last: &last, Next: &next,
				DueIn: 2 * 24 * 3600, Mean: "2d", Spread: 3600, Bucket: forecast.BucketEarly, Urgency: "early"},
			{Tag: "b", ID: 7, Name: "dust", Bucket: forecast.BucketInactive, Urgency: "inactive"},
		},
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("CHOREMATE_OUTPUT", "")
	tests := []struct {
		name                 string
		jsonF, tableF, compF bool
		env                  string
		want                 Format
	}{
		{"default", false, false, false, "", FormatTable},
		{"json flag", true, false, false, "", FormatJSON},
		{"compact flag", false, false, true, "", FormatCompact},
		{"json wins", true, true, true, "", FormatJSON},
		{"env compact", false, false, false, "oneline", FormatCompact},
		{"env json", false, false, false, "json", FormatJSON},
		{"flag over env", false, true, false, "json", FormatTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CHOREMATE_OUTPUT", tt.env)
			if got := Detect(tt.jsonF, tt.tableF, tt.compF); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChoreTable(t *testing.T) {
	var buf bytes.Buffer
	ChoreTable(&buf, sampleListing(), 10)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for _, h := range []string{"TAG", "NAME", "LAST", "NEXT", "DUE", "+/-", "MEAN"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header missing %q: %q", h, lines[0])
		}
	}
	if !strings.Contains(lines[1], "water the…") {
		t.Errorf("name not truncated: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2d") || !strings.Contains(lines[1], "1h") {
		t.Errorf("row missing due/spread: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "b ") || !strings.Contains(lines[2], "--") {
		t.Errorf("inactive row = %q", lines[2])
	}
}

func TestChoreCompact(t *testing.T) {
	var buf bytes.Buffer
	ChoreCompact(&buf, sampleListing())
	out := buf.String()
	if !strings.Contains(out, "a #4 [early] water the plants on the balcony next:") {
		t.Errorf("compact line = %q", out)
	}
	if !strings.Contains(out, "every:2d ±1h") {
		t.Errorf("compact stats missing: %q", out)
	}
	if !strings.Contains(out, "b #7 [inactive] dust\n") {
		t.Errorf("inactive line = %q", out)
	}
}

func TestChoreDetail(t *testing.T) {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	next := last.Add(48 * time.Hour)
	d := &directory.Detail{
		Chore: &chore.Chore{
			ID: 3, Name: "mow", Created: created, FirstCompletion: &created,
			LastCompletion: &last, NextDue: &next, MeanInterval: 2 * 24 * 3600, NumIntervals: 1,
		},
		Bucket:  forecast.BucketEarly,
		Urgency: "early",
		Intervals: []directory.IntervalRow{
			{Tag: "a", ID: 1, Duration: 2 * 24 * 3600, Text: "2d"},
		},
	}
	var buf bytes.Buffer
	ChoreDetail(&buf, d, last.Add(time.Hour))
	out := buf.String()
	for _, want := range []string{"Chore #3: mow", "Urgency:", "1 (early)", "Mean:", "2d", "ago", "from now", "INTERVAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Boundaries") {
		t.Errorf("boundaries shown without any:\n%s", out)
	}
}

func TestOverview(t *testing.T) {
	o := directory.Overview{Total: 3, Buckets: []directory.BucketCount{
		{Bucket: forecast.BucketOverdue, Urgency: "overdue", Count: 1},
		{Bucket: forecast.BucketLate, Urgency: "late", Count: 0},
		{Bucket: forecast.BucketInactive, Urgency: "inactive", Count: 2},
	}}

	var table bytes.Buffer
	OverviewTable(&table, o)
	if !strings.Contains(table.String(), "Total: 3 chores") || !strings.Contains(table.String(), "overdue") {
		t.Errorf("overview table:\n%s", table.String())
	}

	var compact bytes.Buffer
	OverviewCompact(&compact, o)
	if got, want := compact.String(), "chores (3)\n  overdue=1 inactive=2\n"; got != want {
		t.Errorf("overview compact = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolong", 4, "too…"},
		{"x", 0, "x"},
		{"äöü", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	JSONError(&buf, "CHORE_NOT_FOUND", "chore #9 not found", map[string]any{"id": 9})
	var resp ErrorResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != "CHORE_NOT_FOUND" || resp.Details["id"] != float64(9) {
		t.Errorf("resp = %+v", resp)
	}
}

func TestRenderHelpPlain(t *testing.T) {
	out, err := RenderHelp(80, false)
	if err != nil {
		t.Fatalf("RenderHelp: %v", err)
	}
	if !strings.Contains(out, "mad_less") || !strings.Contains(out, "overdue") {
		t.Errorf("help text missing content:\n%s", out)
	}
}
