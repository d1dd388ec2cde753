package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// HelpMarkdown explains the forecast, the spread column and the urgency scale.
const HelpMarkdown = "# ChoreMate\n\n" +
	"### Views\n\n" +
	"- **List view** lists every chore in the order its next completion is likely to be needed.\n" +
	"- **Details view** shows one chore with its recorded intervals.\n\n" +
	"### Key bindings\n\n" +
	"- Always: **Q** quit, **?** this help.\n" +
	"- List view: **A** add a chore, **L** refresh, **a**-**z** open the chore with that tag.\n" +
	"- Details view: **C** complete, **D** delete, **E** rename, **a**-**z** select an interval " +
	"then **u** update or **r** remove it, **ESC** back to the list.\n\n" +
	"### Completing a chore\n\n" +
	"The first completion only records *last*. Later completions prompt for the completion " +
	"datetime and then for the datetime the chore was actually *needed*. Press Enter to use " +
	"the completion datetime for both. The interval `needed - last` is appended to the history " +
	"and the forecast is recomputed. Answer `none` when you cannot say when it was needed: " +
	"no interval is recorded, the statistics stay as they were and only *last* moves.\n\n" +
	"### Forecast\n\n" +
	"*next* is *last* plus the mean interval. With three or more intervals the history is " +
	"split into those below and above the mean, and the mean absolute deviation of each side " +
	"gives *mad_less* and *mad_more*. The **+/-** column shows `2 x mad_less` before *next* and " +
	"`2 x mad_more` after it. At least half of the recorded intervals lie inside that window.\n\n" +
	"### Urgency\n\n" +
	"```\n" +
	"   -4  -3  -2  -1   N   1   2   3   4 mad offsets\n" +
	"-x--|---|---|---.---|---.-X-|---|---|----> time\n" +
	"  1   2   3         4         5   6   7 urgency\n" +
	"            |<---- 1/2 ---->|\n" +
	"        |<-------- 7/9 -------->|\n" +
	"    |<------------ 7/8 ------------>|\n" +
	"```\n\n" +
	"Urgency climbs from 1 (early) to 7 (overdue) as the current time passes each boundary. " +
	"Chores completed once but without a forecast are 0 (new). Chores never completed are " +
	"-1 (inactive). Completing a chore moves every boundary one mean interval to the right, " +
	"usually dropping it back to 1.\n"

// RenderHelp renders HelpMarkdown for a terminal of the given width. Without
// a usable renderer the raw markdown is returned.
func RenderHelp(width int, styled bool) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width-4, 20))} //nolint:mnd // margins
	if styled {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return HelpMarkdown, fmt.Errorf("creating help renderer: %w", err)
	}
	out, err := r.Render(HelpMarkdown)
	if err != nil {
		return HelpMarkdown, fmt.Errorf("rendering help: %w", err)
	}
	return out, nil
}
