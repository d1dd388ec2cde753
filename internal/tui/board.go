// Package tui implements the interactive chore list for choremate.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

// view represents the current screen state.
type view int

const (
	viewList view = iota
	viewDetails
	viewHelp
)

// Key and layout constants.
const (
	keyEsc = "esc"

	boardChrome  = 3 // title, separator, status bar
	errorChrome  = 1 // extra line when an error toast is displayed
	promptChrome = 2 // blank line + prompt line
	tickInterval = time.Minute
	inputWidth   = 40
)

// Options configures a Board.
type Options struct {
	// NameWidth caps the name column in the list view.
	NameWidth int
	// Mutate wraps every edit, for example to hold the database lock.
	Mutate func(func() error) error
	// Styled enables coloured help rendering.
	Styled bool
}

// Board is the top-level bubbletea model.
type Board struct {
	dir  *directory.Directory
	opts Options

	listing *directory.Listing
	detail  *directory.Detail
	choreID int64

	view   view
	back   view // view to return to from help
	buffer string
	scroll int

	// Interval selected on the details view, waiting for u or r.
	intervalID int64

	prompt  *prompt
	confirm *confirm

	width  int
	height int
	status string
	err    error
}

// prompt collects one line of input and hands it to submit.
type prompt struct {
	label  string
	input  textinput.Model
	submit func(string) error
}

// confirm asks a yes/no question before running yes.
type confirm struct {
	question string
	yes      func() error
}

// NewBoard creates a Board over dir and loads the listing.
func NewBoard(dir *directory.Directory, opts Options) *Board {
	if opts.Mutate == nil {
		opts.Mutate = func(fn func() error) error { return fn() }
	}
	if opts.NameWidth <= 0 {
		opts.NameWidth = 30 //nolint:mnd // list name column
	}
	b := &Board{dir: dir, opts: opts}
	b.reload()
	return b
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil
	case ReloadMsg:
		b.reload()
		return b, nil
	case TickMsg:
		b.reload()
		return b, tickCmd()
	}
	if b.prompt != nil {
		var cmd tea.Cmd
		b.prompt.input, cmd = b.prompt.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	if b.width == 0 {
		return "Loading..."
	}

	if b.confirm != nil {
		return b.viewConfirm()
	}

	var body string
	switch b.view {
	case viewHelp:
		body = b.viewHelp()
	case viewDetails:
		body = b.viewDetails()
	default:
		body = b.viewList()
	}

	var sb strings.Builder
	sb.WriteString(b.renderTitle())
	sb.WriteString("\n")
	sb.WriteString(b.clip(body))
	if b.prompt != nil {
		sb.WriteString("\n\n")
		sb.WriteString(promptStyle.Render(b.prompt.label+" ") + b.prompt.input.View())
	}
	sb.WriteString("\n")
	sb.WriteString(b.renderStatusBar())
	return sb.String()
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return b, tea.Quit
	}

	switch {
	case b.confirm != nil:
		return b.handleConfirmKey(msg)
	case b.prompt != nil:
		return b.handlePromptKey(msg)
	}

	switch msg.String() {
	case "Q":
		return b, tea.Quit
	case "up":
		b.scroll = max(0, b.scroll-1)
		return b, nil
	case "down":
		b.scroll++
		return b, nil
	}

	switch b.view {
	case viewHelp:
		return b.handleHelpKey(msg)
	case viewDetails:
		return b.handleDetailsKey(msg)
	default:
		return b.handleListKey(msg)
	}
}

func (b *Board) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k := msg.String(); k {
	case "?":
		b.showHelp()
	case "A":
		b.startAdd()
	case "L":
		b.reload()
		b.status = "Refreshed"
	case keyEsc:
		b.buffer = ""
	default:
		if !isTagKey(k) {
			return b, nil
		}
		b.buffer += k
		if len(b.buffer) < b.listing.TagWidth() {
			return b, nil
		}
		ref := b.buffer
		b.buffer = ""
		id, err := b.listing.Resolve(ref)
		if err != nil {
			b.err = err
			return b, nil
		}
		b.openDetails(id)
	}
	return b, nil
}

func (b *Board) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b.detail == nil {
		b.view = viewList
		return b, nil
	}
	k := msg.String()

	if b.intervalID != 0 {
		id := b.intervalID
		b.intervalID = 0
		switch k {
		case "u":
			b.startIntervalUpdate(id)
			return b, nil
		case "r":
			b.startIntervalRemove(id)
			return b, nil
		}
	}

	switch k {
	case "?":
		b.showHelp()
	case keyEsc:
		if b.buffer != "" {
			b.buffer = ""
			return b, nil
		}
		b.view = viewList
		b.detail = nil
		b.scroll = 0
		b.reload()
	case "C":
		b.startComplete()
	case "D":
		b.startDelete()
	case "E":
		b.startRename()
	default:
		if !isTagKey(k) || len(b.detail.Intervals) == 0 {
			return b, nil
		}
		b.buffer += k
		if len(b.buffer) < b.detail.TagWidth() {
			return b, nil
		}
		ref := b.buffer
		b.buffer = ""
		id, err := b.detail.ResolveInterval(ref)
		if err != nil {
			b.err = err
			return b, nil
		}
		b.intervalID = id
		b.status = fmt.Sprintf("Interval %s selected: u update, r remove", ref)
	}
	return b, nil
}

func (b *Board) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", keyEsc, "q":
		b.view = b.back
		b.scroll = 0
	}
	return b, nil
}

func (b *Board) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		b.prompt = nil
		b.status = "Cancelled"
		return b, nil
	case tea.KeyEnter:
		p := b.prompt
		b.prompt = nil
		if err := p.submit(strings.TrimSpace(p.input.Value())); err != nil {
			b.err = err
		}
		return b, nil
	}
	var cmd tea.Cmd
	b.prompt.input, cmd = b.prompt.input.Update(msg)
	return b, cmd
}

func (b *Board) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		c := b.confirm
		b.confirm = nil
		if err := c.yes(); err != nil {
			b.err = err
		}
	case "n", "N", keyEsc, "q":
		b.confirm = nil
		b.status = "Cancelled"
	}
	return b, nil
}

// --- Actions ---

func (b *Board) startAdd() {
	b.ask("New chore name:", "", func(name string) error {
		if name == "" {
			return nil
		}
		var id int64
		err := b.opts.Mutate(func() error {
			var err error
			id, err = b.dir.AddChore(name, b.dir.Now())
			return err
		})
		if err != nil {
			return err
		}
		b.status = fmt.Sprintf("Added #%d %s", id, chore.NormalizeName(name))
		b.reload()
		return nil
	})
}

func (b *Board) startComplete() {
	c := b.detail.Chore
	b.ask("Completed at (Enter = now):", "", func(s string) error {
		at, err := date.Parse(s, b.dir.Now())
		if err != nil {
			return err
		}
		if !c.Completed() {
			return b.complete(c.ID, at, chore.DefaultNeeded())
		}
		b.ask("Needed at (Enter = completion, none = skip):", "", func(s string) error {
			needed, err := chore.ParseNeeded(s, b.dir.Now())
			if err != nil {
				return err
			}
			return b.complete(c.ID, at, needed)
		})
		return nil
	})
}

func (b *Board) complete(id int64, at time.Time, needed chore.Needed) error {
	if err := b.opts.Mutate(func() error {
		return b.dir.RecordCompletion(id, at, needed)
	}); err != nil {
		return err
	}
	b.status = "Completed at " + date.Long(at)
	b.openDetails(id)
	return nil
}

func (b *Board) startDelete() {
	c := b.detail.Chore
	b.confirm = &confirm{
		question: fmt.Sprintf("Delete chore #%d %s and its history?", c.ID, c.Name),
		yes: func() error {
			if err := b.opts.Mutate(func() error { return b.dir.RemoveChore(c.ID) }); err != nil {
				return err
			}
			b.status = "Deleted " + c.Name
			b.view = viewList
			b.detail = nil
			b.reload()
			return nil
		},
	}
}

func (b *Board) startRename() {
	c := b.detail.Chore
	b.ask("New name:", c.Name, func(name string) error {
		if err := b.opts.Mutate(func() error { return b.dir.RenameChore(c.ID, name) }); err != nil {
			return err
		}
		b.status = "Renamed to " + chore.NormalizeName(name)
		b.openDetails(c.ID)
		return nil
	})
}

func (b *Board) startIntervalUpdate(id int64) {
	current := ""
	if iv, err := b.dir.GetInterval(id); err == nil {
		current = duration.Format(iv.Duration)
	}
	b.ask("New interval (e.g. 1w2d3h):", current, func(s string) error {
		seconds, err := duration.Parse(s)
		if err != nil {
			return err
		}
		if err := b.opts.Mutate(func() error { return b.dir.UpdateInterval(id, seconds) }); err != nil {
			return err
		}
		b.status = "Interval set to " + duration.Format(seconds)
		b.openDetails(b.choreID)
		return nil
	})
}

func (b *Board) startIntervalRemove(id int64) {
	text := fmt.Sprintf("#%d", id)
	if iv, err := b.dir.GetInterval(id); err == nil {
		text = duration.Format(iv.Duration)
	}
	b.confirm = &confirm{
		question: fmt.Sprintf("Remove interval %s?", text),
		yes: func() error {
			if err := b.opts.Mutate(func() error { return b.dir.RemoveInterval(id) }); err != nil {
				return err
			}
			b.status = "Removed interval " + text
			b.openDetails(b.choreID)
			return nil
		},
	}
}

func (b *Board) ask(label, value string, submit func(string) error) {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = chore.MaxNameLength
	in.Width = inputWidth
	in.SetValue(value)
	in.Focus()
	b.prompt = &prompt{label: label, input: in, submit: submit}
	b.err = nil
	b.status = ""
}

func (b *Board) showHelp() {
	b.back = b.view
	b.view = viewHelp
	b.scroll = 0
}

// --- Data ---

func (b *Board) reload() {
	l, err := b.dir.List(directory.ListOptions{})
	if err != nil {
		b.err = fmt.Errorf("loading chores: %w", err)
		return
	}
	b.listing = l
	if b.view == viewDetails && b.choreID != 0 && b.detail != nil {
		b.loadDetail(b.choreID)
	}
}

func (b *Board) openDetails(id int64) {
	b.reload()
	if !b.loadDetail(id) {
		b.view = viewList
		return
	}
	b.view = viewDetails
	b.scroll = 0
}

func (b *Board) loadDetail(id int64) bool {
	d, err := b.dir.Detail(id)
	if err != nil {
		b.err = err
		b.detail = nil
		return false
	}
	b.detail = d
	b.choreID = id
	return true
}

// --- Messages ---

// ReloadMsg is sent by the database watcher to trigger a refresh.
type ReloadMsg struct{}

// TickMsg is sent periodically so urgency follows the clock.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff8dc"))

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// --- View rendering ---

func (b *Board) viewList() string {
	if b.listing == nil || len(b.listing.Rows) == 0 {
		return dimStyle.Render("No chores yet. Press A to add one.")
	}
	var sb strings.Builder
	output.ChoreTable(&sb, b.listing, b.opts.NameWidth)
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Board) viewDetails() string {
	if b.detail == nil {
		return ""
	}
	var sb strings.Builder
	output.ChoreDetail(&sb, b.detail, b.dir.Now())
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Board) viewHelp() string {
	text, err := output.RenderHelp(b.width, b.opts.Styled)
	if err != nil {
		b.err = err
	}
	return strings.TrimRight(text, "\n")
}

func (b *Board) viewConfirm() string {
	content := errorStyle.Render(b.confirm.question) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) renderTitle() string {
	title := "ChoreMate"
	switch b.view {
	case viewDetails:
		if b.detail != nil {
			title += " | " + b.detail.Chore.Name
		}
	case viewHelp:
		title += " | help"
	}
	title = output.Truncate(title, b.width)
	return titleStyle.Render(title) + "\n" + dimStyle.Render(strings.Repeat("─", max(0, b.width)))
}

func (b *Board) renderStatusBar() string {
	var hints string
	switch b.view {
	case viewDetails:
		hints = "C:complete D:delete E:rename tag+u/r:interval esc:back ?:help Q:quit"
	case viewHelp:
		hints = "esc:back Q:quit"
	default:
		hints = "A:add L:refresh tag:open ?:help Q:quit"
	}
	status := fmt.Sprintf(" %s | %s", b.dir.Now().Format("Mon 15:04"), hints)
	if b.buffer != "" {
		status += " | " + b.buffer
	}
	if b.status != "" {
		status += " | " + b.status
	}
	status = output.Truncate(status, b.width)

	if b.err != nil {
		errStr := errorStyle.Render(output.Truncate("Error: "+b.err.Error(), b.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}

	return statusBarStyle.Render(status)
}

// clip scrolls body to the lines that fit between the title and status bar.
func (b *Board) clip(body string) string {
	lines := strings.Split(body, "\n")
	avail := b.height - boardChrome
	if b.err != nil {
		avail -= errorChrome
	}
	if b.prompt != nil {
		avail -= promptChrome
	}
	if b.height == 0 || avail <= 0 || len(lines) <= avail {
		b.scroll = 0
		return body
	}
	b.scroll = min(b.scroll, len(lines)-avail)
	return strings.Join(lines[b.scroll:b.scroll+avail], "\n")
}

func isTagKey(k string) bool {
	return len(k) == 1 && k[0] >= 'a' && k[0] <= 'z'
}
