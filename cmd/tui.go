package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/tui"
	"github.com/twiced-technology-gmbh/choremate/internal/watcher"
)

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	model := tui.NewBoard(s.dir, tui.Options{
		NameWidth: s.cfg.NameWidth,
		Mutate:    s.mutate,
		Styled:    !colorDisabled(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, s.cfg.DatabasePath(), p)

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, dbPath string, p *tea.Program) {
	w, err := watcher.New(dbPath, func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: live refresh disabled: %v\n", err)
		return // non-fatal: TUI works without live refresh
	}
	defer w.Close()
	w.Run(ctx, nil)
}
