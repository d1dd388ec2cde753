package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
	"github.com/twiced-technology-gmbh/choremate/internal/watcher"
)

var flagWatch bool

var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"summary"},
	Short:   "Show chore counts per urgency",
	Long: `Displays how many chores sit in each urgency bucket, most urgent first.

Use --watch to keep the display live-updating. The summary re-renders whenever
the database changes (e.g., from another terminal). Press Ctrl+C to stop.`,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "live-update the summary on database changes")
}

func runBoard(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	render := func() error { return renderBoard(s) }
	if err := render(); err != nil {
		return err
	}
	if !flagWatch {
		return nil
	}
	return watchAndRender(s, render)
}

func renderBoard(s *session) error {
	l, err := s.dir.List(directory.ListOptions{})
	if err != nil {
		return err
	}
	summary := directory.Summary(l)

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, summary)
	}
	if format == output.FormatCompact {
		output.OverviewCompact(os.Stdout, summary)
		return nil
	}

	output.OverviewTable(os.Stdout, summary)
	return nil
}

// watchAndRender re-runs render after every database change until
// interrupted.
func watchAndRender(s *session, render func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(s.cfg.DatabasePath(), func() {
		if outputFormat() != output.FormatJSON {
			clearScreen()
		}
		if renderErr := render(); renderErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: rendering: %v\n", renderErr)
		}
	})
	if err != nil {
		return fmt.Errorf("starting database watcher: %w", err)
	}
	defer w.Close()

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")

	w.Run(ctx, func(watchErr error) {
		fmt.Fprintf(os.Stderr, "Warning: database watcher: %v\n", watchErr)
	})

	return nil
}

// clearScreen sends ANSI escape codes to clear the terminal and move the
// cursor to the top-left corner.
func clearScreen() {
	fmt.Fprint(os.Stdout, "\033[2J\033[H")
}
