package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List chores by urgency",
	Long: `Lists chores in the order they are forecast to be needed, tagged for use
with the other commands. Tags are assigned before filters apply, so a chore
keeps its tag whichever filter shows it.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "show chores whose name contains this text (case-insensitive)")
	listCmd.Flags().Int("min-bucket", 0, "show only chores at least this urgent (-1..7)")
	listCmd.Flags().IntP("limit", "n", 0, "limit number of results")
	listCmd.Flags().BoolP("watch", "w", false, "redraw whenever the database changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")
	watch, _ := cmd.Flags().GetBool("watch")

	opts := directory.ListOptions{
		Filter: directory.FilterOptions{Search: search},
		Limit:  limit,
	}
	if cmd.Flags().Changed("min-bucket") {
		n, _ := cmd.Flags().GetInt("min-bucket")
		if n < int(forecast.BucketInactive) || n > int(forecast.BucketOverdue) {
			return clierr.Newf(clierr.InvalidInput, "--min-bucket must be between %d and %d",
				forecast.BucketInactive, forecast.BucketOverdue)
		}
		b := forecast.Bucket(n)
		opts.Filter.MinBucket = &b
	}

	render := func() error { return renderList(s, opts) }
	if err := render(); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndRender(s, render)
}

func renderList(s *session, opts directory.ListOptions) error {
	l, err := s.dir.List(opts)
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		if l.Rows == nil {
			l.Rows = []directory.Row{}
		}
		return output.JSON(os.Stdout, l)
	case output.FormatCompact:
		output.ChoreCompact(os.Stdout, l)
	default:
		output.ChoreTable(os.Stdout, l, s.cfg.NameWidth)
	}
	return nil
}
