package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/duration"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Correct a chore's recorded intervals",
	Long: `Updates or removes one recorded interval and recomputes the chore's
forecast. Intervals are addressed by the tags "choremate show" prints.`,
}

var intervalUpdateCmd = &cobra.Command{
	Use:   "update TAG|#ID INTERVAL-TAG DURATION",
	Short: "Replace an interval's duration (e.g. 1w2d3h)",
	Args:  cobra.ExactArgs(3), //nolint:mnd // chore, interval, duration
	RunE:  runIntervalUpdate,
}

var intervalRemoveCmd = &cobra.Command{
	Use:     "remove TAG|#ID INTERVAL-TAG",
	Aliases: []string{"rm"},
	Short:   "Remove an interval",
	Args:    cobra.ExactArgs(2), //nolint:mnd // chore and interval
	RunE:    runIntervalRemove,
}

func init() {
	intervalRemoveCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	intervalCmd.AddCommand(intervalUpdateCmd)
	intervalCmd.AddCommand(intervalRemoveCmd)
	rootCmd.AddCommand(intervalCmd)
}

// resolveInterval finds the chore and interval ids for a pair of references.
func (s *session) resolveInterval(choreRef, intervalRef string) (choreID, intervalID int64, err error) {
	choreID, err = s.resolveChore(choreRef)
	if err != nil {
		return 0, 0, err
	}
	d, err := s.dir.Detail(choreID)
	if err != nil {
		return 0, 0, err
	}
	intervalID, err = d.ResolveInterval(intervalRef)
	return choreID, intervalID, err
}

func runIntervalUpdate(_ *cobra.Command, args []string) error {
	seconds, err := duration.Parse(args[2])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var choreID, intervalID, old int64
	err = s.mutate(func() error {
		choreID, intervalID, err = s.resolveInterval(args[0], args[1])
		if err != nil {
			return err
		}
		iv, err := s.dir.GetInterval(intervalID)
		if err != nil {
			return err
		}
		old = iv.Duration
		return s.dir.UpdateInterval(intervalID, seconds)
	})
	if err != nil {
		return err
	}

	return printResult(output.Result{Action: "interval-update", ID: choreID},
		"Updated interval #%d of chore #%d: %s -> %s",
		intervalID, choreID, duration.Format(old), duration.Format(seconds))
}

func runIntervalRemove(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	choreID, intervalID, err := s.resolveInterval(args[0], args[1])
	if err != nil {
		return err
	}
	iv, err := s.dir.GetInterval(intervalID)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	ok, err := confirm(yes, fmt.Sprintf("Remove interval %s from chore #%d?", duration.Format(iv.Duration), choreID))
	if err != nil || !ok {
		return err
	}

	if err := s.mutate(func() error { return s.dir.RemoveInterval(intervalID) }); err != nil {
		return err
	}
	return printResult(output.Result{Action: "interval-remove", ID: choreID},
		"Removed interval #%d (%s) from chore #%d", intervalID, duration.Format(iv.Duration), choreID)
}
