package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var completeCmd = &cobra.Command{
	Use:     "complete TAG|#ID",
	Aliases: []string{"done"},
	Short:   "Record a completion",
	Long: `Records that a chore was completed. The first completion only starts the
history. Later completions add the interval from the previous completion to
--needed (default: the completion time) and recompute the forecast. Pass
--needed none when you cannot say when the chore was needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().String("at", "", "completion datetime (default now)")
	completeCmd.Flags().String("needed", "", "datetime the chore was needed, or none")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.dir.Now()
	atStr, _ := cmd.Flags().GetString("at")
	at, err := date.Parse(atStr, now)
	if err != nil {
		return chore.ValidateDate("at", atStr, err)
	}
	neededStr, _ := cmd.Flags().GetString("needed")
	needed, err := chore.ParseNeeded(neededStr, now)
	if err != nil {
		return err
	}

	var c *chore.Chore
	err = s.mutate(func() error {
		id, err := s.resolveChore(args[0])
		if err != nil {
			return err
		}
		if err := s.dir.RecordCompletion(id, at, needed); err != nil {
			return err
		}
		c, err = s.dir.GetChore(id)
		return err
	})
	if err != nil {
		return err
	}

	msg := "Completed #%d %s at %s"
	vals := []any{c.ID, c.Name, date.Long(at)}
	if c.NextDue != nil {
		msg += ", next due %s"
		vals = append(vals, date.Long(*c.NextDue))
	}
	return printResult(output.Result{Action: "complete", ID: c.ID, Name: c.Name}, msg, vals...)
}
