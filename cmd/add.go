package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/date"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a chore",
	Long: `Adds a chore with no history. Its urgency stays inactive until the
first completion is recorded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("at", "", "creation datetime (default now)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	atStr, _ := cmd.Flags().GetString("at")
	created, err := date.Parse(atStr, s.dir.Now())
	if err != nil {
		return chore.ValidateDate("at", atStr, err)
	}

	name := chore.NormalizeName(strings.Join(args, " "))
	var id int64
	err = s.mutate(func() error {
		id, err = s.dir.AddChore(name, created)
		return err
	})
	if err != nil {
		return err
	}

	return printResult(output.Result{Action: "add", ID: id, Name: name},
		"Added chore #%d: %s", id, name)
}
