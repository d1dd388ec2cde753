package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var renameCmd = &cobra.Command{
	Use:   "rename TAG|#ID NAME",
	Short: "Rename a chore",
	Args:  cobra.MinimumNArgs(2), //nolint:mnd // reference and name
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	name := chore.NormalizeName(strings.Join(args[1:], " "))
	var id int64
	var old string
	err = s.mutate(func() error {
		id, err = s.resolveChore(args[0])
		if err != nil {
			return err
		}
		c, err := s.dir.GetChore(id)
		if err != nil {
			return err
		}
		old = c.Name
		return s.dir.RenameChore(id, name)
	})
	if err != nil {
		return err
	}
	return printResult(output.Result{Action: "rename", ID: id, Name: name},
		"Renamed chore #%d: %s -> %s", id, old, name)
}
