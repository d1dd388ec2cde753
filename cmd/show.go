package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show TAG|#ID",
	Short: "Show chore details",
	Long: `Displays a chore with its forecast, urgency boundaries and tagged interval
history, most recent first. Interval tags are used by "choremate interval".`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.resolveChore(args[0])
	if err != nil {
		return err
	}
	d, err := s.dir.Detail(id)
	if err != nil {
		return err
	}

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, d)
	}
	if format == output.FormatCompact {
		output.ChoreDetailCompact(os.Stdout, d)
		return nil
	}

	output.ChoreDetail(os.Stdout, d, s.dir.Now())
	return nil
}
