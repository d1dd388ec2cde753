package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var removeCmd = &cobra.Command{
	Use:     "remove TAG|#ID",
	Aliases: []string{"rm"},
	Short:   "Remove a chore",
	Long:    `Deletes a chore and its interval history. Prompts for confirmation in interactive mode.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.resolveChore(args[0])
	if err != nil {
		return err
	}
	c, err := s.dir.GetChore(id)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	ok, err := confirm(yes, fmt.Sprintf("Remove chore #%d %q and its history?", c.ID, c.Name))
	if err != nil || !ok {
		return err
	}

	if err := s.mutate(func() error { return s.dir.RemoveChore(id) }); err != nil {
		return err
	}
	return printResult(output.Result{Action: "remove", ID: c.ID, Name: c.Name},
		"Removed chore #%d: %s", c.ID, c.Name)
}

// confirm asks question on the terminal unless yes is set. Without a
// terminal it fails with CONFIRMATION_REQUIRED.
func confirm(yes bool, question string) (bool, error) {
	if yes {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, clierr.New(clierr.ConfirmationReq,
			"cannot prompt for confirmation (not a terminal); use --yes")
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(os.Stderr, "Canceled.")
		return false, nil
	}
	return true, nil
}
