package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

const defaultHelpWidth = 80

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain forecasts, spread and urgency colours",
	Args:  cobra.NoArgs,
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(_ *cobra.Command, _ []string) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{"markdown": output.HelpMarkdown})
	}

	width := defaultHelpWidth
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	text, err := output.RenderHelp(width, tty && !colorDisabled())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Fprint(os.Stdout, text)
	return nil
}
