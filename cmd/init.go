package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/config"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
	"github.com/twiced-technology-gmbh/choremate/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a data directory",
	Long: `Creates a data directory with config.yml and an empty chore database.
Without --dir the home default ($` + config.HomeEnv + ` or ~/.config/choremate) is used.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("exact", false, "classify urgency against the current time instead of the start of the day")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _, err := resolveDir()
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	// Check if already initialized.
	if _, err := os.Stat(filepath.Join(absDir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.InvalidInput, "choremate already initialized in %s", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	cfg, err := config.Init(absDir)
	if err != nil {
		return err
	}
	if exact, _ := cmd.Flags().GetBool("exact"); exact {
		cfg.DayResolution = false
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}
	if flagDB != "" {
		cfg.OverrideDatabase(flagDB)
	}

	s, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	_ = s.Close()

	// Output result.
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status":   "initialized",
			"dir":      absDir,
			"config":   cfg.ConfigPath(),
			"database": cfg.DatabasePath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized choremate in %s", absDir)
	output.Messagef(os.Stdout, "  Config:   %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Database: %s", cfg.DatabasePath())
	output.Messagef(os.Stdout, "  Hint:     Add a chore with: choremate add \"water plants\"")
	return nil
}
