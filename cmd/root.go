// Package cmd implements the choremate CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/config"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/filelock"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
	"github.com/twiced-technology-gmbh/choremate/internal/store"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagDB      string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "choremate",
	Short: "Forecast when recurring chores need doing",
	Long: `choremate learns how often each chore recurs from its completion history,
forecasts the next time it will be needed and ranks chores by urgency.
Run choremate without a command to open the interactive list.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if colorDisabled() {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to the data directory (default $"+config.HomeEnv+" or ~/.config/choremate)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the database file, overriding the configured one")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// SilentError: exit with its code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	if outputFormat() == output.FormatJSON {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Uncoded errors are reported as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, "Error:", err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

func colorDisabled() bool {
	return flagNoColor || os.Getenv("NO_COLOR") != ""
}

// resolveDir returns the data directory: --dir, else the home default.
func resolveDir() (dir string, isDefault bool, err error) {
	if flagDir != "" {
		return flagDir, false, nil
	}
	dir, err = config.DefaultHome()
	return dir, true, err
}

// loadConfig finds and loads the config. The home default is created on
// first use; an explicit --dir must have been initialized.
func loadConfig() (*config.Config, error) {
	dir, isDefault, err := resolveDir()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if isDefault {
		cfg, err = config.LoadOrInit(dir)
	} else {
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, configError(err, dir)
	}

	if flagDB != "" {
		cfg.OverrideDatabase(flagDB)
	}
	if !colorDisabled() {
		output.SetPalette(cfg.Colors)
	}
	return cfg, nil
}

// configError maps config package errors to coded CLI errors.
func configError(err error, dir string) error {
	switch {
	case errors.Is(err, config.ErrNotFound):
		return clierr.New(clierr.ConfigNotFound, err.Error()).
			WithDetails(map[string]any{"dir": dir})
	case errors.Is(err, config.ErrInvalid):
		return clierr.New(clierr.InvalidInput, err.Error())
	}
	return err
}

// session bundles the resources a command works with.
type session struct {
	cfg   *config.Config
	store *store.SQLite
	dir   *directory.Directory
}

// openSession loads the config and opens the chore database.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:   cfg,
		store: s,
		dir: directory.New(s, directory.Options{
			LogPath:       cfg.LogPath(),
			DayResolution: cfg.DayResolution,
		}),
	}, nil
}

// Close releases the database.
func (s *session) Close() {
	_ = s.store.Close()
}

// mutate runs fn while holding the database's writer lock.
func (s *session) mutate(fn func() error) error {
	return filelock.With(s.cfg.DatabasePath(), fn)
}

// resolveChore turns a tag or #ID typed on the command line into a chore id.
// Tags refer to the unfiltered listing order.
func (s *session) resolveChore(ref string) (int64, error) {
	l, err := s.dir.List(directory.ListOptions{})
	if err != nil {
		return 0, err
	}
	return l.Resolve(ref)
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// printResult reports a completed mutation.
func printResult(res output.Result, format string, args ...any) error {
	res.OK = true
	if outputFormat() == output.FormatJSON {
		if res.Message == "" {
			res.Message = fmt.Sprintf(format, args...)
		}
		return output.JSON(os.Stdout, res)
	}
	output.Messagef(os.Stdout, format, args...)
	return nil
}
