package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long:  `View the full configuration, get a specific key, or set a writable value.`,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// allConfigKeys returns every readable key in display order.
func allConfigKeys() []string {
	keys := []string{"dir", "version", "database", "day_resolution", "name_width"}
	for i := len(forecast.Buckets) - 1; i >= 0; i-- {
		keys = append(keys, "colors."+strconv.Itoa(int(forecast.Buckets[i])))
	}
	return keys
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keys := allConfigKeys()
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		values[key] = v
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, values)
	}

	// Table mode: key-value pairs.
	for _, key := range keys {
		fmt.Fprintf(os.Stdout, "%-20s %s\n", key, values[key])
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key := args[0]
	val, err := cfg.Get(key)
	if err != nil {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key).
			WithDetails(map[string]any{"key": key})
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{"key": key, "value": val})
	}

	fmt.Fprintln(os.Stdout, val)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return configError(err, cfg.Dir())
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	val, _ := cfg.Get(key)
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{"key": key, "value": val})
	}

	output.Messagef(os.Stdout, "Set %s = %s", key, val)
	return nil
}

