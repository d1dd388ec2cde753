package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/directory"
	"github.com/twiced-technology-gmbh/choremate/internal/output"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with example chores",
	Long: `Creates example chores with made-up completion histories, useful for trying
out the list and the urgency colours. --reset removes every existing chore first.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().Int("count", 12, "number of chores to create") //nolint:mnd // a screenful
	seedCmd.Flags().Uint64("seed", 1, "random seed")
	seedCmd.Flags().Bool("reset", false, "remove all chores before seeding")
	seedCmd.Flags().BoolP("yes", "y", false, "skip the --reset confirmation prompt")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return clierr.New(clierr.InvalidInput, "--count must be at least 1")
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	reset, _ := cmd.Flags().GetBool("reset")
	yes, _ := cmd.Flags().GetBool("yes")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if reset {
		ok, err := confirm(yes, "Remove every chore before seeding?")
		if err != nil || !ok {
			return err
		}
	}

	var ids []int64
	err = s.mutate(func() error {
		if reset {
			if err := s.dir.Reset(); err != nil {
				return err
			}
		}
		ids, err = s.dir.Seed(directory.SeedOptions{
			Count: count,
			Rand:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // example data
		})
		return err
	})
	if err != nil {
		return err
	}

	return printResult(output.Result{Action: "seed"}, "Seeded %d example chores", len(ids))
}
