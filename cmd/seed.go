package cmd

import (
	"fmt"
	"time"

	"review-listing/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert generated reviews",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().Int("count", 50, "Number of reviews to insert")
	seedCmd.Flags().Int("days", 90, "Spread posting dates over this many past days")
	seedCmd.Flags().Int64("seed", 0, "Random seed (default is the current time)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	days, _ := cmd.Flags().GetInt("days")
	randSeed, _ := cmd.Flags().GetInt64("seed")
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	// Seeding an empty database is the common case
	if err := rt.migrate(); err != nil {
		return err
	}

	service := usecase.NewService(rt.repo, rt.config, rt.logger)
	inserted, err := service.Seed.SeedReviews(cmd.Context(), count, days, randSeed)
	if err != nil {
		rt.logger.Error("Seeding failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d reviews\n", inserted)
	return nil
}
