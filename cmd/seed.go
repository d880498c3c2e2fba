package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sou9na-labs/soukseed/internal/config"
	"github.com/sou9na-labs/soukseed/internal/seeder"
)

var (
	seedUserCount    int
	seedCoopCount    int
	seedProductCount int
	seedTxCount      int
	seedRandSeed     int64
	seedNoReset      bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run the full data generation pipeline",
	Long: `Wipe the target collections and regenerate users, cooperatives,
products and transactions in order. Counts come from the config file and
can be overridden per run with flags.

Pass --seed for a reproducible run, or --no-reset to generate on top of
data persisted by an earlier run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if seedUserCount > 0 {
			cfg.Seed.Users = seedUserCount
		}
		if seedCoopCount > 0 {
			cfg.Seed.Cooperatives = seedCoopCount
		}
		if seedProductCount > 0 {
			cfg.Seed.ProductsPerCooperative = seedProductCount
		}
		if seedTxCount > 0 {
			cfg.Seed.Transactions = seedTxCount
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := context.Background()

		s, err := seeder.New(ctx, cfg, seedRandSeed)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Run(ctx, seedNoReset)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedUserCount, "users", 0, "Number of users to create (default from config)")
	seedCmd.Flags().IntVar(&seedCoopCount, "cooperatives", 0, "Number of cooperatives to create (default from config)")
	seedCmd.Flags().IntVar(&seedProductCount, "products", 0, "Products per cooperative (default from config)")
	seedCmd.Flags().IntVar(&seedTxCount, "transactions", 0, "Number of transactions to create (default from config)")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "Random seed for reproducible runs (0 = time-based)")
	seedCmd.Flags().BoolVar(&seedNoReset, "no-reset", false, "Skip clearing collections before generating")
}
