package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sou9na-labs/soukseed/internal/config"
	"github.com/sou9na-labs/soukseed/internal/seeder"
	"github.com/sou9na-labs/soukseed/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show document counts for the seeded collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		s, err := seeder.New(ctx, cfg, 0)
		if err != nil {
			return err
		}
		defer s.Close()

		color.Cyan("📊 Collection counts in %s:", s.Store().Name())
		for _, name := range []string{store.Users, store.Cooperatives, store.Products, store.Transactions, store.TransactionLogs} {
			count, err := s.Store().Count(ctx, name)
			if err != nil {
				color.Yellow("   ⚠️  %s: %v", name, err)
				continue
			}
			fmt.Printf("   %-16s %d\n", name, count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
