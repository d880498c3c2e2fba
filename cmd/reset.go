package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sou9na-labs/soukseed/internal/config"
	"github.com/sou9na-labs/soukseed/internal/seeder"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all seeded collections",
	Long: `
Delete every document from the five target collections (transaction
logs, transactions, products, cooperatives, users) without generating
new data.

⚠️  WARNING: This permanently deletes all data in those collections!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !askUserConfirmation("Are you sure you want to clear the database?") {
			fmt.Println("Reset cancelled")
			return nil
		}

		ctx := context.Background()

		s, err := seeder.New(ctx, cfg, 0)
		if err != nil {
			return err
		}
		defer s.Close()

		s.Reset(ctx)
		return nil
	},
}

func askUserConfirmation(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
