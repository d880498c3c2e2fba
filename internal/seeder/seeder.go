package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/sou9na-labs/soukseed/internal/config"
	"github.com/sou9na-labs/soukseed/internal/store"
)

// Seeder runs the four-stage generation pipeline against a single
// MongoDB connection. Stages are strictly sequential: each one re-reads
// the identifiers it needs from storage, so a run can also resume from a
// persisted intermediate state with the reset skipped.
type Seeder struct {
	cfg   *config.Config
	store *store.Store
	gen   *DataGenerator
}

// New resolves the connection string, connects and prepares the random
// generator. A non-zero seed makes the run reproducible.
func New(ctx context.Context, cfg *config.Config, seed int64) (*Seeder, error) {
	url, usedFallback := cfg.DatabaseURL()
	if usedFallback {
		color.Yellow("⚠️  %s not set, using fallback: %s", cfg.Database.URLEnv, url)
	} else {
		color.Cyan("📡 Using MongoDB URI: %s", config.MaskURI(url))
	}

	color.Cyan("📡 Connecting to MongoDB...")
	st, err := store.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	color.Green("✅ Connected to MongoDB (database: %s)\n", st.Name())

	return &Seeder{
		cfg:   cfg,
		store: st,
		gen:   NewDataGenerator(seed),
	}, nil
}

func (s *Seeder) Close() error {
	return s.store.Close()
}

// Store exposes the underlying connection for commands that only need
// collection counts.
func (s *Seeder) Store() *store.Store {
	return s.store
}

// Reset wipes the five collections child-first. A failing collection is
// logged and skipped so the remaining ones are still cleared.
func (s *Seeder) Reset(ctx context.Context) {
	color.Yellow("🗑️  Clearing existing data...")
	for _, name := range store.ResetOrder {
		deleted, err := s.store.DeleteAll(ctx, name)
		if err != nil {
			color.Yellow("   ⚠️  Error clearing %s: %v", name, err)
			continue
		}
		color.Green("   ✓ Cleared %s: %d documents", name, deleted)
	}
	color.Green("✅ Database cleared")
	fmt.Println()
}

// Run executes the full pipeline: reset (unless skipped), then users,
// cooperatives, products and transactions, each depending on identifiers
// the previous stage persisted. Committed batches are never rolled back
// on failure.
func (s *Seeder) Run(ctx context.Context, skipReset bool) error {
	color.Cyan("🌱 Starting Moroccan data seeding...\n")

	if !skipReset {
		s.Reset(ctx)
	}

	userIDs, err := s.seedUsers(ctx, s.cfg.Seed.Users)
	if err != nil {
		return fmt.Errorf("user generation failed: %w", err)
	}

	coopIDs, err := s.seedCooperatives(ctx, s.cfg.Seed.Cooperatives)
	if err != nil {
		return fmt.Errorf("cooperative generation failed: %w", err)
	}

	productIDs, err := s.seedProducts(ctx, coopIDs, s.cfg.Seed.ProductsPerCooperative)
	if err != nil {
		return fmt.Errorf("product generation failed: %w", err)
	}

	txIDs, err := s.seedTransactions(ctx, s.cfg.Seed.Transactions)
	if err != nil {
		return fmt.Errorf("transaction generation failed: %w", err)
	}

	color.Green("🎉 Seeding completed successfully!")
	fmt.Println()
	color.Cyan("📊 Summary:")
	fmt.Printf("   👥 Users:        %d\n", len(userIDs))
	fmt.Printf("   🏪 Cooperatives: %d\n", len(coopIDs))
	fmt.Printf("   📦 Products:     %d\n", len(productIDs))
	fmt.Printf("   💳 Transactions: %d\n", len(txIDs))
	fmt.Println()
	color.Green("✅ Database is ready with realistic Moroccan data!")
	return nil
}
