package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oc2pg/demoseed/internal/config"
	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/seed"
	"github.com/oc2pg/demoseed/internal/store"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the demo dataset",
	Long: `
Ensure the schema exists and populate every table in dependency order.

Parents are always seeded before children, each foreign key is spread over
its parent set deterministically, and payment amounts are derived from the
already-inserted order items. Rows surviving a previous run are skipped, so
repeating the command leaves counts unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		st, err := store.Open(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		lifecycle := schema.NewLifecycle(store.NewGuard(st), cfg.Database.Schema)
		if seedReset {
			if err := lifecycle.ResetAll(ctx); err != nil {
				return err
			}
		}
		if err := lifecycle.EnsureSchema(ctx); err != nil {
			return err
		}

		return seed.NewSeeder(cfg, st).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Drop and recreate the schema before seeding")
}
