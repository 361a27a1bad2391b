package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oc2pg/demoseed/internal/config"
	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/store"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the demo tables and sequences without seeding",
	Long: `
Create every demo table and sequence in dependency order. Objects that
already exist are skipped, so the command can be repeated safely.`,
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
		return lifecycle.EnsureSchema(ctx)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
