package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oc2pg/demoseed/internal/config"
	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every demo table and sequence",
	Long: `
Drop all demo tables (children first) and their sequences. Objects that are
already gone are skipped, so reset works against a partial or empty schema.

Examples:
  demoseed reset            # Prompt before dropping
  demoseed reset --force    # Skip the confirmation prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			color.Yellow("⚠️  This will drop every table in schema '%s'", cfg.Database.Schema)
			fmt.Println()

			var confirm string
			fmt.Print("Continue? (y/N): ")
			fmt.Scanln(&confirm)

			if confirm != "y" && confirm != "Y" {
				color.Cyan("❌ Cancelled")
				return nil
			}
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
		return lifecycle.ResetAll(ctx)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
