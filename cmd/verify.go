package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oc2pg/demoseed/internal/config"
	"github.com/oc2pg/demoseed/internal/store"
	"github.com/oc2pg/demoseed/internal/verify"
)

var verifyOut string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the seeded dataset for consistency",
	Long: `
Count every table, check each foreign key for orphaned rows, and compare
payment amounts against the exact sum of their order's line items.

Examples:
  demoseed verify                      # Print the report
  demoseed verify --out report.yaml    # Also write it as YAML`,
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

		report, err := verify.Run(ctx, st, cfg.Database.Schema)
		if err != nil {
			return err
		}

		color.Cyan("📊 Row counts:")
		for _, c := range report.Counts {
			fmt.Printf("   %-26s %d\n", c.Table, c.Rows)
		}

		for _, o := range report.Orphans {
			if o.Count > 0 {
				color.Red("❌ %d orphaned rows in %s (missing %s)", o.Count, o.Child, o.Parent)
			}
		}
		for _, id := range report.PaymentMismatches {
			color.Red("❌ Payment for order %d does not match its items", id)
		}

		if verifyOut != "" {
			if err := verify.WriteYAML(report, verifyOut); err != nil {
				return err
			}
			color.Cyan("📝 Report written to %s", verifyOut)
		}

		if !report.OK {
			return fmt.Errorf("dataset verification failed")
		}
		color.Green("✅ Dataset is consistent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyOut, "out", "", "Write the report to a YAML file")
}
