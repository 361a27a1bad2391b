package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "demoseed",
	Short: "Seed a disposable PostgreSQL database with a consistent demo dataset",
	Long: `
demoseed creates and populates a twelve-table relational demo schema with
referentially-consistent synthetic data, sized by per-entity scale factors.

The generated database feeds the schema/data migration demo: every foreign
key resolves, payment amounts match their order's line items exactly, and
the whole procedure can be re-run safely without duplicating rows.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("demoseed version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.Red("❌ %v", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./demoseed.config.json)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("demoseed.config")
	}

	viper.SetEnvPrefix("DEMOSEED")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
