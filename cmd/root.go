package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "soukseed",
	Short: "Populate the sou9na marketplace database with Moroccan demo data",
	Long: `
soukseed fills a MongoDB database with synthetic, regionally themed
marketplace data for demos and testing: users with Moroccan names,
producer-owned cooperatives across the twelve regions, localized product
catalogs and a realistic escrow transaction ledger.

The pipeline is wipe-and-regenerate: every run clears the five target
collections before inserting fresh data, unless told otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			cmd.Printf("soukseed version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./soukseed.config.json)")
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
		viper.SetConfigName("soukseed.config")
	}

	viper.AutomaticEnv()

	// Config file is optional; defaults cover a local MongoDB.
	viper.ReadInConfig()
}
