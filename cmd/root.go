/*
Copyright © 2026 dexbattle authors
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dexbattle",
	Short: "A deterministic, generation-aware battle simulator",
	Long: `dexbattle resolves scripted or interactive 1v1 battles under the
mechanics of any generation from 1 to 9. Every battle is seeded and its
transcript is appended to a replay log, so the same inputs always produce
the same fight.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(viper.GetBool("verbose"))
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dexbattle.yaml)")
	rootCmd.PersistentFlags().IntP("generation", "g", 0, "generation ruleset, 0 picks the latest")
	rootCmd.PersistentFlags().Int64P("seed", "s", 0, "RNG seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().StringSlice("data-dir", nil, "extra data directories merged over the built-in tables")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	viper.BindPFlag("generation", rootCmd.PersistentFlags().Lookup("generation"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("data_dirs", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dexbattle")
	}

	viper.SetEnvPrefix("DEXBATTLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// settings collects the battle knobs bound from flags, env and the config
// file into one struct.
func settings() (config.Settings, error) {
	var s config.Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}
