// Package cmd defines the command-line interface for gitpulse.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(heatCmd)
	rootCmd.AddCommand(timeseriesCmd)
	rootCmd.AddCommand(awardsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheCleanupCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql, or SQLite file path override")
	rootCmd.PersistentFlags().String("cache-idle-timeout", "", "Cache entries expire this long after their last access (e.g. 168h)")
	rootCmd.PersistentFlags().String("cache-max-age", "", "Cache entries expire this long after creation regardless of access (e.g. 720h)")
	rootCmd.PersistentFlags().Float64("heat-decay-days", contract.DefaultHeatDecayDays, "Recency decay constant in days for file heat")
	rootCmd.PersistentFlags().Float64("heat-frequency-weight", contract.DefaultHeatFrequencyWeight, "Weight of commit frequency in the heat score (weights must sum to 1.0)")
	rootCmd.PersistentFlags().Float64("heat-recency-weight", contract.DefaultHeatRecencyWeight, "Weight of recency in the heat score (weights must sum to 1.0)")
	rootCmd.PersistentFlags().Int("max-files", contract.DefaultMaxFilesDisplayed, "Number of files to display in the heat ranking")
	rootCmd.PersistentFlags().Int("min-word-length", contract.DefaultMinWordLength, "Discard commit message tokens shorter than this")
	rootCmd.PersistentFlags().Int("max-words", contract.DefaultMaxWords, "Number of words to keep in the frequency table")
	rootCmd.PersistentFlags().Int("min-word-size", contract.DefaultMinWordSize, "Display size assigned to the least frequent word")
	rootCmd.PersistentFlags().Int("max-word-size", contract.DefaultMaxWordSize, "Display size assigned to the most frequent word")
	rootCmd.PersistentFlags().Int("hourly-threshold", contract.DefaultHourlyThresholdHours, "Repositories spanning fewer hours than this bucket hourly, otherwise daily")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
