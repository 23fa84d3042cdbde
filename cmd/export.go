package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/gitio"
	"github.com/pbaettig/gitpulse/internal/iocache"
	"github.com/pbaettig/gitpulse/internal/parquet"
)

// exportCmd writes the report datasets to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export [repo-path]",
	Short: "Export report data to Parquet for BI tools and analytics",
	Long: `Run the full analysis and write the results to Parquet files.

Exports two datasets:
- File heat - per-file commit counts, churn, net growth and heat scores
- Contributors - per-author commit and line totals

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export the current repository
  gitpulse export --output-file pulse

  # Query the result with DuckDB
  duckdb -c "SELECT * FROM read_parquet('pulse.file_heat.parquet') LIMIT 10"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := gitio.NewLocalGitClient()
		result, err := core.BuildReport(rootCtx, cfg, client, iocache.Manager)
		if err != nil {
			contract.LogFatal("Cannot run export analysis", err)
		}
		if err := parquet.WriteReport(result, cfg); err != nil {
			contract.LogFatal("Failed to export report data", err)
		}
	},
}
