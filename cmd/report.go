package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// reportCmd runs every metric family in one pass.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Produce the combined statistics report for a repository.",
	Long: `Walk the commit history once and print every metric family.

The report bundles:
- Per-contributor commit and line totals
- Average lines changed per commit (highest and lowest five)
- Codebase growth over time, bucketed hourly or daily
- File heat ranking with top-by-size and top-by-churn views
- Commit leaderboards for lines, bytes and files touched
- Commit message word frequencies

Examples:
  # Report on the current repository
  gitpulse report

  # Report on another repository as JSON
  gitpulse report ~/src/linux --output json

  # Export the report datasets to Parquet files
  gitpulse report --output parquet --output-file pulse`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
