package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// contributorsCmd aggregates commit history per author.
var contributorsCmd = &cobra.Command{
	Use:   "contributors [repo-path]",
	Short: "Show per-contributor commit and line totals.",
	Long: `Aggregate the commit history into per-contributor statistics.

For every author the command reports total commits, lines added and
lines deleted, sorted by commit count. It also shows the five highest
and five lowest average-lines-changed-per-commit contributors, skipping
merge commits, automated commits and anyone with fewer than five
qualifying commits.

Examples:
  # Contributor totals for the current repository
  gitpulse contributors

  # Export totals to CSV
  gitpulse contributors --output csv --output-file contributors.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: tabularSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run contributors analysis", err)
		}
	},
}
