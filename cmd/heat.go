package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// heatCmd ranks files by change frequency and recency.
var heatCmd = &cobra.Command{
	Use:   "heat [repo-path]",
	Short: "Show the files ranked by change frequency and recency.",
	Long: `Rank every file by a heat score combining commit frequency and
recency of change.

Renames carry their history forward, so a moved file keeps its commit
count. Alongside the heat ranking the command prints the twenty largest
files by net line growth and the twenty most churned files.

Examples:
  # Hottest files in the current repository
  gitpulse heat

  # Widen the ranking and favor recency
  gitpulse heat --max-files 100 --heat-recency-weight 0.6 --heat-frequency-weight 0.4`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: tabularSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeat(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run heat analysis", err)
		}
	},
}
