package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// timeseriesCmd charts codebase growth over time.
var timeseriesCmd = &cobra.Command{
	Use:   "timeseries [repo-path]",
	Short: "Show codebase growth bucketed over time.",
	Long: `Chart cumulative line and byte growth across the repository's life.

Commits are bucketed hourly when the history spans fewer hours than the
hourly threshold, daily otherwise. Every bucket carries per-category
cumulative totals (source, config, documentation, generated, other)
plus a per-commit growth curve.

Examples:
  # Growth of the current repository
  gitpulse timeseries

  # Force hourly buckets for a week-old repository
  gitpulse timeseries --hourly-threshold 200`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: tabularSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimeseries(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run timeseries analysis", err)
		}
	},
}
