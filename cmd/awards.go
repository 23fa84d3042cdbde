package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// awardsCmd prints the commit leaderboards.
var awardsCmd = &cobra.Command{
	Use:   "awards [repo-path]",
	Short: "Show the top commits by lines, bytes and files touched.",
	Long: `Rank commits on five leaderboards: lines added, lines removed,
bytes added, bytes removed and files touched.

Each leaderboard holds the top five commits. Merge commits and
automated commits are excluded so the boards reflect real authored
work.

Examples:
  # Leaderboards for the current repository
  gitpulse awards

  # Leaderboards as JSON
  gitpulse awards --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: tabularSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAwards(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run awards analysis", err)
		}
	},
}
