package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
)

// wordsCmd builds the commit message word frequency table.
var wordsCmd = &cobra.Command{
	Use:   "words [repo-path]",
	Short: "Show the most frequent words in commit messages.",
	Long: `Tokenize every commit message and rank the remaining words by
frequency.

Tokens are lowercased; stop words, numbers and tokens below the minimum
length are discarded. Each surviving word carries a display size scaled
linearly between the configured bounds, suitable for word cloud
rendering.

Examples:
  # Word frequencies for the current repository
  gitpulse words

  # Keep more and longer words
  gitpulse words --max-words 100 --min-word-length 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: tabularSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWords(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run words analysis", err)
		}
	},
}
