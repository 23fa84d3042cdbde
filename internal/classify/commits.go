package classify

import (
	"strings"

	"github.com/pbaettig/gitpulse/internal/contract"
)

// MessageClassifier flags merge and automated commits from their
// messages. It is the default contract.CommitClassifier implementation.
type MessageClassifier struct{}

var _ contract.CommitClassifier = &MessageClassifier{} // Compile-time check

// NewMessageClassifier creates the default commit classifier.
func NewMessageClassifier() *MessageClassifier {
	return &MessageClassifier{}
}

// mergePrefixes match the messages git generates for merges.
var mergePrefixes = []string{
	"merge branch",
	"merge pull request",
	"merge remote-tracking branch",
	"merged in",
}

// automatedMarkers match messages produced by bots and release tooling.
var automatedMarkers = []string{
	"[bot]",
	"[automated]",
	"[skip ci]",
	"dependabot",
	"renovate",
	"auto-generated",
	"automatic update",
	"bump version",
	"chore(release):",
}

// IsMerge reports whether the message is a git merge commit message.
func (c *MessageClassifier) IsMerge(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, p := range mergePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// IsAutomated reports whether the message looks machine-generated.
func (c *MessageClassifier) IsAutomated(message string) bool {
	lower := strings.ToLower(message)
	for _, m := range automatedMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
