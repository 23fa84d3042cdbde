package core

import (
	"sort"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// awardLimit caps every leaderboard.
const awardLimit = 5

// awardValue extracts the ranked scalar for one commit.
func awardValue(commit schema.CommitRecord, kind schema.AwardKind) int64 {
	switch kind {
	case schema.AwardFilesTouched:
		return int64(len(commit.Files))
	case schema.AwardBytesAdded:
		return commit.BytesAdded
	case schema.AwardBytesRemoved:
		return commit.BytesDeleted
	case schema.AwardLinesAdded:
		return int64(commit.LinesAdded)
	case schema.AwardLinesRemoved:
		return int64(commit.LinesDeleted)
	}
	return 0
}

// TopCommitsBy ranks commits by one scalar, excluding merge and
// automated commits, and returns the top entries with stable
// tie-breaking (input order preserved among equal values).
func TopCommitsBy(commits []schema.CommitRecord, kind schema.AwardKind, classifier contract.CommitClassifier) []schema.CommitAward {
	var awards []schema.CommitAward
	for _, commit := range commits {
		if classifier.IsMerge(commit.Message) || classifier.IsAutomated(commit.Message) {
			continue
		}
		awards = append(awards, schema.CommitAward{
			Hash:    commit.Hash,
			Author:  commit.Author,
			Date:    commit.Timestamp,
			Message: commit.Message,
			Value:   awardValue(commit, kind),
		})
	}

	sort.SliceStable(awards, func(i, j int) bool {
		return awards[i].Value > awards[j].Value
	})
	if len(awards) > awardLimit {
		awards = awards[:awardLimit]
	}
	return awards
}

// AllAwards builds every leaderboard in one pass over the kinds.
func AllAwards(commits []schema.CommitRecord, classifier contract.CommitClassifier) map[schema.AwardKind][]schema.CommitAward {
	awards := make(map[schema.AwardKind][]schema.CommitAward, len(schema.AllAwardKinds))
	for _, kind := range schema.AllAwardKinds {
		awards[kind] = TopCommitsBy(commits, kind, classifier)
	}
	return awards
}
