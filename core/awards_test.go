package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/internal/classify"
	"github.com/pbaettig/gitpulse/schema"
)

func awardCommit(hash string, files, added, deleted int, message string) schema.CommitRecord {
	changes := make([]schema.FileChange, files)
	for i := range changes {
		changes[i] = schema.FileChange{Path: "f.go"}
	}
	return schema.CommitRecord{
		Hash:         hash,
		Author:       "Alice",
		Timestamp:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Message:      message,
		LinesAdded:   added,
		LinesDeleted: deleted,
		BytesAdded:   int64(added) * 10,
		BytesDeleted: int64(deleted) * 10,
		Files:        changes,
	}
}

func TestTopCommitsByKinds(t *testing.T) {
	commits := []schema.CommitRecord{
		awardCommit("c1", 1, 100, 5, "big add"),
		awardCommit("c2", 8, 10, 50, "wide cleanup"),
		awardCommit("c3", 2, 30, 90, "big delete"),
	}
	classifier := classify.NewMessageClassifier()

	tests := []struct {
		kind schema.AwardKind
		top  string
		val  int64
	}{
		{schema.AwardFilesTouched, "c2", 8},
		{schema.AwardLinesAdded, "c1", 100},
		{schema.AwardLinesRemoved, "c3", 90},
		{schema.AwardBytesAdded, "c1", 1000},
		{schema.AwardBytesRemoved, "c3", 900},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			awards := TopCommitsBy(commits, tt.kind, classifier)
			require.NotEmpty(t, awards)
			assert.Equal(t, tt.top, awards[0].Hash)
			assert.Equal(t, tt.val, awards[0].Value)
		})
	}
}

func TestTopCommitsByExcludesMergeAndAutomated(t *testing.T) {
	commits := []schema.CommitRecord{
		awardCommit("m1", 50, 5000, 0, "Merge pull request #42 from feature/huge"),
		awardCommit("b1", 40, 4000, 0, "chore(release): 2.0.0 [bot]"),
		awardCommit("c1", 3, 30, 0, "real change"),
	}

	awards := TopCommitsBy(commits, schema.AwardLinesAdded, classify.NewMessageClassifier())
	require.Len(t, awards, 1)
	assert.Equal(t, "c1", awards[0].Hash)
}

func TestTopCommitsByStableTies(t *testing.T) {
	commits := []schema.CommitRecord{
		awardCommit("first", 2, 10, 0, "a"),
		awardCommit("second", 2, 10, 0, "b"),
		awardCommit("third", 2, 10, 0, "c"),
	}

	awards := TopCommitsBy(commits, schema.AwardLinesAdded, classify.NewMessageClassifier())
	require.Len(t, awards, 3)
	assert.Equal(t, "first", awards[0].Hash)
	assert.Equal(t, "second", awards[1].Hash)
	assert.Equal(t, "third", awards[2].Hash)
}

func TestTopCommitsByCap(t *testing.T) {
	var commits []schema.CommitRecord
	for i := 0; i < 10; i++ {
		commits = append(commits, awardCommit("c", 1, 10+i, 0, "change"))
	}

	awards := TopCommitsBy(commits, schema.AwardLinesAdded, classify.NewMessageClassifier())
	assert.Len(t, awards, awardLimit)
	assert.Equal(t, int64(19), awards[0].Value)
}

func TestAllAwardsCoversEveryKind(t *testing.T) {
	commits := []schema.CommitRecord{
		awardCommit("c1", 2, 20, 10, "change"),
	}

	awards := AllAwards(commits, classify.NewMessageClassifier())
	require.Len(t, awards, len(schema.AllAwardKinds))
	for _, kind := range schema.AllAwardKinds {
		assert.Contains(t, awards, kind)
	}
}
