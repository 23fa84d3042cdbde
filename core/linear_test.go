package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

func TestLinearSeriesSingleCommit(t *testing.T) {
	commits := []schema.CommitRecord{
		{Hash: "abc", Author: "Alice", LinesAdded: 50, LinesDeleted: 10},
	}

	points := LinearSeries(commits)
	require.Len(t, points, 2)

	assert.Equal(t, schema.LinearSeriesPoint{Index: 0}, points[0])
	assert.Equal(t, 40, points[1].CumulativeLines)
	assert.Equal(t, "abc", points[1].Hash)
}

func TestLinearSeriesConservation(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	commits := []schema.CommitRecord{
		{Hash: "c1", Author: "Alice", Timestamp: base, LinesAdded: 100, LinesDeleted: 40, BytesAdded: 4000, BytesDeleted: 1600},
		{Hash: "c2", Author: "Bob", Timestamp: base.Add(time.Hour), LinesAdded: 5, LinesDeleted: 25, BytesAdded: 200, BytesDeleted: 1000},
		{Hash: "c3", Author: "Alice", Timestamp: base.Add(2 * time.Hour), LinesAdded: 7, LinesDeleted: 7, BytesAdded: 280, BytesDeleted: 280},
	}

	points := LinearSeries(commits)
	require.Len(t, points, 4)

	wantLines, wantBytes := 0, int64(0)
	for _, commit := range commits {
		wantLines += commit.NetLines()
		wantBytes += commit.NetBytes()
	}
	final := points[len(points)-1]
	assert.Equal(t, wantLines, final.CumulativeLines)
	assert.Equal(t, wantBytes, final.CumulativeBytes)

	// Points follow input order, not time order, and carry per-commit
	// deltas.
	assert.Equal(t, "c2", points[2].Hash)
	assert.Equal(t, -20, points[2].NetLines)
	assert.Equal(t, 40, points[3].CumulativeLines)
}

func TestLinearSeriesEmptyInput(t *testing.T) {
	assert.Nil(t, LinearSeries(nil))
}

func TestLinearSeriesIdempotence(t *testing.T) {
	commits := []schema.CommitRecord{
		{Hash: "c1", Author: "Alice", LinesAdded: 10, LinesDeleted: 3},
		{Hash: "c2", Author: "Bob", LinesAdded: 1, LinesDeleted: 9},
	}
	assert.Equal(t, LinearSeries(commits), LinearSeries(commits))
}
