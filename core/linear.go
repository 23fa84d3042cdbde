package core

import "github.com/pbaettig/gitpulse/schema"

// LinearSeries builds the per-commit cumulative curve: one point per
// commit in input order, preceded by a synthetic all-zero point at
// index zero. The final cumulative values equal the sum of all deltas.
func LinearSeries(commits []schema.CommitRecord) []schema.LinearSeriesPoint {
	if len(commits) == 0 {
		return nil
	}

	points := make([]schema.LinearSeriesPoint, 0, len(commits)+1)
	points = append(points, schema.LinearSeriesPoint{Index: 0})

	cumLines := 0
	var cumBytes int64
	for i, commit := range commits {
		netLines := commit.NetLines()
		netBytes := commit.NetBytes()
		cumLines += netLines
		cumBytes += netBytes
		points = append(points, schema.LinearSeriesPoint{
			Index:           i + 1,
			Hash:            commit.Hash,
			NetLines:        netLines,
			NetBytes:        netBytes,
			CumulativeLines: cumLines,
			CumulativeBytes: cumBytes,
		})
	}
	return points
}
