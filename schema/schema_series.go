package schema

import "time"

// SeriesTotals carries the per-bucket deltas and the running totals up
// to and including that bucket.
type SeriesTotals struct {
	LinesAdded      int   `json:"linesAdded"`
	LinesDeleted    int   `json:"linesDeleted"`
	CumulativeLines int   `json:"cumulativeLines"`
	CumulativeBytes int64 `json:"cumulativeBytes"`
}

// TimeSeriesPoint is one time bucket of repository growth. Category
// cumulative values sum to the total cumulative value at every point.
type TimeSeriesPoint struct {
	Bucket     time.Time                     `json:"bucket"` // Bucket start, UTC
	Categories map[FileCategory]SeriesTotals `json:"categories"`
	Total      SeriesTotals                  `json:"total"`
}

// LinearSeriesPoint is one commit of the per-commit cumulative series.
// Index 0 is a synthetic all-zero baseline preceding the first commit.
type LinearSeriesPoint struct {
	Index           int    `json:"index"`
	Hash            string `json:"hash,omitempty"`
	NetLines        int    `json:"netLines"`
	NetBytes        int64  `json:"netBytes"`
	CumulativeLines int    `json:"cumulativeLines"`
	CumulativeBytes int64  `json:"cumulativeBytes"`
}
