package schema

import "time"

// ContributorStats holds the fold of all commits by one author identity.
type ContributorStats struct {
	Name         string `json:"name"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"linesAdded"`
	LinesDeleted int    `json:"linesDeleted"`
}

// ContributorAverage holds the average lines changed per qualifying
// commit for one contributor. Merge and automated commits never count.
type ContributorAverage struct {
	Name         string  `json:"name"`
	Commits      int     `json:"commits"` // Qualifying commit count
	AverageLines float64 `json:"averageLines"`
}

// FileHeatRecord ranks one file by commit frequency and recency.
type FileHeatRecord struct {
	Path         string       `json:"path"`
	Commits      int          `json:"commits"`
	LastModified time.Time    `json:"lastModified"`
	NetLines     int          `json:"netLines"` // Floored to 1 so deleted-from files stay visible
	Churn        int          `json:"churn"`    // Sum of absolute additions and deletions, unfloored
	Category     FileCategory `json:"category"`
	Score        float64      `json:"score"`
}

// FileRank is one entry in a top-files-by-X view.
type FileRank struct {
	Path  string `json:"path"`
	Value int64  `json:"value"`
}

// CommitAward is one entry in a top-commits-by-X leaderboard.
type CommitAward struct {
	Hash    string    `json:"hash"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
	Value   int64     `json:"value"`
}

// WordFrequencyEntry is one ranked word from the commit messages, with a
// display size scaled into the configured range.
type WordFrequencyEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Size  int    `json:"size"`
}

// ReportResult bundles every metric family for the report command.
type ReportResult struct {
	Contributors    []ContributorStats          `json:"contributors"`
	LowestAverages  []ContributorAverage        `json:"lowestAverages"`
	HighestAverages []ContributorAverage        `json:"highestAverages"`
	TimeSeries      []TimeSeriesPoint           `json:"timeSeries"`
	LinearSeries    []LinearSeriesPoint         `json:"linearSeries"`
	FileHeat        []FileHeatRecord            `json:"fileHeat"`
	TopBySize       []FileRank                  `json:"topBySize"`
	TopByChurn      []FileRank                  `json:"topByChurn"`
	Awards          map[AwardKind][]CommitAward `json:"awards"`
	Words           []WordFrequencyEntry        `json:"words"`
}
