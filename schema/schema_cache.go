package schema

import "time"

// FileAnalysis is the cached per-file fold a heat ranking is derived
// from. It is the second cache partition next to commit snapshots.
type FileAnalysis struct {
	Path         string       `json:"path"`
	Commits      int          `json:"commits"`
	NetLines     int          `json:"netLines"` // Raw net, may be negative
	Churn        int          `json:"churn"`
	LastModified time.Time    `json:"lastModified"`
	Category     FileCategory `json:"category"`
}

// CacheStats summarizes both cache partitions. Oldest and Newest are nil
// when the cache is empty; an empty cache is not an error.
type CacheStats struct {
	Backend        string     `json:"backend"`
	Entries        int        `json:"entries"`
	TotalSizeBytes int64      `json:"totalSizeBytes"`
	Oldest         *time.Time `json:"oldest,omitempty"`
	Newest         *time.Time `json:"newest,omitempty"`
}
