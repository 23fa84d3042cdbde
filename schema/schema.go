// Package schema has configs, models and constants for all parts of gitpulse.
package schema

import "time"

// CommitRecord represents one commit as produced by the commit source.
// Records are immutable once collected; every calculator reads them and
// none mutates them.
type CommitRecord struct {
	Hash         string       `json:"hash"`         // Full commit identifier
	Author       string       `json:"author"`       // Author name
	Email        string       `json:"email"`        // Author email
	Timestamp    time.Time    `json:"timestamp"`    // Author date
	Message      string       `json:"message"`      // First line of the commit message
	LinesAdded   int          `json:"linesAdded"`   // Aggregate lines added across all files
	LinesDeleted int          `json:"linesDeleted"` // Aggregate lines deleted across all files
	BytesAdded   int64        `json:"bytesAdded"`   // Aggregate bytes added (0 when unknown)
	BytesDeleted int64        `json:"bytesDeleted"` // Aggregate bytes deleted (0 when unknown)
	Files        []FileChange `json:"files"`        // Per-file deltas, in git output order
}

// FileChange represents the delta one commit applied to one file.
type FileChange struct {
	Path         string       `json:"path"`
	LinesAdded   int          `json:"linesAdded"`
	LinesDeleted int          `json:"linesDeleted"`
	BytesAdded   int64        `json:"bytesAdded,omitempty"`
	BytesDeleted int64        `json:"bytesDeleted,omitempty"`
	Category     FileCategory `json:"category,omitempty"`    // Set by the file classifier
	RenamedFrom  string       `json:"renamedFrom,omitempty"` // Previous path when git reports a rename
}

// NetLines returns the net line delta of the commit.
func (c *CommitRecord) NetLines() int {
	return c.LinesAdded - c.LinesDeleted
}

// NetBytes returns the net byte delta of the commit.
func (c *CommitRecord) NetBytes() int64 {
	return c.BytesAdded - c.BytesDeleted
}
