// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/pbaettig/gitpulse/schema"
)

// GitClient defines the operations the pipeline needs from a repository.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its output. Its use should
	// be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// HeadCommit returns the current HEAD commit hash. It is bounded by a
	// hard timeout and fails loudly on timeout or non-zero exit, because
	// no cache decision can be made against an unreachable repository.
	HeadCommit(ctx context.Context, repoPath string) (string, error)

	// RemoteURL returns the origin remote URL, or an error when no
	// remote is configured.
	RemoteURL(ctx context.Context, repoPath string) (string, error)

	// RootCommit returns the first commit hash of the current branch.
	RootCommit(ctx context.Context, repoPath string) (string, error)

	// RepoRoot returns the absolute path to the repository root
	// containing the given context path.
	RepoRoot(ctx context.Context, contextPath string) (string, error)

	// CollectCommits returns the full commit history, oldest first.
	CollectCommits(ctx context.Context, repoPath string) ([]schema.CommitRecord, error)
}

// FileClassifier assigns a reporting category to a file path.
type FileClassifier interface {
	Classify(path string) schema.FileCategory
}

// CommitClassifier flags merge and automated commits by message.
type CommitClassifier interface {
	IsMerge(message string) bool
	IsAutomated(message string) bool
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetSnapshotStore() SnapshotStore
	GetFileStore() FileStore
}

// SnapshotStore caches whole commit-list snapshots keyed by repository
// path and state fingerprint. Get returns (nil, false) on any miss,
// including expired or corrupt entries; it never surfaces per-entry
// errors to callers.
type SnapshotStore interface {
	Get(repoPath, fingerprint string) ([]schema.CommitRecord, bool)
	Set(repoPath, fingerprint string, commits []schema.CommitRecord) error
	Close() error
}

// FileStore caches per-file analysis results keyed by repository path,
// state fingerprint and file path. Same miss semantics as SnapshotStore.
type FileStore interface {
	Get(repoPath, fingerprint, filePath string) (*schema.FileAnalysis, bool)
	Set(repoPath, fingerprint string, analysis schema.FileAnalysis) error
	Close() error
}

// CacheAdmin groups the maintenance operations shared by both cache
// partitions. The manager implements it across the whole cache.
type CacheAdmin interface {
	CleanupExpired() (removed int, err error)
	Clear() error
	Stats() (schema.CacheStats, error)
}
