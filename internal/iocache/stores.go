package iocache

import (
	"encoding/json"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// SnapshotStoreImpl persists whole commit-list snapshots. Every failure
// mode of Get degrades to a miss so a broken cache never blocks report
// generation.
type SnapshotStoreImpl struct {
	db *cacheDB
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// Get returns the cached commit snapshot for (repoPath, fingerprint).
// It reports a miss on absent, expired, corrupt or version-mismatched
// entries; expired entries are deleted as a side effect. On a hit the
// entry's lastAccessed timestamp is persisted before returning.
func (s *SnapshotStoreImpl) Get(repoPath, fingerprint string) ([]schema.CommitRecord, bool) {
	key := cacheKey(snapshotPurpose, repoPath, fingerprint, "")
	row, err := s.db.getEntry(snapshotTable, key)
	if err != nil {
		if !isMissErr(err) {
			contract.LogWarn("snapshot cache read failed", err)
		}
		return nil, false
	}

	if row.version != currentSchemaVersion {
		return nil, false
	}
	if s.db.isExpired(row) {
		if err := s.db.deleteEntry(snapshotTable, key); err != nil {
			contract.LogWarn("failed to delete expired snapshot entry", err)
		}
		return nil, false
	}

	var commits []schema.CommitRecord
	if err := json.Unmarshal(row.payload, &commits); err != nil {
		contract.LogWarn("snapshot cache entry is corrupt", err)
		if err := s.db.deleteEntry(snapshotTable, key); err != nil {
			contract.LogWarn("failed to delete corrupt snapshot entry", err)
		}
		return nil, false
	}

	if err := s.db.touchEntry(snapshotTable, key); err != nil {
		contract.LogWarn("failed to refresh snapshot access time", err)
		return nil, false
	}
	return commits, true
}

// Set creates or overwrites the snapshot for (repoPath, fingerprint).
func (s *SnapshotStoreImpl) Set(repoPath, fingerprint string, commits []schema.CommitRecord) error {
	payload, err := json.Marshal(commits)
	if err != nil {
		return err
	}
	key := cacheKey(snapshotPurpose, repoPath, fingerprint, "")
	return s.db.putEntry(snapshotTable, key, repoPath, payload)
}

// Close closes the shared connection.
func (s *SnapshotStoreImpl) Close() error {
	return s.db.Close()
}

// FileStoreImpl persists per-file analysis results with the same miss
// semantics as the snapshot partition.
type FileStoreImpl struct {
	db *cacheDB
}

var _ contract.FileStore = &FileStoreImpl{} // Compile-time check

// Get returns the cached analysis for one file path.
func (s *FileStoreImpl) Get(repoPath, fingerprint, filePath string) (*schema.FileAnalysis, bool) {
	key := cacheKey(filePurpose, repoPath, fingerprint, filePath)
	row, err := s.db.getEntry(fileTable, key)
	if err != nil {
		if !isMissErr(err) {
			contract.LogWarn("file cache read failed", err)
		}
		return nil, false
	}

	if row.version != currentSchemaVersion {
		return nil, false
	}
	if s.db.isExpired(row) {
		if err := s.db.deleteEntry(fileTable, key); err != nil {
			contract.LogWarn("failed to delete expired file entry", err)
		}
		return nil, false
	}

	var analysis schema.FileAnalysis
	if err := json.Unmarshal(row.payload, &analysis); err != nil {
		contract.LogWarn("file cache entry is corrupt", err)
		if err := s.db.deleteEntry(fileTable, key); err != nil {
			contract.LogWarn("failed to delete corrupt file entry", err)
		}
		return nil, false
	}

	if err := s.db.touchEntry(fileTable, key); err != nil {
		contract.LogWarn("failed to refresh file access time", err)
		return nil, false
	}
	return &analysis, true
}

// Set creates or overwrites the analysis entry for one file path.
func (s *FileStoreImpl) Set(repoPath, fingerprint string, analysis schema.FileAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	key := cacheKey(filePurpose, repoPath, fingerprint, analysis.Path)
	return s.db.putEntry(fileTable, key, repoPath, payload)
}

// Close closes the shared connection.
func (s *FileStoreImpl) Close() error {
	return s.db.Close()
}

// noopSnapshotStore and noopFileStore back the "none" backend: every
// read misses and every write is dropped.
type noopSnapshotStore struct{}

func (noopSnapshotStore) Get(_, _ string) ([]schema.CommitRecord, bool) { return nil, false }
func (noopSnapshotStore) Set(_, _ string, _ []schema.CommitRecord) error {
	return nil
}
func (noopSnapshotStore) Close() error { return nil }

type noopFileStore struct{}

func (noopFileStore) Get(_, _, _ string) (*schema.FileAnalysis, bool) { return nil, false }
func (noopFileStore) Set(_, _ string, _ schema.FileAnalysis) error    { return nil }
func (noopFileStore) Close() error                                    { return nil }
