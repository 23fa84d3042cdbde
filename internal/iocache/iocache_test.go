package iocache

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

// newTestDB opens a SQLite-backed cacheDB in a temp directory with a
// frozen clock that tests can advance.
func newTestDB(t *testing.T, idleTimeout, maxAge time.Duration) (*cacheDB, *time.Time) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache_test.db")
	db, err := openCacheDB(schema.SQLiteBackend, dbPath, idleTimeout, maxAge)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now()
	db.now = func() time.Time { return now }
	return db, &now
}

func sampleCommits() []schema.CommitRecord {
	return []schema.CommitRecord{
		{
			Hash:         "a1b2c3d4",
			Author:       "Alice",
			Email:        "alice@example.com",
			Timestamp:    time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			Message:      "Add request validation",
			LinesAdded:   120,
			LinesDeleted: 30,
			BytesAdded:   4800,
			BytesDeleted: 1200,
			Files: []schema.FileChange{
				{Path: "internal/api/validate.go", LinesAdded: 100, LinesDeleted: 20, BytesAdded: 4000, BytesDeleted: 800, Category: schema.CategoryApplication},
				{Path: "internal/api/validate_test.go", LinesAdded: 20, LinesDeleted: 10, BytesAdded: 800, BytesDeleted: 400, Category: schema.CategoryTest},
			},
		},
		{
			Hash:       "e5f6a7b8",
			Author:     "Bob",
			Email:      "bob@example.com",
			Timestamp:  time.Date(2025, 3, 15, 14, 2, 7, 0, time.UTC),
			Message:    "Update build scripts",
			LinesAdded: 15,
			BytesAdded: 600,
			Files: []schema.FileChange{
				{Path: "Makefile", LinesAdded: 15, BytesAdded: 600, Category: schema.CategoryBuild},
			},
		},
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	commits := sampleCommits()
	require.NoError(t, store.Set("/repos/web", "fp-1234", commits))

	got, ok := store.Get("/repos/web", "fp-1234")
	require.True(t, ok)
	assert.Equal(t, commits, got)
}

func TestSnapshotStoreMiss(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	got, ok := store.Get("/repos/web", "fp-unknown")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSnapshotStoreFingerprintIsolation(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	require.NoError(t, store.Set("/repos/web", "fp-old", sampleCommits()))

	_, ok := store.Get("/repos/web", "fp-new")
	assert.False(t, ok, "a changed fingerprint must not surface the old snapshot")

	_, ok = store.Get("/repos/other", "fp-old")
	assert.False(t, ok, "a different repo path must not surface the snapshot")
}

func TestSnapshotStoreIdleExpiration(t *testing.T) {
	db, now := newTestDB(t, 50*time.Millisecond, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	require.NoError(t, store.Set("/repos/web", "fp-1234", sampleCommits()))

	// Within the idle window the entry is live.
	*now = now.Add(30 * time.Millisecond)
	_, ok := store.Get("/repos/web", "fp-1234")
	require.True(t, ok)

	// A hit refreshes last access, so another partial step stays live.
	*now = now.Add(40 * time.Millisecond)
	_, ok = store.Get("/repos/web", "fp-1234")
	require.True(t, ok)

	// Past the idle timeout the entry reads as a miss and is deleted.
	*now = now.Add(51 * time.Millisecond)
	_, ok = store.Get("/repos/web", "fp-1234")
	assert.False(t, ok)

	_, err := db.getEntry(snapshotTable, cacheKey(snapshotPurpose, "/repos/web", "fp-1234", ""))
	assert.True(t, isMissErr(err), "expired entry should be deleted on read")
}

func TestSnapshotStoreMaxAgeExpiration(t *testing.T) {
	db, now := newTestDB(t, time.Hour, 100*time.Millisecond)
	store := &SnapshotStoreImpl{db: db}

	require.NoError(t, store.Set("/repos/web", "fp-1234", sampleCommits()))

	// Repeated hits keep refreshing the access time.
	*now = now.Add(40 * time.Millisecond)
	_, ok := store.Get("/repos/web", "fp-1234")
	require.True(t, ok)

	*now = now.Add(40 * time.Millisecond)
	_, ok = store.Get("/repos/web", "fp-1234")
	require.True(t, ok)

	// Max age counts from creation, so the entry is gone regardless of
	// how recently it was accessed.
	*now = now.Add(40 * time.Millisecond)
	_, ok = store.Get("/repos/web", "fp-1234")
	assert.False(t, ok)
}

func TestSnapshotStoreCorruptPayload(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	require.NoError(t, store.Set("/repos/web", "fp-1234", sampleCommits()))

	key := cacheKey(snapshotPurpose, "/repos/web", "fp-1234", "")
	_, err := db.db.Exec(fmt.Sprintf(`UPDATE %s SET payload = ? WHERE cache_key = ?`, snapshotTable),
		[]byte(`{"not": "a commit list"`), key)
	require.NoError(t, err)

	_, ok := store.Get("/repos/web", "fp-1234")
	assert.False(t, ok)

	_, err = db.getEntry(snapshotTable, key)
	assert.True(t, isMissErr(err), "corrupt entry should be deleted on read")
}

func TestSnapshotStoreVersionMismatch(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	require.NoError(t, store.Set("/repos/web", "fp-1234", sampleCommits()))

	key := cacheKey(snapshotPurpose, "/repos/web", "fp-1234", "")
	_, err := db.db.Exec(fmt.Sprintf(`UPDATE %s SET schema_version = ? WHERE cache_key = ?`, snapshotTable), 99, key)
	require.NoError(t, err)

	_, ok := store.Get("/repos/web", "fp-1234")
	assert.False(t, ok)
}

func TestSnapshotStoreOverwrite(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &SnapshotStoreImpl{db: db}

	first := sampleCommits()[:1]
	require.NoError(t, store.Set("/repos/web", "fp-1234", first))

	second := sampleCommits()
	require.NoError(t, store.Set("/repos/web", "fp-1234", second))

	got, ok := store.Get("/repos/web", "fp-1234")
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestFileStoreRoundTrip(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	store := &FileStoreImpl{db: db}

	analysis := schema.FileAnalysis{
		Path:         "internal/api/validate.go",
		Commits:      12,
		NetLines:     -40,
		Churn:        900,
		LastModified: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Category:     schema.CategoryApplication,
	}
	require.NoError(t, store.Set("/repos/web", "fp-1234", analysis))

	got, ok := store.Get("/repos/web", "fp-1234", "internal/api/validate.go")
	require.True(t, ok)
	assert.Equal(t, analysis, *got)

	// Per-file entries are keyed by path too.
	_, ok = store.Get("/repos/web", "fp-1234", "internal/api/other.go")
	assert.False(t, ok)
}

func TestFileStoreIdleExpiration(t *testing.T) {
	db, now := newTestDB(t, 50*time.Millisecond, 24*time.Hour)
	store := &FileStoreImpl{db: db}

	analysis := schema.FileAnalysis{Path: "main.go", Commits: 3, Category: schema.CategoryApplication}
	require.NoError(t, store.Set("/repos/web", "fp-1234", analysis))

	*now = now.Add(51 * time.Millisecond)
	_, ok := store.Get("/repos/web", "fp-1234", "main.go")
	assert.False(t, ok)
}

func TestCacheKeyProperties(t *testing.T) {
	a := cacheKey(snapshotPurpose, "/repos/web", "fp-1", "")
	b := cacheKey(snapshotPurpose, "/repos/web", "fp-1", "")
	assert.Equal(t, a, b, "key derivation must be deterministic")
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, cacheKey(snapshotPurpose, "/repos/web", "fp-2", ""))
	assert.NotEqual(t, a, cacheKey(filePurpose, "/repos/web", "fp-1", ""))
	assert.NotEqual(t,
		cacheKey(filePurpose, "/repos/web", "fp-1", "a.go"),
		cacheKey(filePurpose, "/repos/web", "fp-1", "b.go"))
}

func TestCleanupExpired(t *testing.T) {
	db, now := newTestDB(t, 50*time.Millisecond, 24*time.Hour)
	snapshots := &SnapshotStoreImpl{db: db}
	files := &FileStoreImpl{db: db}
	admin := &cacheAdminImpl{db: db}

	require.NoError(t, snapshots.Set("/repos/old", "fp-old", sampleCommits()))
	require.NoError(t, files.Set("/repos/old", "fp-old", schema.FileAnalysis{Path: "a.go", Commits: 1}))

	*now = now.Add(60 * time.Millisecond)
	require.NoError(t, snapshots.Set("/repos/new", "fp-new", sampleCommits()))

	removed, err := admin.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 2, removed, "one expired entry per partition")

	// The fresh entry survives the sweep.
	_, ok := snapshots.Get("/repos/new", "fp-new")
	assert.True(t, ok)
}

func TestCleanupExpiredRemovesCorruptRows(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	snapshots := &SnapshotStoreImpl{db: db}
	admin := &cacheAdminImpl{db: db}

	require.NoError(t, snapshots.Set("/repos/web", "fp-ok", sampleCommits()))
	require.NoError(t, snapshots.Set("/repos/web", "fp-bad", sampleCommits()))

	key := cacheKey(snapshotPurpose, "/repos/web", "fp-bad", "")
	_, err := db.db.Exec(fmt.Sprintf(`UPDATE %s SET payload = ? WHERE cache_key = ?`, snapshotTable),
		[]byte(`broken`), key)
	require.NoError(t, err)

	removed, err := admin.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := snapshots.Get("/repos/web", "fp-ok")
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	db, _ := newTestDB(t, time.Hour, 24*time.Hour)
	snapshots := &SnapshotStoreImpl{db: db}
	files := &FileStoreImpl{db: db}
	admin := &cacheAdminImpl{db: db}

	require.NoError(t, snapshots.Set("/repos/web", "fp-1", sampleCommits()))
	require.NoError(t, files.Set("/repos/web", "fp-1", schema.FileAnalysis{Path: "a.go"}))

	require.NoError(t, admin.Clear())

	stats, err := admin.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
}

func TestStats(t *testing.T) {
	db, now := newTestDB(t, time.Hour, 24*time.Hour)
	snapshots := &SnapshotStoreImpl{db: db}
	files := &FileStoreImpl{db: db}
	admin := &cacheAdminImpl{db: db}

	t.Run("empty cache reports nil timestamps", func(t *testing.T) {
		stats, err := admin.Stats()
		require.NoError(t, err)
		assert.Equal(t, string(schema.SQLiteBackend), stats.Backend)
		assert.Zero(t, stats.Entries)
		assert.Zero(t, stats.TotalSizeBytes)
		assert.Nil(t, stats.Oldest)
		assert.Nil(t, stats.Newest)
	})

	t.Run("populated cache reports totals and bounds", func(t *testing.T) {
		require.NoError(t, snapshots.Set("/repos/web", "fp-1", sampleCommits()))
		*now = now.Add(10 * time.Millisecond)
		require.NoError(t, files.Set("/repos/web", "fp-1", schema.FileAnalysis{Path: "a.go", Commits: 2}))

		stats, err := admin.Stats()
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Entries)
		assert.Positive(t, stats.TotalSizeBytes)
		require.NotNil(t, stats.Oldest)
		require.NotNil(t, stats.Newest)
		assert.False(t, stats.Newest.Before(*stats.Oldest))
	})
}

func TestNoopStores(t *testing.T) {
	var snapshots noopSnapshotStore
	var files noopFileStore

	require.NoError(t, snapshots.Set("/repos/web", "fp-1", sampleCommits()))
	_, ok := snapshots.Get("/repos/web", "fp-1")
	assert.False(t, ok, "the none backend never reports a hit")

	require.NoError(t, files.Set("/repos/web", "fp-1", schema.FileAnalysis{Path: "a.go"}))
	_, ok = files.Get("/repos/web", "fp-1", "a.go")
	assert.False(t, ok)

	assert.NoError(t, snapshots.Close())
	assert.NoError(t, files.Close())
}

func TestClearCacheFile(t *testing.T) {
	t.Run("removes existing file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		db, err := openCacheDB(schema.SQLiteBackend, dbPath, time.Hour, 24*time.Hour)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		assert.NoError(t, ClearCacheFile(dbPath))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, ClearCacheFile(filepath.Join(t.TempDir(), "nope.db")))
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		assert.Error(t, ClearCacheFile(""))
	})
}

func TestOpenCacheDBUnsupportedBackend(t *testing.T) {
	_, err := openCacheDB(schema.DatabaseBackend("oracle"), "", time.Hour, 24*time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cache backend")
}
