package iocache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// Purpose tags namespace the cache keys of the two partitions.
const (
	snapshotPurpose = "commit-snapshot"
	filePurpose     = "file-analysis"
)

// entryRow is the raw row shape shared by both partition tables.
type entryRow struct {
	key          string
	payload      []byte
	version      int
	sizeBytes    int64
	createdAt    int64
	lastAccessed int64
}

// cacheKey derives the fixed-length entry identifier from the purpose
// tag, repository path, fingerprint and, for per-file entries, the file
// path. Parts are NUL-joined so no concatenation can collide.
func cacheKey(purpose, repoPath, fingerprint, filePath string) string {
	input := purpose + "\x00" + repoPath + "\x00" + fingerprint
	if filePath != "" {
		input += "\x00" + filePath
	}
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// getEntry fetches one row by key. A missing row returns sql.ErrNoRows.
func (c *cacheDB) getEntry(table, key string) (entryRow, error) {
	query := c.rebind(fmt.Sprintf(
		`SELECT payload, schema_version, size_bytes, created_at, last_accessed FROM %s WHERE cache_key = ?`, table))

	row := entryRow{key: key}
	err := c.db.QueryRow(query, key).Scan(&row.payload, &row.version, &row.sizeBytes, &row.createdAt, &row.lastAccessed)
	if err != nil {
		return entryRow{}, err
	}
	return row, nil
}

// putEntry creates or overwrites a row, stamping createdAt and
// lastAccessed with the same instant. The payload is stored as text so
// one schema serves all three SQL dialects.
func (c *cacheDB) putEntry(table, key, repoPath string, payload []byte) error {
	now := c.now().UnixMilli()
	_, err := c.db.Exec(c.upsertQuery(table), key, repoPath, string(payload), currentSchemaVersion, int64(len(payload)), now, now)
	return err
}

// touchEntry refreshes lastAccessed for a hit. The update is persisted
// before the payload is handed back to the caller.
func (c *cacheDB) touchEntry(table, key string) error {
	query := c.rebind(fmt.Sprintf(`UPDATE %s SET last_accessed = ? WHERE cache_key = ?`, table))
	_, err := c.db.Exec(query, c.now().UnixMilli(), key)
	return err
}

// deleteEntry removes a row. Missing rows are not an error.
func (c *cacheDB) deleteEntry(table, key string) error {
	query := c.rebind(fmt.Sprintf(`DELETE FROM %s WHERE cache_key = ?`, table))
	_, err := c.db.Exec(query, key)
	return err
}

// isExpired applies the expiration rule: either the idle timeout has
// elapsed since the last access, or the max age has elapsed since
// creation. Either condition alone suffices.
func (c *cacheDB) isExpired(row entryRow) bool {
	now := c.now()
	if now.Sub(time.UnixMilli(row.lastAccessed)) > c.idleTimeout {
		return true
	}
	if now.Sub(time.UnixMilli(row.createdAt)) > c.maxAge {
		return true
	}
	return false
}

// isMissErr reports whether a read error is a plain missing-row miss,
// as opposed to an unreadable entry worth a warning.
func isMissErr(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
