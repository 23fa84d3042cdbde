package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// cacheAdminImpl implements maintenance across both partitions.
type cacheAdminImpl struct {
	db *cacheDB
}

var _ contract.CacheAdmin = &cacheAdminImpl{} // Compile-time check

// CleanupExpired sweeps both partitions, deleting entries that are
// expired, version-mismatched or unreadable. A failure on one entry is
// logged and never aborts the sweep of the rest.
func (a *cacheAdminImpl) CleanupExpired() (int, error) {
	removed := 0
	for _, table := range []string{snapshotTable, fileTable} {
		n, err := a.sweepTable(table)
		removed += n
		if err != nil {
			// Table-level failure (e.g. connection loss): report it, but
			// only after the other partition had its chance.
			contract.LogWarn(fmt.Sprintf("cleanup sweep of %s failed", table), err)
		}
	}
	return removed, nil
}

// sweepTable scans one partition and deletes dead rows.
func (a *cacheAdminImpl) sweepTable(table string) (int, error) {
	rows, err := a.db.db.Query(fmt.Sprintf(
		`SELECT cache_key, payload, schema_version, size_bytes, created_at, last_accessed FROM %s`, table))
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	var doomed []string
	for rows.Next() {
		var row entryRow
		if err := rows.Scan(&row.key, &row.payload, &row.version, &row.sizeBytes, &row.createdAt, &row.lastAccessed); err != nil {
			contract.LogWarn(fmt.Sprintf("unreadable row in %s during cleanup", table), err)
			continue
		}
		if a.db.isExpired(row) || row.version != currentSchemaVersion || !json.Valid(row.payload) {
			doomed = append(doomed, row.key)
		}
	}
	if err := rows.Err(); err != nil {
		contract.LogWarn(fmt.Sprintf("row iteration over %s failed during cleanup", table), err)
	}

	removed := 0
	for _, key := range doomed {
		if err := a.db.deleteEntry(table, key); err != nil {
			contract.LogWarn(fmt.Sprintf("failed to delete entry from %s during cleanup", table), err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Clear unconditionally deletes every entry in both partitions.
func (a *cacheAdminImpl) Clear() error {
	for _, table := range []string{snapshotTable, fileTable} {
		if _, err := a.db.db.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Stats reports entry count, total serialized size and the oldest and
// newest entry modification time across both partitions. An empty cache
// reports nil timestamps, not an error.
func (a *cacheAdminImpl) Stats() (schema.CacheStats, error) {
	stats := schema.CacheStats{Backend: string(a.db.backend)}

	for _, table := range []string{snapshotTable, fileTable} {
		var count int
		var size, oldest, newest sql.NullInt64
		err := a.db.db.QueryRow(fmt.Sprintf(
			`SELECT COUNT(*), SUM(size_bytes), MIN(last_accessed), MAX(last_accessed) FROM %s`, table)).
			Scan(&count, &size, &oldest, &newest)
		if err != nil {
			return stats, fmt.Errorf("failed to read stats from %s: %w", table, err)
		}

		stats.Entries += count
		if size.Valid {
			stats.TotalSizeBytes += size.Int64
		}
		if oldest.Valid {
			t := time.UnixMilli(oldest.Int64)
			if stats.Oldest == nil || t.Before(*stats.Oldest) {
				stats.Oldest = &t
			}
		}
		if newest.Valid {
			t := time.UnixMilli(newest.Int64)
			if stats.Newest == nil || t.After(*stats.Newest) {
				stats.Newest = &t
			}
		}
	}
	return stats, nil
}
