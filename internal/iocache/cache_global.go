package iocache

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// InitStores initializes the global cache manager. The "none" backend
// installs no-op stores so callers never have to branch on a disabled
// cache.
func InitStores(backend schema.DatabaseBackend, connStr string, idleTimeout, maxAge time.Duration) error {
	var initErr error

	initOnce.Do(func() {
		if backend == schema.NoneBackend {
			Manager.Lock()
			defer Manager.Unlock()
			Manager.snapshots = noopSnapshotStore{}
			Manager.files = noopFileStore{}
			return
		}

		db, err := openCacheDB(backend, connStr, idleTimeout, maxAge)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize cache storage: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.snapshots = &SnapshotStoreImpl{db: db}
		Manager.files = &FileStoreImpl{db: db}
		Manager.admin = &cacheAdminImpl{db: db}
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.snapshots != nil {
			_ = Manager.snapshots.Close()
		}
		if Manager.files != nil {
			_ = Manager.files.Close()
		}
	})
}

// ClearCacheFile removes the SQLite database file entirely. SQL-server
// backends clear through CacheAdmin instead.
func ClearCacheFile(dbFilePath string) error {
	if dbFilePath == "" {
		return fmt.Errorf("dbFilePath cannot be empty")
	}
	if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
	}
	return nil
}
