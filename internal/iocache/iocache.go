// Package iocache persists computed analysis results across runs. It
// stores whole commit-list snapshots and per-file analysis results in
// two partitions of one SQL database, keyed by repository path and state
// fingerprint, with idle-timeout and max-age expiration.
package iocache

import (
	"sync"

	"github.com/pbaettig/gitpulse/internal/contract"
)

// CacheStoreManager manages both cache partitions over one connection.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization

	snapshots contract.SnapshotStore
	files     contract.FileStore
	admin     contract.CacheAdmin
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetSnapshotStore returns the commit-snapshot partition.
func (mgr *CacheStoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

// GetFileStore returns the per-file analysis partition.
func (mgr *CacheStoreManager) GetFileStore() contract.FileStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.files
}

// GetAdmin returns the maintenance surface for both partitions, or nil
// when caching is disabled.
func (mgr *CacheStoreManager) GetAdmin() contract.CacheAdmin {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.admin
}
