package iocache

import (
	"sync"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// MockSnapshotStore is an in-memory SnapshotStore for testing.
type MockSnapshotStore struct {
	mu       sync.Mutex
	data     map[string][]schema.CommitRecord
	GetCalls int
	SetCalls int
	// FailSet makes Set return an error when set, to exercise the
	// degraded write path.
	FailSet error
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// NewMockSnapshotStore creates an empty in-memory snapshot store.
func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{data: make(map[string][]schema.CommitRecord)}
}

// Get implements SnapshotStore.
func (m *MockSnapshotStore) Get(repoPath, fingerprint string) ([]schema.CommitRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	commits, ok := m.data[repoPath+"\x00"+fingerprint]
	return commits, ok
}

// Set implements SnapshotStore.
func (m *MockSnapshotStore) Set(repoPath, fingerprint string, commits []schema.CommitRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.FailSet != nil {
		return m.FailSet
	}
	m.data[repoPath+"\x00"+fingerprint] = commits
	return nil
}

// Close implements SnapshotStore.
func (m *MockSnapshotStore) Close() error { return nil }

// MockFileStore is an in-memory FileStore for testing.
type MockFileStore struct {
	mu   sync.Mutex
	data map[string]schema.FileAnalysis
}

var _ contract.FileStore = &MockFileStore{} // Compile-time check

// NewMockFileStore creates an empty in-memory file store.
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{data: make(map[string]schema.FileAnalysis)}
}

// Get implements FileStore.
func (m *MockFileStore) Get(repoPath, fingerprint, filePath string) (*schema.FileAnalysis, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	analysis, ok := m.data[repoPath+"\x00"+fingerprint+"\x00"+filePath]
	if !ok {
		return nil, false
	}
	return &analysis, true
}

// Set implements FileStore.
func (m *MockFileStore) Set(repoPath, fingerprint string, analysis schema.FileAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[repoPath+"\x00"+fingerprint+"\x00"+analysis.Path] = analysis
	return nil
}

// Close implements FileStore.
func (m *MockFileStore) Close() error { return nil }

// MockCacheManager bundles the mock stores for orchestration tests.
type MockCacheManager struct {
	Snapshots *MockSnapshotStore
	Files     *MockFileStore
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// NewMockCacheManager creates a manager with fresh mock stores.
func NewMockCacheManager() *MockCacheManager {
	return &MockCacheManager{
		Snapshots: NewMockSnapshotStore(),
		Files:     NewMockFileStore(),
	}
}

// GetSnapshotStore implements CacheManager.
func (m *MockCacheManager) GetSnapshotStore() contract.SnapshotStore { return m.Snapshots }

// GetFileStore implements CacheManager.
func (m *MockCacheManager) GetFileStore() contract.FileStore { return m.Files }
