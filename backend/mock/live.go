package mock

import (
	"context"
	"sync"

	"github.com/nourabosen/USearch/core"
)

// MockLiveBackend is a test double for search.LiveBackend.
type MockLiveBackend struct {
	// SearchMountsFunc is called by SearchMounts if set.
	// If nil, returns an Ok result with no paths.
	SearchMountsFunc func(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult

	mu         sync.Mutex
	callCount  int
	lastTerm   string
	lastMounts []core.MountPoint
}

// NewMockLiveBackend creates a mock live backend with default behavior.
func NewMockLiveBackend() *MockLiveBackend {
	return &MockLiveBackend{}
}

// WithSearchMountsFunc sets custom SearchMounts behavior.
func (m *MockLiveBackend) WithSearchMountsFunc(fn func(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult) *MockLiveBackend {
	m.SearchMountsFunc = fn
	return m
}

// SearchMounts records the call and returns the configured result.
func (m *MockLiveBackend) SearchMounts(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult {
	m.mu.Lock()
	m.callCount++
	m.lastTerm = term
	m.lastMounts = append([]core.MountPoint(nil), mounts...)
	fn := m.SearchMountsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, term, mounts)
	}
	return core.OK(nil)
}

// CallCount returns the number of times SearchMounts was called.
func (m *MockLiveBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastTerm returns the term of the most recent call.
func (m *MockLiveBackend) LastTerm() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTerm
}

// LastMounts returns the mount points of the most recent call.
func (m *MockLiveBackend) LastMounts() []core.MountPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMounts
}

// Reset clears the call count and custom behavior.
func (m *MockLiveBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastTerm = ""
	m.lastMounts = nil
	m.SearchMountsFunc = nil
}
