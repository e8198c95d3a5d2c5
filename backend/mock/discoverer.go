package mock

import (
	"context"
	"sync"

	"github.com/nourabosen/USearch/core"
)

// MockDiscoverer is a test double for search.MountDiscoverer.
type MockDiscoverer struct {
	// DiscoverFunc is called by Discover if set.
	DiscoverFunc func(ctx context.Context) []core.MountPoint

	Mounts []core.MountPoint

	mu        sync.Mutex
	callCount int
}

// NewMockDiscoverer creates a mock that reports the given paths as mount points.
func NewMockDiscoverer(paths ...string) *MockDiscoverer {
	mounts := make([]core.MountPoint, len(paths))
	for i, p := range paths {
		mounts[i] = core.MountPoint{Path: p}
	}
	return &MockDiscoverer{Mounts: mounts}
}

// WithDiscoverFunc sets custom Discover behavior.
func (m *MockDiscoverer) WithDiscoverFunc(fn func(ctx context.Context) []core.MountPoint) *MockDiscoverer {
	m.DiscoverFunc = fn
	return m
}

// Discover records the call and returns the configured mount points.
func (m *MockDiscoverer) Discover(ctx context.Context) []core.MountPoint {
	m.mu.Lock()
	m.callCount++
	fn := m.DiscoverFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return append([]core.MountPoint(nil), m.Mounts...)
}

// CallCount returns the number of times Discover was called.
func (m *MockDiscoverer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom behavior.
func (m *MockDiscoverer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.DiscoverFunc = nil
}
