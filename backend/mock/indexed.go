package mock

import (
	"context"
	"sync"

	"github.com/nourabosen/USearch/core"
)

// MockIndexedBackend is a test double for search.IndexedBackend.
type MockIndexedBackend struct {
	// SearchIndexedFunc is called by SearchIndexed if set.
	SearchIndexedFunc func(ctx context.Context, term string) core.BackendResult

	// SearchRawFunc is called by SearchRaw if set.
	SearchRawFunc func(ctx context.Context, args []string) core.BackendResult

	Paths []string

	mu           sync.Mutex
	indexedCalls int
	rawCalls     int
	lastTerm     string
	lastArgs     []string
}

// NewMockIndexedBackend creates a mock whose default result is Ok with the given paths.
func NewMockIndexedBackend(paths ...string) *MockIndexedBackend {
	return &MockIndexedBackend{Paths: paths}
}

// WithSearchIndexedFunc sets custom SearchIndexed behavior.
func (m *MockIndexedBackend) WithSearchIndexedFunc(fn func(ctx context.Context, term string) core.BackendResult) *MockIndexedBackend {
	m.SearchIndexedFunc = fn
	return m
}

// WithSearchRawFunc sets custom SearchRaw behavior.
func (m *MockIndexedBackend) WithSearchRawFunc(fn func(ctx context.Context, args []string) core.BackendResult) *MockIndexedBackend {
	m.SearchRawFunc = fn
	return m
}

// SearchIndexed records the call and returns the configured result.
func (m *MockIndexedBackend) SearchIndexed(ctx context.Context, term string) core.BackendResult {
	m.mu.Lock()
	m.indexedCalls++
	m.lastTerm = term
	fn := m.SearchIndexedFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, term)
	}
	return core.OK(append([]string(nil), m.Paths...))
}

// SearchRaw records the call and returns the configured result.
func (m *MockIndexedBackend) SearchRaw(ctx context.Context, args []string) core.BackendResult {
	m.mu.Lock()
	m.rawCalls++
	m.lastArgs = append([]string(nil), args...)
	fn := m.SearchRawFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, args)
	}
	return core.OK(append([]string(nil), m.Paths...))
}

// IndexedCalls returns how many times SearchIndexed was called.
func (m *MockIndexedBackend) IndexedCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexedCalls
}

// RawCalls returns how many times SearchRaw was called.
func (m *MockIndexedBackend) RawCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rawCalls
}

// CallCount returns the number of times any method was called.
func (m *MockIndexedBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexedCalls + m.rawCalls
}

// LastTerm returns the term of the most recent SearchIndexed call.
func (m *MockIndexedBackend) LastTerm() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTerm
}

// LastArgs returns the arguments of the most recent SearchRaw call.
func (m *MockIndexedBackend) LastArgs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastArgs
}

// Reset clears the call counts and custom behavior.
func (m *MockIndexedBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexedCalls = 0
	m.rawCalls = 0
	m.lastTerm = ""
	m.lastArgs = nil
	m.SearchIndexedFunc = nil
	m.SearchRawFunc = nil
}
