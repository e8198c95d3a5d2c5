package backend

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultIndexedTimeout bounds a single index lookup.
	DefaultIndexedTimeout = 5 * time.Second
	// DefaultMountTimeout bounds the traversal of one mount point.
	DefaultMountTimeout = 10 * time.Second
	// DefaultMaxResultsPerMount caps the paths collected from one mount point.
	DefaultMaxResultsPerMount = 2000
	// DefaultMaxIndexedResults caps the lines read from the index tool.
	DefaultMaxIndexedResults = 10000
)

// Policy is the timeout and cancellation policy threaded through every
// backend invocation.
type Policy struct {
	IndexedTimeout     time.Duration
	MountTimeout       time.Duration
	MaxResultsPerMount int
	MaxIndexedResults  int
}

// DefaultPolicy returns the default timeouts and caps.
func DefaultPolicy() Policy {
	return Policy{
		IndexedTimeout:     DefaultIndexedTimeout,
		MountTimeout:       DefaultMountTimeout,
		MaxResultsPerMount: DefaultMaxResultsPerMount,
		MaxIndexedResults:  DefaultMaxIndexedResults,
	}
}

// Normalize replaces non-positive values with the defaults.
func (p *Policy) Normalize() {
	if p.IndexedTimeout <= 0 {
		p.IndexedTimeout = DefaultIndexedTimeout
	}
	if p.MountTimeout <= 0 {
		p.MountTimeout = DefaultMountTimeout
	}
	if p.MaxResultsPerMount <= 0 {
		p.MaxResultsPerMount = DefaultMaxResultsPerMount
	}
	if p.MaxIndexedResults <= 0 {
		p.MaxIndexedResults = DefaultMaxIndexedResults
	}
}

// IndexedContext derives the deadline for one index lookup.
func (p Policy) IndexedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.IndexedTimeout)
}

// MountContext derives the deadline for one mount traversal.
func (p Policy) MountContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.MountTimeout)
}

// IsTimeout reports whether err came from an expired deadline or a cancelled call.
// Both are recovered the same way: the source contributes no paths.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
