package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/core"
	"github.com/panjf2000/ants/v2"
)

// DefaultWorkers bounds concurrent mount traversals.
const DefaultWorkers = 4

// DefaultFindCommand is the traversal tool used when installed.
const DefaultFindCommand = "find"

// mountSearchFunc searches one mount point under an already derived deadline.
type mountSearchFunc func(ctx context.Context, term string, mount core.MountPoint) core.BackendResult

// Backend searches mount points concurrently.
type Backend struct {
	pool        *ants.Pool
	policy      backend.Policy
	findCommand string
	forceWalk   bool
	includeDirs bool
	runner      *backend.Runner
	logger      *slog.Logger
	searchMount mountSearchFunc
}

// Option configures a Backend.
type Option func(*Backend) error

// WithWorkers sets the number of mounts traversed at the same time.
func WithWorkers(size int) Option {
	return func(b *Backend) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if b.pool != nil {
			b.pool.Release()
		}
		b.pool = pool
		return nil
	}
}

// WithPolicy sets the per-mount timeout and result cap.
func WithPolicy(policy backend.Policy) Option {
	return func(b *Backend) error {
		policy.Normalize()
		b.policy = policy
		return nil
	}
}

// WithFindCommand sets the traversal tool command. An empty command forces the walk.
func WithFindCommand(command string) Option {
	return func(b *Backend) error {
		b.findCommand = command
		if command == "" {
			b.forceWalk = true
		}
		return nil
	}
}

// WithForceWalk always uses the in-process walk, even when find is installed.
func WithForceWalk(force bool) Option {
	return func(b *Backend) error {
		b.forceWalk = force
		return nil
	}
}

// WithIncludeDirectories controls whether directory names can match.
// Default is true.
func WithIncludeDirectories(include bool) Option {
	return func(b *Backend) error {
		b.includeDirs = include
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBackend creates a live backend. Call Release when done to stop the worker pool.
func NewBackend(opts ...Option) (*Backend, error) {
	b := &Backend{
		policy:      backend.DefaultPolicy(),
		findCommand: DefaultFindCommand,
		includeDirs: true,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}

	if b.pool == nil {
		pool, err := ants.NewPool(DefaultWorkers)
		if err != nil {
			return nil, err
		}
		b.pool = pool
	}

	b.runner = backend.NewRunner(b.logger)
	b.searchMount = b.searchOne
	return b, nil
}

// SearchMounts searches every mount for entries whose name contains term.
// Per-mount failures are absorbed; the result is Ok unless no mount succeeded.
func (b *Backend) SearchMounts(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult {
	if len(mounts) == 0 {
		return core.OK(nil)
	}

	results := make([]core.BackendResult, len(mounts))
	var wg sync.WaitGroup
	for i, mount := range mounts {
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			results[i] = b.searchWithDeadline(ctx, term, mount)
		})
		if err != nil {
			wg.Done()
			b.logger.Error("error submitting mount search", "mount", mount.Path, "err", err)
			results[i] = core.Failed(core.StatusExecutionFailed, err)
		}
	}
	wg.Wait()

	return combine(results)
}

// Release stops the worker pool.
func (b *Backend) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

func (b *Backend) searchWithDeadline(ctx context.Context, term string, mount core.MountPoint) core.BackendResult {
	mctx, cancel := b.policy.MountContext(ctx)
	defer cancel()

	start := time.Now()
	result := b.searchMount(mctx, term, mount)
	switch result.Status {
	case core.StatusOk:
		b.logger.Debug("mount search finished", "mount", mount.Path, "hits", len(result.Paths), "elapsed", time.Since(start))
	case core.StatusTimedOut:
		b.logger.Warn("mount search timed out", "mount", mount.Path, "timeout", b.policy.MountTimeout)
	default:
		b.logger.Warn("mount search failed", "mount", mount.Path, "status", result.Status, "err", result.Err)
	}
	return result
}

// searchOne picks find or the walk for one mount.
func (b *Backend) searchOne(ctx context.Context, term string, mount core.MountPoint) core.BackendResult {
	if !b.forceWalk {
		tool, err := backend.ResolveTool(b.findCommand, nil)
		if err == nil {
			return b.findMount(ctx, tool, term, mount.Path)
		}
		b.logger.Debug("traversal tool not available, walking in process", "err", err)
	}
	return b.walkMount(ctx, term, mount.Path)
}

// combine concatenates per-mount results in mount order.
func combine(results []core.BackendResult) core.BackendResult {
	var paths []string
	succeeded, timedOut := 0, 0
	var errs []error
	for _, r := range results {
		switch r.Status {
		case core.StatusOk:
			succeeded++
			paths = append(paths, r.Paths...)
		case core.StatusTimedOut:
			timedOut++
		default:
			errs = append(errs, r.AsError())
		}
	}

	switch {
	case succeeded > 0:
		return core.OK(paths)
	case timedOut == len(results):
		return core.Failed(core.StatusTimedOut, ErrAllMountsTimedOut)
	default:
		return core.Failed(core.StatusExecutionFailed, errors.Join(append([]error{ErrNoMountSucceeded}, errs...)...))
	}
}
