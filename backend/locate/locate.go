package locate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/core"
)

// DefaultCandidates are tried in order when no explicit command is configured.
var DefaultCandidates = []string{"plocate", "locate"}

// exitNoMatches is the status plocate and locate use for an empty result.
const exitNoMatches = 1

// Backend queries a prebuilt filename index.
type Backend struct {
	command    string
	candidates []string
	policy     backend.Policy
	runner     *backend.Runner
	logger     *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend) error

// WithCommand sets an explicit tool command such as "plocate -d /var/lib/plocate/plocate.db".
func WithCommand(command string) Option {
	return func(b *Backend) error {
		b.command = command
		return nil
	}
}

// WithCandidates replaces the tool names looked up on PATH.
func WithCandidates(names ...string) Option {
	return func(b *Backend) error {
		b.candidates = append([]string(nil), names...)
		return nil
	}
}

// WithPolicy sets the timeout policy.
func WithPolicy(policy backend.Policy) Option {
	return func(b *Backend) error {
		policy.Normalize()
		b.policy = policy
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

// NewBackend creates an indexed backend. The tool is resolved on every call,
// so installing plocate later does not require a restart.
func NewBackend(opts ...Option) (*Backend, error) {
	b := &Backend{
		candidates: DefaultCandidates,
		policy:     backend.DefaultPolicy(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.runner = backend.NewRunner(b.logger)
	return b, nil
}

// Available reports whether an index tool can be found.
func (b *Backend) Available() bool {
	_, err := backend.ResolveTool(b.command, b.candidates)
	return err == nil
}

// SearchIndexed runs a case-insensitive lookup for the whole term.
// The term follows "--" so a leading dash is never read as an option.
func (b *Backend) SearchIndexed(ctx context.Context, term string) core.BackendResult {
	return b.run(ctx, "-i", "--", term)
}

// SearchRaw passes args to the tool exactly as given.
// The arguments are not interpreted or sanitized; only trusted local input belongs here.
func (b *Backend) SearchRaw(ctx context.Context, args []string) core.BackendResult {
	return b.run(ctx, args...)
}

func (b *Backend) run(ctx context.Context, args ...string) core.BackendResult {
	tool, err := backend.ResolveTool(b.command, b.candidates)
	if err != nil {
		b.logger.Debug("index lookup tool not available", "err", err)
		return core.Failed(core.StatusUnavailable, err)
	}

	ctx, cancel := b.policy.IndexedContext(ctx)
	defer cancel()

	name, argv := tool.Command(args...)
	paths := make([]string, 0, 64)
	out, err := b.runner.Run(ctx, name, argv, func(line string) bool {
		paths = append(paths, line)
		return len(paths) < b.policy.MaxIndexedResults
	})
	switch {
	case err == nil:
	case backend.IsTimeout(err):
		b.logger.Warn("index lookup timed out", "tool", name, "timeout", b.policy.IndexedTimeout)
		return core.Failed(core.StatusTimedOut, err)
	case errors.Is(err, backend.ErrToolNotFound):
		return core.Failed(core.StatusUnavailable, err)
	default:
		b.logger.Warn("index lookup failed", "tool", name, "err", err)
		return core.Failed(core.StatusExecutionFailed, err)
	}

	if out.Truncated {
		b.logger.Debug("index lookup reached result cap", "cap", b.policy.MaxIndexedResults)
	}
	if out.ExitCode != 0 && out.ExitCode != exitNoMatches {
		b.logger.Warn("index lookup exited with error", "tool", name, "exitCode", out.ExitCode)
		return core.Failed(core.StatusExecutionFailed, &ExitError{Code: out.ExitCode})
	}
	return core.OK(paths)
}
