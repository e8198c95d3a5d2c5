package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/nourabosen/USearch/core"
	"github.com/nourabosen/USearch/query"
)

// IndexedBackend looks names up in a prebuilt filename index.
type IndexedBackend interface {
	SearchIndexed(ctx context.Context, term string) core.BackendResult
	SearchRaw(ctx context.Context, args []string) core.BackendResult
}

// LiveBackend traverses mounted filesystems.
type LiveBackend interface {
	SearchMounts(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult
}

// MountDiscoverer lists the mount points the live backend should visit.
type MountDiscoverer interface {
	Discover(ctx context.Context) []core.MountPoint
}

// Searcher provides hybrid indexed and live filename search.
type Searcher struct {
	indexed    IndexedBackend
	live       LiveBackend
	discoverer MountDiscoverer
	logger     *slog.Logger

	mu     sync.RWMutex
	parser query.Parser
	limit  *int
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithResultLimit caps the number of returned paths. Nil means unbounded.
func WithResultLimit(n *int) Option {
	return func(s *Searcher) error {
		s.limit = copyLimit(n)
		return nil
	}
}

// WithPrefixes sets the hardware-only and raw mode prefixes.
// Empty values keep the defaults.
func WithPrefixes(hardwarePrefix, rawPrefix string) Option {
	return func(s *Searcher) error {
		s.parser = query.NewParser(hardwarePrefix, rawPrefix)
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	indexed IndexedBackend,
	live LiveBackend,
	discoverer MountDiscoverer,
	opts ...Option,
) (*Searcher, error) {
	if indexed == nil {
		return nil, ErrIndexedBackendRequired
	}
	if live == nil {
		return nil, ErrLiveBackendRequired
	}
	if discoverer == nil {
		return nil, ErrDiscovererRequired
	}

	s := &Searcher{
		indexed:    indexed,
		live:       live,
		discoverer: discoverer,
		logger:     slog.Default(),
		parser:     query.NewParser("", ""),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SetResultLimit changes the result cap for subsequent searches. Nil removes it.
func (s *Searcher) SetResultLimit(n *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = copyLimit(n)
}

// ResultLimit returns the current result cap, or nil when unbounded.
func (s *Searcher) ResultLimit() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyLimit(s.limit)
}

// SetPrefixes changes the mode prefixes for subsequent searches.
// Empty values restore the defaults.
func (s *Searcher) SetPrefixes(hardwarePrefix, rawPrefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parser = query.NewParser(hardwarePrefix, rawPrefix)
}

// Prefixes returns the hardware-only and raw mode prefixes in effect.
func (s *Searcher) Prefixes() (hardwarePrefix, rawPrefix string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parser.HardwarePrefix, s.parser.RawPrefix
}

// Mode classifies a query without running it.
func (s *Searcher) Mode(raw string) (core.SearchMode, error) {
	parser, _ := s.snapshot()
	q, err := parser.Parse(raw)
	if err != nil {
		return 0, err
	}
	return q.Mode, nil
}

// ModeArgs classifies an argument list without running it.
func (s *Searcher) ModeArgs(args []string) (core.SearchMode, error) {
	parser, _ := s.snapshot()
	q, err := parser.ParseArgs(args)
	if err != nil {
		return 0, err
	}
	return q.Mode, nil
}

// Search runs a query and returns unique paths, indexed results first.
func (s *Searcher) Search(ctx context.Context, raw string) ([]string, error) {
	return s.SearchWithMonitor(ctx, raw, nil)
}

// SearchWithMonitor runs a query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, raw string, monitor SearchMonitor) ([]string, error) {
	return s.search(ctx, raw, func(p query.Parser) (core.Query, error) { return p.Parse(raw) }, monitor)
}

// SearchArgs runs a query given as separate arguments, keeping their boundaries.
// Raw mode arguments reach the index tool exactly as split here.
func (s *Searcher) SearchArgs(ctx context.Context, args []string, monitor SearchMonitor) ([]string, error) {
	return s.search(ctx, strings.Join(args, " "), func(p query.Parser) (core.Query, error) { return p.ParseArgs(args) }, monitor)
}

func (s *Searcher) search(ctx context.Context, raw string, parse func(query.Parser) (core.Query, error), monitor SearchMonitor) ([]string, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(raw)

	// Configuration is fixed for the rest of the call.
	parser, limit := s.snapshot()

	q, err := parse(parser)
	if err != nil {
		s.logger.Debug("rejected query", "query", raw, "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	monitor.AfterParse(q)

	var indexed, live []string
	switch q.Mode {
	case core.SearchModeRaw:
		result := s.indexed.SearchRaw(ctx, q.RawArgs)
		monitor.AfterIndexed(result)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if result.Status == core.StatusUnavailable {
			s.logger.Error("raw search needs the index tool", "err", result.AsError())
			return nil, result.AsError()
		}
		indexed = s.accept("raw", result)

	case core.SearchModeHardwareOnly:
		mounts, result := s.searchLive(ctx, q.Term)
		monitor.AfterDiscover(mounts)
		monitor.AfterLive(result)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		live = s.accept("live", result)

	default:
		var (
			wg            sync.WaitGroup
			indexedResult core.BackendResult
			liveResult    core.BackendResult
			mounts        []core.MountPoint
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			indexedResult = s.indexed.SearchIndexed(ctx, q.Term)
		}()
		go func() {
			defer wg.Done()
			mounts, liveResult = s.searchLive(ctx, q.Term)
		}()
		wg.Wait()

		monitor.AfterDiscover(mounts)
		monitor.AfterIndexed(indexedResult)
		monitor.AfterLive(liveResult)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		indexed = s.accept("indexed", indexedResult)
		live = s.accept("live", liveResult)
	}

	paths := Merge(indexed, live, limit)
	s.logger.Debug("search complete",
		"mode", q.Mode.String(),
		"indexed", len(indexed),
		"live", len(live),
		"results", len(paths))
	monitor.Finish(paths)

	return paths, nil
}

// searchLive discovers mounts and traverses them.
func (s *Searcher) searchLive(ctx context.Context, term string) ([]core.MountPoint, core.BackendResult) {
	mounts := s.discoverer.Discover(ctx)
	if len(mounts) == 0 {
		s.logger.Debug("no mount points to search")
	}
	return mounts, s.live.SearchMounts(ctx, term, mounts)
}

// accept returns the paths of an Ok result and logs anything else.
func (s *Searcher) accept(source string, result core.BackendResult) []string {
	switch result.Status {
	case core.StatusOk:
		return result.Paths
	case core.StatusUnavailable:
		s.logger.Info("backend unavailable, continuing without it", "source", source, "err", result.Err)
	default:
		s.logger.Warn("backend returned no results", "source", source, "status", result.Status.String(), "err", result.Err)
	}
	return nil
}

func (s *Searcher) snapshot() (query.Parser, *int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parser, copyLimit(s.limit)
}

func copyLimit(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
