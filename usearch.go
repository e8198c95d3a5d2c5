// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package usearch

import (
	"context"
	"log/slog"

	"github.com/nourabosen/USearch/backend/live"
	"github.com/nourabosen/USearch/backend/locate"
	"github.com/nourabosen/USearch/config"
	"github.com/nourabosen/USearch/core"
	"github.com/nourabosen/USearch/mounts"
	"github.com/nourabosen/USearch/search"
)

// Locator wires the mount discoverer, both backends and the searcher from one Config.
type Locator struct {
	config     *config.Config
	discoverer *mounts.Discoverer
	indexed    *locate.Backend
	live       *live.Backend
	searcher   *search.Searcher
	logger     *slog.Logger
}

// LocatorOption configures a Locator.
type LocatorOption func(*locatorOptions)

type locatorOptions struct {
	config     *config.Config
	logger     *slog.Logger
	mountTable mounts.TableFunc
}

// WithConfig sets the configuration. Default is config.DefaultConfig().
func WithConfig(cfg *config.Config) LocatorOption {
	return func(o *locatorOptions) {
		o.config = cfg
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LocatorOption {
	return func(o *locatorOptions) {
		o.logger = logger
	}
}

// WithMountTable replaces the system mount table reader.
func WithMountTable(table mounts.TableFunc) LocatorOption {
	return func(o *locatorOptions) {
		o.mountTable = table
	}
}

// NewLocator validates the configuration and builds every component.
// The caller must Close the locator to stop the worker pool and the mount watcher.
func NewLocator(opts ...LocatorOption) (*Locator, error) {
	// Apply options
	options := &locatorOptions{
		config: config.DefaultConfig(), // Default if not provided
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = config.DefaultConfig()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	cfg := *options.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy := cfg.Policy()
	logger := options.logger

	// Mount discovery
	discoverer, err := mounts.NewDiscoverer(
		mounts.WithBases(cfg.MountBases...),
		mounts.WithTTL(cfg.MountCacheTTL),
		mounts.WithWatch(cfg.WatchMounts),
		mounts.WithMountTable(options.mountTable),
		mounts.WithLogger(logger.With("component", "mounts")),
	)
	if err != nil {
		return nil, err
	}

	// Index lookup
	indexed, err := locate.NewBackend(
		locate.WithCommand(cfg.IndexCommand),
		locate.WithCandidates(cfg.IndexCandidates...),
		locate.WithPolicy(policy),
		locate.WithLogger(logger.With("component", "locate")),
	)
	if err != nil {
		discoverer.Close()
		return nil, err
	}

	// Live traversal
	liveBackend, err := live.NewBackend(
		live.WithWorkers(cfg.Workers),
		live.WithPolicy(policy),
		live.WithFindCommand(cfg.FindCommand),
		live.WithForceWalk(cfg.ForceWalk || cfg.FindCommand == ""),
		live.WithIncludeDirectories(cfg.IncludeDirectories),
		live.WithLogger(logger.With("component", "live")),
	)
	if err != nil {
		discoverer.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(indexed, liveBackend, discoverer,
		search.WithLogger(logger),
		search.WithResultLimit(cfg.ResultLimit()),
		search.WithPrefixes(cfg.HardwarePrefix, cfg.RawPrefix),
	)
	if err != nil {
		liveBackend.Release()
		discoverer.Close()
		return nil, err
	}

	return &Locator{
		config:     &cfg,
		discoverer: discoverer,
		indexed:    indexed,
		live:       liveBackend,
		searcher:   searcher,
		logger:     logger,
	}, nil
}

// Close releases the live search workers and stops watching mount bases.
func (l *Locator) Close() error {
	// Stop the workers first so nothing is traversing while the watcher goes away
	l.live.Release()

	if err := l.discoverer.Close(); err != nil {
		l.logger.Error("error closing mount discoverer", "err", err)
		return err
	}
	return nil
}

// Search runs a query. See search.Searcher.Search.
func (l *Locator) Search(ctx context.Context, query string) ([]string, error) {
	return l.searcher.Search(ctx, query)
}

// SearchWithMonitor runs a query with monitoring.
func (l *Locator) SearchWithMonitor(ctx context.Context, query string, monitor search.SearchMonitor) ([]string, error) {
	return l.searcher.SearchWithMonitor(ctx, query, monitor)
}

// SearchArgs runs a query given as separate command line arguments.
func (l *Locator) SearchArgs(ctx context.Context, args []string, monitor search.SearchMonitor) ([]string, error) {
	return l.searcher.SearchArgs(ctx, args, monitor)
}

// SetResultLimit changes the result cap. Nil removes it.
func (l *Locator) SetResultLimit(n *int) {
	l.searcher.SetResultLimit(n)
}

// SetPrefixes changes the hardware-only and raw mode prefixes.
func (l *Locator) SetPrefixes(hardwarePrefix, rawPrefix string) {
	l.searcher.SetPrefixes(hardwarePrefix, rawPrefix)
}

// Mode classifies a query without running it.
func (l *Locator) Mode(query string) (core.SearchMode, error) {
	return l.searcher.Mode(query)
}

// ModeArgs classifies an argument list without running it.
func (l *Locator) ModeArgs(args []string) (core.SearchMode, error) {
	return l.searcher.ModeArgs(args)
}

// Mounts returns the mount points a live search would visit right now.
func (l *Locator) Mounts(ctx context.Context) []core.MountPoint {
	return l.discoverer.Discover(ctx)
}

// IndexAvailable reports whether an index tool is installed.
func (l *Locator) IndexAvailable() bool {
	return l.indexed.Available()
}

// Config returns a copy of the configuration the locator was built with.
func (l *Locator) Config() config.Config {
	return *l.config
}

// Searcher returns the underlying searcher, for callers that need only search.
func (l *Locator) Searcher() *search.Searcher {
	return l.searcher
}
