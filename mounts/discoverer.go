package mounts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nourabosen/USearch/core"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/disk"
)

// DefaultBases are the prefixes under which desktop systems attach removable media.
var DefaultBases = []string{"/run/media", "/media", "/mnt"}

// DefaultTTL is how long a discovery result is reused.
const DefaultTTL = 2 * time.Second

// TableFunc reads the live mount table.
type TableFunc func(ctx context.Context) ([]core.MountPoint, error)

// Discoverer enumerates mount points under the configured base prefixes.
type Discoverer struct {
	bases    []string
	table    TableFunc
	ttl      time.Duration
	watch    bool
	logger   *slog.Logger
	now      func() time.Time
	readable func(path string) bool

	mu       sync.Mutex
	cached   []core.MountPoint
	cachedAt time.Time
	valid    bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Option configures a Discoverer.
type Option func(*Discoverer) error

// WithBases replaces the base prefixes.
func WithBases(bases ...string) Option {
	return func(d *Discoverer) error {
		d.bases = lo.Map(bases, func(b string, _ int) string { return filepath.Clean(b) })
		return nil
	}
}

// WithTTL sets how long results are cached. Zero disables caching.
func WithTTL(ttl time.Duration) Option {
	return func(d *Discoverer) error {
		if ttl < 0 {
			ttl = 0
		}
		d.ttl = ttl
		return nil
	}
}

// WithWatch drops the cache whenever an entry changes under a base prefix.
func WithWatch(watch bool) Option {
	return func(d *Discoverer) error {
		d.watch = watch
		return nil
	}
}

// WithMountTable replaces the mount table reader.
func WithMountTable(table TableFunc) Option {
	return func(d *Discoverer) error {
		if table == nil {
			table = SystemTable
		}
		d.table = table
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discoverer) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDiscoverer creates a discoverer. Call Close to stop watching.
func NewDiscoverer(opts ...Option) (*Discoverer, error) {
	d := &Discoverer{
		bases:    DefaultBases,
		table:    SystemTable,
		ttl:      DefaultTTL,
		logger:   slog.Default(),
		now:      time.Now,
		readable: isReadableDir,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.watch {
		if err := d.startWatch(); err != nil {
			// Watching is an optimisation; fall back to TTL expiry alone.
			d.logger.Warn("error watching mount bases", "err", err)
		}
	}
	return d, nil
}

// Bases returns the configured base prefixes.
func (d *Discoverer) Bases() []string {
	return append([]string(nil), d.bases...)
}

// Discover returns the current mount points in discovery order, without duplicates.
func (d *Discoverer) Discover(ctx context.Context) []core.MountPoint {
	if d.ttl > 0 {
		d.mu.Lock()
		if d.valid && d.now().Sub(d.cachedAt) < d.ttl {
			cached := append([]core.MountPoint(nil), d.cached...)
			d.mu.Unlock()
			return cached
		}
		d.mu.Unlock()
	}

	found := d.discover(ctx)

	if d.ttl > 0 {
		d.mu.Lock()
		d.cached = append([]core.MountPoint(nil), found...)
		d.cachedAt = d.now()
		d.valid = true
		d.mu.Unlock()
	}
	return found
}

// Invalidate drops the cached result.
func (d *Discoverer) Invalidate() {
	d.mu.Lock()
	d.valid = false
	d.cached = nil
	d.mu.Unlock()
}

// Close stops the watcher, if any.
func (d *Discoverer) Close() error {
	if d.watcher == nil {
		return nil
	}
	err := d.watcher.Close()
	<-d.done
	d.watcher = nil
	return err
}

func (d *Discoverer) discover(ctx context.Context) []core.MountPoint {
	entries, err := d.table(ctx)
	var found []core.MountPoint
	if err != nil {
		d.logger.Debug("mount table unavailable, listing base directories", "err", err)
		found = d.listBases()
	} else {
		found = lo.Filter(entries, func(m core.MountPoint, _ int) bool {
			return d.underBase(m.Path) && d.readable(m.Path)
		})
	}

	found = lo.Map(found, func(m core.MountPoint, _ int) core.MountPoint {
		m.Path = filepath.Clean(m.Path)
		return m
	})
	found = lo.UniqBy(found, func(m core.MountPoint) string { return m.Path })
	d.logger.Debug("discovered mount points", "count", len(found))
	return found
}

func (d *Discoverer) underBase(path string) bool {
	return lo.ContainsBy(d.bases, func(base string) bool { return core.IsUnder(path, base) })
}

// listBases returns the immediate subdirectories of every base prefix.
func (d *Discoverer) listBases() []core.MountPoint {
	var found []core.MountPoint
	for _, base := range d.bases {
		entries, err := os.ReadDir(base)
		if err != nil {
			d.logger.Debug("skipping mount base", "base", base, "err", err)
			continue
		}
		for _, entry := range entries {
			path := filepath.Join(base, entry.Name())
			if d.readable(path) {
				found = append(found, core.MountPoint{Path: path})
			}
		}
	}
	return found
}

// listPartitions is replaced in tests.
var listPartitions = disk.PartitionsWithContext

// SystemTable reads the operating system's mount table.
// Mount paths arrive with the kernel's octal escapes already undone.
func SystemTable(ctx context.Context) ([]core.MountPoint, error) {
	partitions, err := listPartitions(ctx, true)
	if err != nil && len(partitions) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMountTableUnavailable, err)
	}
	if len(partitions) == 0 {
		return nil, fmt.Errorf("%w: no partitions reported", ErrMountTableUnavailable)
	}
	return lo.Map(partitions, func(p disk.PartitionStat, _ int) core.MountPoint {
		return core.MountPoint{
			Path:   p.Mountpoint,
			Device: p.Device,
			FSType: p.Fstype,
		}
	}), nil
}
