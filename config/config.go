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

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/backend/live"
	"github.com/nourabosen/USearch/backend/locate"
	"github.com/nourabosen/USearch/mounts"
	"github.com/nourabosen/USearch/query"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to assemble a locator.
type Config struct {
	// Limit caps the number of returned paths. Zero means unbounded.
	Limit int `mapstructure:"limit"`

	// HardwarePrefix selects hardware-only mode when it is the first word of a query.
	// Default: "hw"
	HardwarePrefix string `mapstructure:"hardware_prefix"`

	// RawPrefix selects raw pass-through mode when it is the first word of a query.
	// Default: "r"
	RawPrefix string `mapstructure:"raw_prefix"`

	// IndexedTimeout bounds one index lookup.
	IndexedTimeout time.Duration `mapstructure:"indexed_timeout"`

	// MountTimeout bounds the traversal of one mount point.
	MountTimeout time.Duration `mapstructure:"mount_timeout"`

	// MaxIndexedResults caps the lines read from the index tool.
	MaxIndexedResults int `mapstructure:"max_indexed_results"`

	// MaxResultsPerMount caps the paths collected from one mount point.
	MaxResultsPerMount int `mapstructure:"max_results_per_mount"`

	// MountBases are the prefixes under which removable media is attached.
	MountBases []string `mapstructure:"mount_bases"`

	// Workers bounds how many mount points are traversed at once.
	Workers int `mapstructure:"workers"`

	// IndexCommand overrides index tool discovery, e.g. "plocate -d /var/lib/plocate/extra.db".
	IndexCommand string `mapstructure:"index_command"`

	// IndexCandidates are tried in order when IndexCommand is empty.
	IndexCandidates []string `mapstructure:"index_candidates"`

	// FindCommand is the traversal tool. Empty forces the in-process walk.
	FindCommand string `mapstructure:"find_command"`

	// ForceWalk skips the traversal tool even when it is installed.
	ForceWalk bool `mapstructure:"force_walk"`

	// IncludeDirectories reports matching directories as well as files.
	IncludeDirectories bool `mapstructure:"include_directories"`

	// MountCacheTTL is how long a mount discovery result is reused. Zero disables the cache.
	MountCacheTTL time.Duration `mapstructure:"mount_cache_ttl"`

	// WatchMounts drops the mount cache as soon as a device is attached or detached.
	WatchMounts bool `mapstructure:"watch_mounts"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithLimit sets the result cap. Zero removes it.
func WithLimit(n int) ConfigOption {
	return func(c *Config) {
		c.Limit = n
	}
}

// WithPrefixes sets the hardware-only and raw mode prefixes.
func WithPrefixes(hardwarePrefix, rawPrefix string) ConfigOption {
	return func(c *Config) {
		c.HardwarePrefix = hardwarePrefix
		c.RawPrefix = rawPrefix
	}
}

// WithTimeouts sets the index lookup and per-mount timeouts.
func WithTimeouts(indexed, mount time.Duration) ConfigOption {
	return func(c *Config) {
		c.IndexedTimeout = indexed
		c.MountTimeout = mount
	}
}

// WithMountBases replaces the mount base prefixes.
func WithMountBases(bases ...string) ConfigOption {
	return func(c *Config) {
		c.MountBases = bases
	}
}

// WithWorkers sets the live traversal concurrency.
func WithWorkers(n int) ConfigOption {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithIndexCommand sets the index tool command line.
func WithIndexCommand(command string) ConfigOption {
	return func(c *Config) {
		c.IndexCommand = command
	}
}

// WithFindCommand sets the traversal tool.
func WithFindCommand(command string) ConfigOption {
	return func(c *Config) {
		c.FindCommand = command
	}
}

// WithForceWalk always uses the in-process walk.
func WithForceWalk(force bool) ConfigOption {
	return func(c *Config) {
		c.ForceWalk = force
	}
}

// WithMountCache sets the discovery cache TTL and whether mount changes are watched.
func WithMountCache(ttl time.Duration, watch bool) ConfigOption {
	return func(c *Config) {
		c.MountCacheTTL = ttl
		c.WatchMounts = watch
	}
}

// DefaultConfig returns a Config with the default prefixes, timeouts and caps.
func DefaultConfig() *Config {
	return &Config{
		HardwarePrefix:     query.DefaultHardwarePrefix,
		RawPrefix:          query.DefaultRawPrefix,
		IndexedTimeout:     backend.DefaultIndexedTimeout,
		MountTimeout:       backend.DefaultMountTimeout,
		MaxIndexedResults:  backend.DefaultMaxIndexedResults,
		MaxResultsPerMount: backend.DefaultMaxResultsPerMount,
		MountBases:         append([]string(nil), mounts.DefaultBases...),
		Workers:            live.DefaultWorkers,
		IndexCandidates:    append([]string(nil), locate.DefaultCandidates...),
		FindCommand:        live.DefaultFindCommand,
		IncludeDirectories: true,
		MountCacheTTL:      mounts.DefaultTTL,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithLimit(50),
//	    WithMountBases("/media", "/mnt"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Blank prefixes and empty lists fall back to the defaults; whitespace is trimmed.
func (c *Config) Normalize() {
	c.HardwarePrefix = strings.TrimSpace(c.HardwarePrefix)
	if c.HardwarePrefix == "" {
		c.HardwarePrefix = query.DefaultHardwarePrefix
	}
	c.RawPrefix = strings.TrimSpace(c.RawPrefix)
	if c.RawPrefix == "" {
		c.RawPrefix = query.DefaultRawPrefix
	}
	c.IndexCommand = strings.TrimSpace(c.IndexCommand)
	c.FindCommand = strings.TrimSpace(c.FindCommand)

	c.MountBases = trimAll(c.MountBases)
	if len(c.MountBases) == 0 {
		c.MountBases = append([]string(nil), mounts.DefaultBases...)
	}
	c.IndexCandidates = trimAll(c.IndexCandidates)
	if len(c.IndexCandidates) == 0 {
		c.IndexCandidates = append([]string(nil), locate.DefaultCandidates...)
	}
	if c.Limit < 0 {
		c.Limit = 0
	}
	if c.MountCacheTTL < 0 {
		c.MountCacheTTL = 0
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if strings.ContainsAny(c.HardwarePrefix, " \t\n") || strings.ContainsAny(c.RawPrefix, " \t\n") {
		return fmt.Errorf("%w: prefixes must be single words", ErrInvalidConfig)
	}
	if c.IndexedTimeout <= 0 {
		return fmt.Errorf("%w: indexed_timeout must be positive", ErrInvalidConfig)
	}
	if c.MountTimeout <= 0 {
		return fmt.Errorf("%w: mount_timeout must be positive", ErrInvalidConfig)
	}
	if c.MaxIndexedResults < 1 {
		return fmt.Errorf("%w: max_indexed_results must be at least 1", ErrInvalidConfig)
	}
	if c.MaxResultsPerMount < 1 {
		return fmt.Errorf("%w: max_results_per_mount must be at least 1", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	for _, base := range c.MountBases {
		if !filepath.IsAbs(base) {
			return fmt.Errorf("%w: mount base %q is not absolute", ErrInvalidConfig, base)
		}
	}
	return nil
}

// ResultLimit returns the result cap as the searcher expects it: nil when unbounded.
func (c *Config) ResultLimit() *int {
	if c.Limit <= 0 {
		return nil
	}
	n := c.Limit
	return &n
}

// Policy returns the backend timeout and cap policy.
func (c *Config) Policy() backend.Policy {
	p := backend.Policy{
		IndexedTimeout:     c.IndexedTimeout,
		MountTimeout:       c.MountTimeout,
		MaxResultsPerMount: c.MaxResultsPerMount,
		MaxIndexedResults:  c.MaxIndexedResults,
	}
	p.Normalize()
	return p
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
