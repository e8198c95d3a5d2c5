package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nourabosen/USearch/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, 0, cfg.Limit)
	assert.Equal(t, "hw", cfg.HardwarePrefix)
	assert.Equal(t, "r", cfg.RawPrefix)
	assert.Equal(t, 5*time.Second, cfg.IndexedTimeout)
	assert.Equal(t, 10*time.Second, cfg.MountTimeout)
	assert.Equal(t, []string{"/run/media", "/media", "/mnt"}, cfg.MountBases)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"plocate", "locate"}, cfg.IndexCandidates)
	assert.Equal(t, "find", cfg.FindCommand)
	assert.True(t, cfg.IncludeDirectories)
	assert.Equal(t, 2*time.Second, cfg.MountCacheTTL)
	assert.False(t, cfg.WatchMounts)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_DoesNotShareSlices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MountBases[0] = "/elsewhere"

	assert.Equal(t, "/run/media", DefaultConfig().MountBases[0])
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithLimit(25),
			WithPrefixes("dev", "loc"),
			WithTimeouts(time.Second, 3*time.Second),
			WithMountBases("/media"),
			WithWorkers(8),
			WithIndexCommand("plocate -d /tmp/db"),
			WithFindCommand(""),
			WithForceWalk(true),
			WithMountCache(0, true),
		)

		assert.Equal(t, 25, cfg.Limit)
		assert.Equal(t, "dev", cfg.HardwarePrefix)
		assert.Equal(t, "loc", cfg.RawPrefix)
		assert.Equal(t, time.Second, cfg.IndexedTimeout)
		assert.Equal(t, 3*time.Second, cfg.MountTimeout)
		assert.Equal(t, []string{"/media"}, cfg.MountBases)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, "plocate -d /tmp/db", cfg.IndexCommand)
		assert.Empty(t, cfg.FindCommand)
		assert.True(t, cfg.ForceWalk)
		assert.Zero(t, cfg.MountCacheTTL)
		assert.True(t, cfg.WatchMounts)
	})
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Limit:           -4,
		HardwarePrefix:  "  ",
		RawPrefix:       " raw ",
		MountBases:      []string{" /media ", "", "  "},
		IndexCandidates: nil,
		IndexCommand:    "  plocate  ",
		MountCacheTTL:   -time.Second,
	}
	cfg.Normalize()

	assert.Equal(t, 0, cfg.Limit)
	assert.Equal(t, "hw", cfg.HardwarePrefix)
	assert.Equal(t, "raw", cfg.RawPrefix)
	assert.Equal(t, []string{"/media"}, cfg.MountBases)
	assert.Equal(t, []string{"plocate", "locate"}, cfg.IndexCandidates)
	assert.Equal(t, "plocate", cfg.IndexCommand)
	assert.Zero(t, cfg.MountCacheTTL)

	cfg.MountBases = nil
	cfg.Normalize()
	assert.Equal(t, []string{"/run/media", "/media", "/mnt"}, cfg.MountBases)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"multi-word prefix", func(c *Config) { c.HardwarePrefix = "hard ware" }},
		{"zero indexed timeout", func(c *Config) { c.IndexedTimeout = 0 }},
		{"negative mount timeout", func(c *Config) { c.MountTimeout = -time.Second }},
		{"zero indexed cap", func(c *Config) { c.MaxIndexedResults = 0 }},
		{"zero mount cap", func(c *Config) { c.MaxResultsPerMount = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"relative base", func(c *Config) { c.MountBases = []string{"media"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestResultLimit(t *testing.T) {
	cfg := NewConfig()
	assert.Nil(t, cfg.ResultLimit())

	cfg.Limit = 12
	limit := cfg.ResultLimit()
	require.NotNil(t, limit)
	assert.Equal(t, 12, *limit)

	*limit = 1
	assert.Equal(t, 12, cfg.Limit)
}

func TestPolicy(t *testing.T) {
	cfg := NewConfig(WithTimeouts(time.Second, 2*time.Second))
	cfg.MaxIndexedResults = 7
	cfg.MaxResultsPerMount = 0

	p := cfg.Policy()
	assert.Equal(t, time.Second, p.IndexedTimeout)
	assert.Equal(t, 2*time.Second, p.MountTimeout)
	assert.Equal(t, 7, p.MaxIndexedResults)
	assert.Equal(t, backend.DefaultMaxResultsPerMount, p.MaxResultsPerMount)
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func isolateUserConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_YAMLFile(t *testing.T) {
	isolateUserConfig(t)
	path := writeConfig(t, "usearch.yaml", `
limit: 40
hardware_prefix: dev
indexed_timeout: 750ms
mount_timeout: 20s
mount_bases:
  - /media
  - /srv/removable
workers: 2
index_command: plocate -d /var/lib/plocate/extra.db
force_walk: true
include_directories: false
watch_mounts: true
`)

	cfg, resolved, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, resolved)
	assert.Equal(t, 40, cfg.Limit)
	assert.Equal(t, "dev", cfg.HardwarePrefix)
	assert.Equal(t, "r", cfg.RawPrefix)
	assert.Equal(t, 750*time.Millisecond, cfg.IndexedTimeout)
	assert.Equal(t, 20*time.Second, cfg.MountTimeout)
	assert.Equal(t, []string{"/media", "/srv/removable"}, cfg.MountBases)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "plocate -d /var/lib/plocate/extra.db", cfg.IndexCommand)
	assert.True(t, cfg.ForceWalk)
	assert.False(t, cfg.IncludeDirectories)
	assert.True(t, cfg.WatchMounts)
	assert.Equal(t, "find", cfg.FindCommand)
}

func TestLoad_TOMLFile(t *testing.T) {
	isolateUserConfig(t)
	path := writeConfig(t, "usearch.toml", "workers = 6\nraw_prefix = \"loc\"\n")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "loc", cfg.RawPrefix)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolateUserConfig(t)

	cfg, resolved, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultPath(t *testing.T) {
	dir := isolateUserConfig(t)
	path := filepath.Join(dir, "usearch", DefaultFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("limit: 9\n"), 0o644))

	cfg, resolved, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, 9, cfg.Limit)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolateUserConfig(t)
	path := writeConfig(t, "usearch.yaml", "workers: 2\n")
	t.Setenv("USEARCH_WORKERS", "8")
	t.Setenv("USEARCH_MOUNT_TIMEOUT", "3s")
	t.Setenv("USEARCH_HARDWARE_PREFIX", "usb")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 3*time.Second, cfg.MountTimeout)
	assert.Equal(t, "usb", cfg.HardwarePrefix)
}

func TestLoad_Errors(t *testing.T) {
	isolateUserConfig(t)

	t.Run("explicit file missing", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, _, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, _, err := Load(writeConfig(t, "bad.yaml", "workers: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, _, err := Load(writeConfig(t, "zero.yaml", "workers: 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
