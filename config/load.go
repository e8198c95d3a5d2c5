package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. USEARCH_WORKERS=8.
	EnvPrefix = "USEARCH"

	// DefaultFileName is looked up in the user config directory.
	DefaultFileName = "config.yaml"
)

// ErrConfigNotFound is returned when an explicitly named config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// DefaultPath returns the config file used when none is named explicitly.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "usearch", DefaultFileName), nil
}

// Load reads configuration from path, or from DefaultPath when path is empty,
// and applies USEARCH_* environment overrides on top of the defaults.
// A missing default file is not an error. The returned path is the file that
// was read, or "" when only defaults and environment were used.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	resolved, err := readConfigFile(v, path)
	if err != nil {
		return nil, "", err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, resolved, nil
}

func readConfigFile(v *viper.Viper, path string) (string, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return "", nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return "", nil
		}
		return "", fmt.Errorf("config file %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config file %q is a directory", path)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config file %q: %w", path, err)
	}
	return path, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("limit", d.Limit)
	v.SetDefault("hardware_prefix", d.HardwarePrefix)
	v.SetDefault("raw_prefix", d.RawPrefix)
	v.SetDefault("indexed_timeout", d.IndexedTimeout)
	v.SetDefault("mount_timeout", d.MountTimeout)
	v.SetDefault("max_indexed_results", d.MaxIndexedResults)
	v.SetDefault("max_results_per_mount", d.MaxResultsPerMount)
	v.SetDefault("mount_bases", d.MountBases)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("index_command", d.IndexCommand)
	v.SetDefault("index_candidates", d.IndexCandidates)
	v.SetDefault("find_command", d.FindCommand)
	v.SetDefault("force_walk", d.ForceWalk)
	v.SetDefault("include_directories", d.IncludeDirectories)
	v.SetDefault("mount_cache_ttl", d.MountCacheTTL)
	v.SetDefault("watch_mounts", d.WatchMounts)
}
