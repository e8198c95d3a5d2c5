package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	usearch "github.com/nourabosen/USearch"
	"github.com/nourabosen/USearch/config"
	"github.com/nourabosen/USearch/core"
	"github.com/nourabosen/USearch/search"
	"github.com/urfave/cli/v2"
)

func searchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	args := c.Args().Slice()
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		printModes(c.App.Writer, cfg)
		return nil
	}

	locator, err := usearch.NewLocator(usearch.WithConfig(cfg), usearch.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer locator.Close()

	var monitor search.SearchMonitor
	if c.Bool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, "index: %s\n", indexStatus(locator))
		monitor = &stageReporter{w: c.App.ErrWriter}
	}
	paths, err := locator.SearchArgs(c.Context, args, monitor)
	if err != nil {
		if errors.Is(err, core.ErrInvalidQuery) {
			printModes(c.App.ErrWriter, cfg)
		}
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintf(c.App.ErrWriter, "No files matching %q\n", query)
		return nil
	}

	if c.Bool("long") {
		printLong(c.App.Writer, paths)
	} else {
		for _, p := range paths {
			fmt.Fprintln(c.App.Writer, p)
		}
	}

	mode, _ := locator.ModeArgs(args)
	fmt.Fprintf(c.App.ErrWriter, "Found %d results - %s\n", len(paths), mode.Description())
	return nil
}

func mountsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	locator, err := usearch.NewLocator(usearch.WithConfig(cfg), usearch.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer locator.Close()

	found := locator.Mounts(c.Context)
	if len(found) == 0 {
		fmt.Fprintf(c.App.ErrWriter, "No mount points under %s\n", strings.Join(cfg.MountBases, ", "))
		return nil
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, m := range found {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Path, orDash(m.Device), orDash(m.FSType))
	}
	return tw.Flush()
}

func configCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	locator, err := usearch.NewLocator(usearch.WithConfig(cfg), usearch.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer locator.Close()

	limit := "none"
	if cfg.Limit > 0 {
		limit = fmt.Sprint(cfg.Limit)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"limit", limit},
		{"hardware_prefix", cfg.HardwarePrefix},
		{"raw_prefix", cfg.RawPrefix},
		{"indexed_timeout", cfg.IndexedTimeout.String()},
		{"mount_timeout", cfg.MountTimeout.String()},
		{"max_indexed_results", fmt.Sprint(cfg.MaxIndexedResults)},
		{"max_results_per_mount", fmt.Sprint(cfg.MaxResultsPerMount)},
		{"mount_bases", strings.Join(cfg.MountBases, ", ")},
		{"workers", fmt.Sprint(cfg.Workers)},
		{"index_command", orDash(cfg.IndexCommand)},
		{"index_candidates", strings.Join(cfg.IndexCandidates, ", ")},
		{"index", indexStatus(locator)},
		{"find_command", orDash(cfg.FindCommand)},
		{"force_walk", fmt.Sprint(cfg.ForceWalk)},
		{"include_directories", fmt.Sprint(cfg.IncludeDirectories)},
		{"mount_cache_ttl", cfg.MountCacheTTL.String()},
		{"watch_mounts", fmt.Sprint(cfg.WatchMounts)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, path, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("loaded config file", "path", path)
	}

	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}
	if c.IsSet("hw-prefix") {
		cfg.HardwarePrefix = c.String("hw-prefix")
	}
	if c.IsSet("raw-prefix") {
		cfg.RawPrefix = c.String("raw-prefix")
	}
	if c.IsSet("base") {
		cfg.MountBases = c.StringSlice("base")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("indexed-timeout") {
		cfg.IndexedTimeout = c.Duration("indexed-timeout")
	}
	if c.IsSet("mount-timeout") {
		cfg.MountTimeout = c.Duration("mount-timeout")
	}
	if c.Bool("walk") {
		cfg.ForceWalk = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printModes is shown when there is nothing to search for.
func printModes(w io.Writer, cfg *config.Config) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Normal search:\tusearch <pattern>\tFast indexed search + hardware drives\n")
	fmt.Fprintf(tw, "Hardware search:\tusearch %s <pattern>\tSearch only mounted drives (%s)\n", cfg.HardwarePrefix, strings.Join(cfg.MountBases, ", "))
	fmt.Fprintf(tw, "Raw locate:\tusearch %s <args>\tRaw plocate/locate arguments\n", cfg.RawPrefix)
	tw.Flush()
}

func printLong(w io.Writer, paths []string) {
	for _, p := range paths {
		size := "-"
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Fprintf(w, "%8s  %s\n", size, p)
	}
}

func indexStatus(l *usearch.Locator) string {
	if l.IndexAvailable() {
		return "available"
	}
	return "unavailable"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// stageReporter prints search progress for --verbose.
type stageReporter struct {
	w     io.Writer
	start time.Time
}

func (r *stageReporter) Start(query string) {
	r.start = time.Now()
	fmt.Fprintf(r.w, "query: %q\n", query)
}

func (r *stageReporter) AfterParse(q core.Query) {
	fmt.Fprintf(r.w, "mode: %s\n", q.Mode.Description())
}

func (r *stageReporter) AfterDiscover(mounts []core.MountPoint) {
	if len(mounts) == 0 {
		fmt.Fprintln(r.w, "mounts: none")
		return
	}
	names := make([]string, len(mounts))
	for i, m := range mounts {
		names[i] = m.Path
	}
	fmt.Fprintf(r.w, "mounts: %s\n", strings.Join(names, ", "))
}

func (r *stageReporter) AfterIndexed(result core.BackendResult) {
	r.report("indexed", result)
}

func (r *stageReporter) AfterLive(result core.BackendResult) {
	r.report("live", result)
}

func (r *stageReporter) Finish(paths []string) {
	fmt.Fprintf(r.w, "done: %d paths in %s\n", len(paths), time.Since(r.start).Round(time.Millisecond))
}

func (r *stageReporter) report(source string, result core.BackendResult) {
	if result.Ok() {
		fmt.Fprintf(r.w, "%s: %d paths\n", source, len(result.Paths))
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", source, result.AsError())
}
