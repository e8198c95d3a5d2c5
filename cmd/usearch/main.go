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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

const usageText = `usearch [options] <pattern> | hw <pattern> | r <locate args>
usearch [options] search <pattern>`

const description = `Each shell argument stays one argument, so a quoted raw argument such as
'a b' reaches locate whole. A pattern that is also a command name (mounts,
config, search, help) or that starts with a dash must go through the search
command, which passes everything after it through unparsed.`

func newApp() *cli.App {
	return &cli.App{
		Name:        "usearch",
		Usage:       "Find files by name in the locate index and on mounted drives",
		UsageText:   usageText,
		Description: description,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: $XDG_CONFIG_HOME/usearch/config.yaml)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of results, 0 for no limit",
			},
			&cli.StringFlag{
				Name:  "hw-prefix",
				Usage: "Query prefix for hardware-only search",
			},
			&cli.StringFlag{
				Name:  "raw-prefix",
				Usage: "Query prefix for raw locate arguments",
			},
			&cli.StringSliceFlag{
				Name:  "base",
				Usage: "Mount base directory to search under (repeatable)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of mount points searched at the same time",
			},
			&cli.DurationFlag{
				Name:  "indexed-timeout",
				Usage: "Timeout for the locate lookup",
			},
			&cli.DurationFlag{
				Name:  "mount-timeout",
				Usage: "Timeout for searching one mount point",
			},
			&cli.BoolFlag{
				Name:  "walk",
				Usage: "Walk mount points in process instead of running find",
			},
			&cli.BoolFlag{
				Name:  "long",
				Usage: "Show file sizes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Report each search stage on stderr",
			},
		},
		Before: setupLogger,
		Action: searchCommand,
		Commands: []*cli.Command{
			{
				Name:            "search",
				Usage:           "Search for a pattern, even one that looks like a command or flag",
				ArgsUsage:       "<pattern> | hw <pattern> | r <locate args>",
				SkipFlagParsing: true,
				Action:          searchCommand,
			},
			{
				Name:   "mounts",
				Usage:  "List the mount points a hardware search would visit",
				Action: mountsCommand,
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration",
				Action: configCommand,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
