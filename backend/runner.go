package backend

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
)

// maxLineBytes bounds a single output line; paths longer than this are a tool error.
const maxLineBytes = 1024 * 1024

// LineFunc receives one non-blank output line. Returning false stops the tool.
type LineFunc func(line string) bool

// Outcome describes how a finished tool exited.
type Outcome struct {
	ExitCode  int
	Truncated bool // the LineFunc stopped the tool before it finished
}

// Runner starts external tools in their own process group.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default().
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run executes name with args, streaming stdout lines to fn. Stderr is discarded.
//
// When ctx ends before the tool exits, the whole process group is killed and
// ctx.Err() is returned. A non-zero exit is reported through Outcome.ExitCode
// with a nil error; callers decide which codes mean "no matches".
func (r *Runner) Run(ctx context.Context, name string, args []string, fn LineFunc) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	cmd := exec.Command(name, args...)
	configureProcessGroup(cmd)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{}, err
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return Outcome{}, errors.Join(ErrToolNotFound, err)
		}
		return Outcome{}, err
	}

	done := make(chan struct{})
	watcherExited := make(chan struct{})
	go func() {
		defer close(watcherExited)
		select {
		case <-ctx.Done():
			if err := killProcessGroup(cmd); err != nil {
				r.logger.Debug("error killing process group", "tool", name, "err", err)
			}
		case <-done:
		}
	}()

	truncated := false
	scanErr := scanLines(stdout, func(line string) bool {
		if fn(line) {
			return true
		}
		truncated = true
		return false
	})
	if truncated || scanErr != nil {
		_ = killProcessGroup(cmd)
	}

	waitErr := cmd.Wait()
	close(done)
	<-watcherExited

	if ctxErr := ctx.Err(); ctxErr != nil && !truncated {
		return Outcome{}, ctxErr
	}
	if truncated {
		return Outcome{Truncated: true}, nil
	}
	if scanErr != nil {
		return Outcome{}, scanErr
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode()}, nil
	}
	if waitErr != nil {
		return Outcome{}, waitErr
	}
	return Outcome{}, nil
}

// scanLines feeds non-blank lines from rd to fn until EOF or fn returns false.
func scanLines(rd io.Reader, fn func(string) bool) error {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !fn(line) {
			return nil
		}
	}
	return scanner.Err()
}
