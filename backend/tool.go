package backend

import (
	"fmt"
	"os/exec"

	"github.com/google/shlex"
)

// Tool is a resolved external executable plus the leading arguments that
// every invocation carries (for example a database path).
type Tool struct {
	Path string
	Args []string
}

// Command returns the argument vector for one invocation.
func (t Tool) Command(args ...string) (string, []string) {
	argv := make([]string, 0, len(t.Args)+len(args))
	argv = append(argv, t.Args...)
	argv = append(argv, args...)
	return t.Path, argv
}

// ResolveTool finds the executable to run.
//
// A non-empty command is split with POSIX shell rules, so "plocate -d '/var/lib/my db'"
// yields the plocate binary with two leading arguments. Otherwise the first
// candidate found on PATH wins.
func ResolveTool(command string, candidates []string) (Tool, error) {
	if command != "" {
		words, err := shlex.Split(command)
		if err != nil {
			return Tool{}, fmt.Errorf("parse tool command %q: %w", command, err)
		}
		if len(words) == 0 {
			return Tool{}, ErrEmptyCommand
		}
		path, err := exec.LookPath(words[0])
		if err != nil {
			return Tool{}, fmt.Errorf("%w: %s: %w", ErrToolNotFound, words[0], err)
		}
		return Tool{Path: path, Args: words[1:]}, nil
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return Tool{Path: path}, nil
		}
	}
	return Tool{}, fmt.Errorf("%w: tried %v", ErrToolNotFound, candidates)
}
