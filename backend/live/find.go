package live

import (
	"context"
	"strings"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/core"
)

// globEscaper makes find's -iname treat the term as literal text.
var globEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeGlob(term string) string {
	return globEscaper.Replace(term)
}

// findArgs builds the find invocation for one root.
func findArgs(root, term string, includeDirs bool) []string {
	args := []string{root}
	if !includeDirs {
		args = append(args, "!", "-type", "d")
	}
	return append(args, "-iname", "*"+escapeGlob(term)+"*")
}

func (b *Backend) findMount(ctx context.Context, tool backend.Tool, term, root string) core.BackendResult {
	name, argv := tool.Command(findArgs(root, term, b.includeDirs)...)

	paths := make([]string, 0, 32)
	out, err := b.runner.Run(ctx, name, argv, func(line string) bool {
		paths = append(paths, line)
		return len(paths) < b.policy.MaxResultsPerMount
	})
	if err != nil {
		if backend.IsTimeout(err) {
			return core.Failed(core.StatusTimedOut, err)
		}
		return core.Failed(core.StatusExecutionFailed, err)
	}

	// find exits 1 when some subtree was unreadable; what it printed is still valid.
	if out.ExitCode > 1 {
		return core.Failed(core.StatusExecutionFailed, &ExitError{Code: out.ExitCode})
	}
	return core.OK(paths)
}
