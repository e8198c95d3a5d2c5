package live

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/core"
)

// walkMount is the in-process equivalent of findMount.
func (b *Backend) walkMount(ctx context.Context, term, root string) core.BackendResult {
	needle := strings.ToLower(term)
	paths := make([]string, 0, 32)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable subtree: skip it and keep walking its siblings.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() && !b.includeDirs {
			return nil
		}
		if !strings.Contains(strings.ToLower(d.Name()), needle) {
			return nil
		}

		paths = append(paths, path)
		if len(paths) >= b.policy.MaxResultsPerMount {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		if backend.IsTimeout(err) {
			return core.Failed(core.StatusTimedOut, err)
		}
		return core.Failed(core.StatusExecutionFailed, err)
	}
	return core.OK(paths)
}
