//go:build !windows

package mounts

import (
	"os"

	"golang.org/x/sys/unix"
)

// isReadableDir reports whether path is a directory this process can list.
func isReadableDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return unix.Access(path, unix.R_OK|unix.X_OK) == nil
}
