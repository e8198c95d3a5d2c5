//go:build windows

package mounts

import "os"

func isReadableDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
