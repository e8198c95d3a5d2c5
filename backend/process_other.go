//go:build !linux && !windows

package backend

import "syscall"

func setPdeathsig(_ *syscall.SysProcAttr) {}
