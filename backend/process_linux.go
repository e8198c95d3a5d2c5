//go:build linux

package backend

import "syscall"

// setPdeathsig kills the child if the search process dies first.
func setPdeathsig(attr *syscall.SysProcAttr) {
	attr.Pdeathsig = syscall.SIGKILL
}
