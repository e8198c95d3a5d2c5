package search

import (
	"github.com/nourabosen/USearch/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
//
// Hooks are called from the goroutine running Search, after the backends have
// joined, so implementations need no locking. Stages a mode skips are not reported.
type SearchMonitor interface {
	Start(query string)
	AfterParse(q core.Query)
	AfterDiscover(mounts []core.MountPoint)
	AfterIndexed(result core.BackendResult)
	AfterLive(result core.BackendResult)
	Finish(paths []string)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterParse(_ core.Query)           {}
func (n *noopMonitor) AfterDiscover(_ []core.MountPoint) {}
func (n *noopMonitor) AfterIndexed(_ core.BackendResult) {}
func (n *noopMonitor) AfterLive(_ core.BackendResult)    {}
func (n *noopMonitor) Finish(_ []string)                 {}
