package core

import "fmt"

// SearchMode identifies how a query is dispatched to the backends.
type SearchMode int

const (
	// SearchModeNormal queries the index and the mounted media concurrently.
	SearchModeNormal SearchMode = iota + 1
	// SearchModeHardwareOnly searches only the discovered mount points.
	SearchModeHardwareOnly
	// SearchModeRaw passes the arguments straight to the index lookup tool.
	SearchModeRaw
)

// String returns a human readable name for the mode.
func (m SearchMode) String() string {
	switch m {
	case SearchModeNormal:
		return "normal"
	case SearchModeHardwareOnly:
		return "hardware"
	case SearchModeRaw:
		return "raw"
	default:
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
}

// Description is the one-line summary shown next to a result count.
func (m SearchMode) Description() string {
	switch m {
	case SearchModeNormal:
		return "Combined search (indexed + hardware)"
	case SearchModeHardwareOnly:
		return "Hardware-only search"
	case SearchModeRaw:
		return "Raw locate search"
	default:
		return m.String()
	}
}

// Query is a parsed search request.
// Term is set for Normal and HardwareOnly queries, RawArgs only for Raw queries.
type Query struct {
	Raw     string
	Mode    SearchMode
	Term    string
	RawArgs []string
}

// MountPoint is a directory where a distinct filesystem is attached.
type MountPoint struct {
	Path   string
	Device string // empty when discovered through the directory-listing fallback
	FSType string
}

func (m MountPoint) String() string {
	return m.Path
}

// Status tags the outcome of a backend call.
type Status int

const (
	// StatusOk means the backend ran; Paths may still be empty.
	StatusOk Status = iota
	// StatusTimedOut means the deadline expired before the backend finished.
	StatusTimedOut
	// StatusUnavailable means the required external tool is missing.
	StatusUnavailable
	// StatusExecutionFailed means the external tool reported a genuine error.
	StatusExecutionFailed
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusTimedOut:
		return "timed out"
	case StatusUnavailable:
		return "unavailable"
	case StatusExecutionFailed:
		return "execution failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// BackendResult is the outcome of one backend call.
// A non-Ok result never carries paths.
type BackendResult struct {
	Paths  []string
	Status Status
	Err    error // diagnostic cause for non-Ok results, may be nil
}

// OK builds a successful result.
func OK(paths []string) BackendResult {
	if paths == nil {
		paths = []string{}
	}
	return BackendResult{Paths: paths, Status: StatusOk}
}

// Failed builds a non-Ok result with an empty path list.
// Passing StatusOk is a programming error and yields an execution failure.
func Failed(status Status, cause error) BackendResult {
	if status == StatusOk {
		status = StatusExecutionFailed
	}
	return BackendResult{Paths: []string{}, Status: status, Err: cause}
}

// Ok reports whether the call succeeded.
func (r BackendResult) Ok() bool {
	return r.Status == StatusOk
}

// AsError maps a non-Ok status to its sentinel error, wrapping the cause when present.
func (r BackendResult) AsError() error {
	var sentinel error
	switch r.Status {
	case StatusOk:
		return nil
	case StatusTimedOut:
		sentinel = ErrBackendTimeout
	case StatusUnavailable:
		sentinel = ErrBackendUnavailable
	default:
		sentinel = ErrBackendExecution
	}
	if r.Err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, r.Err)
}
