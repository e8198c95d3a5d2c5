package mounts

import "errors"

// ErrMountTableUnavailable is returned by table readers that have no mount table to offer.
var ErrMountTableUnavailable = errors.New("mount table unavailable")
