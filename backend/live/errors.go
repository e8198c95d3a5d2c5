// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package live

import (
	"errors"
	"fmt"
)

var (
	// ErrAllMountsTimedOut is recorded when every mount traversal hit its deadline.
	ErrAllMountsTimedOut = errors.New("all mount traversals timed out")

	// ErrNoMountSucceeded is recorded when no traversal completed successfully.
	ErrNoMountSucceeded = errors.New("no mount traversal succeeded")
)

// ExitError records a traversal tool failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("traversal tool exited with status %d", e.Code)
}
