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

package core

import "errors"

// Error taxonomy shared by every component.
var (
	// ErrInvalidQuery indicates an empty query or a mode prefix with no term.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrBackendUnavailable indicates the external tool a backend needs is not installed.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrBackendTimeout indicates a backend call exceeded its deadline.
	ErrBackendTimeout = errors.New("backend timed out")

	// ErrBackendExecution indicates the external tool ran but reported a genuine error.
	ErrBackendExecution = errors.New("backend execution failed")

	// ErrEmptyTerm indicates a Normal or HardwareOnly query has no search term.
	ErrEmptyTerm = errors.New("search term cannot be empty")

	// ErrEmptyRawArgs indicates a Raw query has no arguments.
	ErrEmptyRawArgs = errors.New("raw arguments cannot be empty")

	// ErrInvalidSearchMode indicates an unknown SearchMode value.
	ErrInvalidSearchMode = errors.New("invalid search mode")
)
