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

// Package backend holds the plumbing shared by the search backends.
//
// Policy carries every timeout and result cap in one value so that the
// indexed lookup and each per-mount traversal apply the same rules. Runner
// starts external tools in their own process group and terminates the whole
// group when a deadline expires, the caller cancels, or a result cap is
// reached, so no child process outlives the call that spawned it.
//
// The concrete backends live in the locate (indexed lookup) and live
// (mounted media traversal) subpackages; mock provides test doubles.
package backend
