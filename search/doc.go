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

// Package search merges indexed and live filename search into one ordered result.
//
// A Searcher parses each query into one of three modes and dispatches it:
//   - Normal queries run the indexed lookup and the live mount traversal
//     concurrently and merge the two, indexed paths first
//   - Hardware-only queries ("hw <term>") skip the index and search mounted media
//   - Raw queries ("r <args...>") hand the arguments straight to the index tool
//
// Backend timeouts and failures degrade to fewer results, never to an error.
// Search only fails for an invalid query, a raw query with no index tool, or
// when the caller cancels the context.
package search
