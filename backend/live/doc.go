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

// Package live searches mounted media at query time.
//
// Each mount point is traversed by one task on a bounded worker pool, under
// its own deadline and result cap, so one slow or enormous device cannot
// stall the others. Traversal uses find when it is installed and an
// in-process directory walk otherwise; both match the term as a literal,
// case-insensitive substring of the entry name.
package live
