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

// Package mounts discovers where removable media is currently attached.
//
// The live mount table is filtered down to entries under a set of base
// prefixes (by default /run/media, /media and /mnt). When the table cannot be
// read, the immediate subdirectories of each base prefix are used instead.
// Discovery never fails: unreadable prefixes are skipped and an empty result
// is a normal outcome.
//
// Results can be cached for a short time. With watching enabled, the cache is
// dropped as soon as an entry appears or disappears under a base prefix, which
// is what attaching or ejecting a device looks like from the filesystem.
package mounts
