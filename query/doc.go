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

// Package query classifies raw search strings into dispatch modes.
//
// A query whose first token matches the hardware prefix searches only the
// mounted media. A query whose first token matches the raw prefix forwards the
// remaining tokens, untouched, to the index lookup tool. Anything else is a
// Normal query that consults both sources.
//
// Raw mode is a trust boundary: the arguments reach the lookup tool exactly as
// typed, so it is meant for a local user driving their own tool flags.
package query
