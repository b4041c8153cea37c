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


// Package temporal classifies how time-sensitive a search query is.
//
// The classifier is purely lexical: an explicit freshness hint maps
// deterministically to a recency window, and without a hint the query text
// is scanned for temporal markers (recency keywords, year mentions,
// time-sensitive entity patterns) to infer a label and a default window.
// No network or model call is made, so classification is fast, always
// available, and deterministic for a given input.
package temporal
