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


// Package rank scores merged search results on two axes, freshness and
// authority, and orders them by a weighted combination of the two. The
// temporal intent of the query chooses the weights: time-sensitive
// queries favor freshness, evergreen queries favor authority.
//
// Ranking is deterministic. Ties are broken first by corroboration
// (results confirmed by more sources win) and then by merge position.
package rank
