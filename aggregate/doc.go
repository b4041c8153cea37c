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


// Package aggregate fans a query out to the configured search adapters
// concurrently, retries transient failures, and merges the raw results
// into a deduplicated list keyed by normalized URL.
//
// A query succeeds as long as at least one adapter returns results;
// individual adapter failures are logged and reported to the monitor but
// do not fail the query. Only when every adapter fails does aggregation
// return ErrNoSourcesAvailable.
package aggregate
