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


// Package sources defines the uniform interface over external search
// providers.
//
// Each provider lives in its own sub-package and implements the Adapter
// interface:
//
//   - sources/tavily: Tavily REST API (key required, best quality)
//   - sources/searxng: self-hosted SearXNG meta-search (no key)
//   - sources/duckduckgo: DuckDuckGo Lite HTML endpoint (no key)
//   - sources/wikipedia: MediaWiki search for background material (no key)
//   - sources/mock: test doubles for unit testing without network access
//
// Adapters normalize provider responses into core.RawResult values and
// report transport failures as ErrSourceUnavailable. They never retry;
// retry policy belongs to the aggregator.
package sources
