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


package sources

import "errors"

var (
	// ErrSourceUnavailable indicates one search provider failed (timeout,
	// transport error, bad status). It is recovered locally by the
	// aggregator and never surfaces unless every source fails.
	ErrSourceUnavailable = errors.New("search source unavailable")

	// ErrAPIKeyRequired is returned by constructors of adapters that
	// cannot operate without a credential.
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrBaseURLRequired is returned by constructors of adapters that
	// need an instance URL (e.g. a self-hosted SearXNG).
	ErrBaseURLRequired = errors.New("base URL required")
)
