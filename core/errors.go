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


package core

import "errors"

// Query validation errors. These are client errors: they surface
// immediately and no network call is attempted.
var (
	// ErrEmptyQuery indicates the query text is empty or whitespace.
	ErrEmptyQuery = errors.New("query text cannot be empty")

	// ErrInvalidMaxResults indicates MaxResults is out of range.
	ErrInvalidMaxResults = errors.New("max results out of range")

	// ErrInvalidFreshnessHint indicates an unrecognized freshness hint value.
	ErrInvalidFreshnessHint = errors.New("invalid freshness hint")
)
