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

import (
	"fmt"
	"strings"
)

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Text must not be empty or whitespace-only
//   - MaxResults must be 0 (defaulted by the caller) or within
//     [1, MaxResultsLimit]
//   - Freshness must be empty or one of the known hint values
func ValidateQuery(q Query) error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}

	if q.MaxResults < 0 || q.MaxResults > MaxResultsLimit {
		return fmt.Errorf("%w: %d", ErrInvalidMaxResults, q.MaxResults)
	}

	if err := ValidateFreshnessHint(q.Freshness); err != nil {
		return err
	}

	return nil
}

// ValidateFreshnessHint validates that a FreshnessHint has a known value.
func ValidateFreshnessHint(hint FreshnessHint) error {
	switch hint {
	case HintNone, HintDay, HintWeek, HintMonth, HintYear, HintAny:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFreshnessHint, hint)
	}
}

// EffectiveMaxResults returns the result bound for a query, applying the
// default when none was requested.
func (q Query) EffectiveMaxResults() int {
	if q.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return q.MaxResults
}
