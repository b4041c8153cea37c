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


package temporal

import (
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/lancer/core"
)

// Default windows per inferred label.
const (
	BreakingWindow = 48 * time.Hour
	RecentWindow   = 30 * 24 * time.Hour
)

// Explicit hint windows.
const (
	DayWindow   = 24 * time.Hour
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
	YearWindow  = 365 * 24 * time.Hour
)

// Classifier derives a TemporalIntent from a query.
// It is stateless and safe for concurrent use.
type Classifier struct {
	now func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock sets the clock used for current-year markers.
// Default is time.Now. Tests inject a fixed clock for determinism.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClassifier creates a new temporal classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify derives the temporal intent of a query.
//
// An explicit freshness hint maps deterministically to its window with
// label "explicit". Otherwise lexical heuristics over the query text infer
// breaking (48h window), recent (30d window) or evergreen (unbounded).
// The result is deterministic for a given query text and clock.
func (c *Classifier) Classify(q core.Query) core.TemporalIntent {
	if q.Freshness != core.HintNone {
		return explicitIntent(q.Freshness)
	}
	return c.inferIntent(q.Text)
}

func explicitIntent(hint core.FreshnessHint) core.TemporalIntent {
	intent := core.TemporalIntent{Label: core.LabelExplicit, Urgency: 0.5}
	switch hint {
	case core.HintDay:
		intent.Window = core.Window{Width: DayWindow}
	case core.HintWeek:
		intent.Window = core.Window{Width: WeekWindow}
	case core.HintMonth:
		intent.Window = core.Window{Width: MonthWindow}
	case core.HintYear:
		intent.Window = core.Window{Width: YearWindow}
	default: // HintAny
		intent.Window = core.Window{Unbounded: true}
	}
	return intent
}

func (c *Classifier) inferIntent(text string) core.TemporalIntent {
	lower := strings.ToLower(text)

	var freshness, historical float64

	for _, keyword := range freshnessKeywords {
		if strings.Contains(lower, keyword) {
			freshness += 0.3
		}
	}
	for _, year := range c.dynamicYears() {
		if strings.Contains(lower, year) {
			freshness += 0.3
		}
	}
	for _, keyword := range historicalKeywords {
		if strings.Contains(lower, keyword) {
			historical += 0.3
		}
	}
	for _, pattern := range freshEntityPatterns {
		if pattern.MatchString(lower) {
			freshness += 0.2
		}
	}
	if questionPattern.MatchString(lower) {
		freshness += 0.1
	}
	if superlativePattern.MatchString(lower) {
		freshness += 0.15
	}

	freshness = min(freshness, 1.0)
	historical = min(historical, 1.0)

	switch {
	case freshness > historical && freshness > 0.2:
		urgency := min(0.3+freshness, 1.0)
		if breakingPattern.MatchString(lower) {
			return core.TemporalIntent{
				Label:   core.LabelBreaking,
				Window:  core.Window{Width: BreakingWindow},
				Urgency: urgency,
			}
		}
		return core.TemporalIntent{
			Label:   core.LabelRecent,
			Window:  core.Window{Width: RecentWindow},
			Urgency: urgency,
		}
	case historical > freshness && historical > 0.2:
		return core.TemporalIntent{
			Label:   core.LabelEvergreen,
			Window:  core.Window{Unbounded: true},
			Urgency: max(0.2-historical*0.1, 0.1),
		}
	default:
		return core.TemporalIntent{
			Label:   core.LabelEvergreen,
			Window:  core.Window{Unbounded: true},
			Urgency: 0.5,
		}
	}
}

// dynamicYears returns the current and previous year as marker strings.
func (c *Classifier) dynamicYears() []string {
	year := c.now().Year()
	return []string{strconv.Itoa(year), strconv.Itoa(year - 1)}
}
