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


package rank

import (
	"log/slog"
	"sort"
	"time"

	"github.com/poiesic/lancer/core"
)

// Per extra corroborating source, capped.
const (
	corroborationStep = 0.05
	corroborationCap  = 0.15
)

// Ranker scores and orders merged results.
type Ranker struct {
	now             func() time.Time
	domainOverrides map[string]float64
	logger          *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *Ranker) {
		if now != nil {
			r.now = now
		}
	}
}

// WithDomainScores adds or replaces entries in the authority table.
// Keys are registrable domains, values are scores in [0, 1].
func WithDomainScores(scores map[string]float64) Option {
	return func(r *Ranker) {
		for domain, score := range scores {
			r.domainOverrides[domain] = score
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Ranker.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		now:             time.Now,
		domainOverrides: make(map[string]float64),
		logger:          slog.Default().With("component", "rank"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank scores every merged result against the temporal intent and returns
// them ordered best-first, truncated to maxResults. The input slice is
// not modified.
func (r *Ranker) Rank(results []core.MergedResult, intent core.TemporalIntent, maxResults int) []core.ScoredResult {
	freshWeight, authWeight := weights(intent.Label)
	now := r.now()

	scored := make([]core.ScoredResult, 0, len(results))
	for _, result := range results {
		fresh := freshnessScore(result.PublishedAt, intent.Window, now)
		auth := authorityScore(result, r.domainOverrides)

		scored = append(scored, core.ScoredResult{
			MergedResult:   result,
			FreshnessScore: fresh,
			AuthorityScore: auth,
			CombinedScore:  freshWeight*fresh + authWeight*auth,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.CombinedScore != b.CombinedScore {
			return a.CombinedScore > b.CombinedScore
		}
		if len(a.Sources) != len(b.Sources) {
			return len(a.Sources) > len(b.Sources)
		}
		return a.Position < b.Position
	})

	if maxResults > 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	r.logger.Debug("ranking complete", "intent", intent.Label, "results", len(scored))
	return scored
}

// authorityScore rates a result's trustworthiness: the domain's table
// score boosted slightly when multiple sources returned the same URL.
func authorityScore(result core.MergedResult, overrides map[string]float64) float64 {
	score := domainScore(result.URL, overrides)

	if extra := len(result.Sources) - 1; extra > 0 {
		boost := float64(extra) * corroborationStep
		if boost > corroborationCap {
			boost = corroborationCap
		}
		score += boost
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// weights returns the (freshness, authority) weight pair for an intent.
func weights(label core.IntentLabel) (float64, float64) {
	switch label {
	case core.LabelBreaking, core.LabelRecent:
		return 0.7, 0.3
	case core.LabelEvergreen:
		return 0.3, 0.7
	default:
		return 0.5, 0.5
	}
}
