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


package synth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/lancer/core"
)

// Synthesizer produces grounded answers from ranked results using a
// fallback chain of LLM providers.
type Synthesizer struct {
	providers []Provider
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Synthesizer over the given provider chain. Providers are
// tried in order; the first to succeed produces the answer.
func New(providers []Provider, opts ...Option) (*Synthesizer, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	s := &Synthesizer{
		providers: providers,
		now:       time.Now,
		logger:    slog.Default().With("component", "synth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Synthesize generates an answer for the query from the ranked results.
// It never fails: when every provider errors out it returns a templated
// digest of the top results marked as degraded.
func (s *Synthesizer) Synthesize(ctx context.Context, query core.Query, intent core.TemporalIntent, results []core.ScoredResult) core.Answer {
	if len(results) == 0 {
		return core.Answer{
			Text:     fmt.Sprintf("No search results were found for %q. Try rephrasing the question or broadening the time range.", query.Text),
			Degraded: true,
		}
	}

	prompt := buildPrompt(query, intent, results, s.now())

	for _, provider := range s.providers {
		text, err := provider.Synthesize(ctx, prompt)
		if err != nil {
			s.logger.Warn("provider failed, trying next", "provider", provider.Name(), "error", err)
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			s.logger.Warn("provider returned empty answer, trying next", "provider", provider.Name())
			continue
		}

		return core.Answer{
			Text:         text,
			Citations:    extractCitations(text, results),
			ProviderUsed: provider.Name(),
		}
	}

	s.logger.Error("all providers failed, returning digest", "providers", len(s.providers))
	return digestAnswer(query, results)
}

var citationPattern = regexp.MustCompile(`\[(\d+)\]`)

// extractCitations collects the bracketed indices the model actually
// used, in order of first appearance, dropping anything outside the
// result range. A model that cites nothing gets cited for everything:
// the answer is still grounded in the full result set.
func extractCitations(text string, results []core.ScoredResult) []core.Citation {
	seen := make(map[int]bool)
	var citations []core.Citation

	for _, match := range citationPattern.FindAllStringSubmatch(text, -1) {
		index, err := strconv.Atoi(match[1])
		if err != nil || index < 1 || index > len(results) {
			continue
		}
		if seen[index] {
			continue
		}
		seen[index] = true

		citations = append(citations, core.Citation{
			Index: index,
			URL:   results[index-1].URL,
			Title: results[index-1].Title,
		})
	}

	if len(citations) == 0 {
		citations = allCitations(results)
	}
	return citations
}

func allCitations(results []core.ScoredResult) []core.Citation {
	citations := make([]core.Citation, 0, len(results))
	for i, result := range results {
		citations = append(citations, core.Citation{
			Index: i + 1,
			URL:   result.URL,
			Title: result.Title,
		})
	}
	return citations
}

// digestTopResults bounds the degraded answer's length.
const digestTopResults = 3

// digestAnswer renders a plain summary of the top results. Used when no
// provider could generate an answer.
func digestAnswer(query core.Query, results []core.ScoredResult) core.Answer {
	limit := min(len(results), digestTopResults)

	var b strings.Builder
	fmt.Fprintf(&b, "An answer could not be generated for %q. The most relevant sources found:\n", query.Text)
	for i := 0; i < limit; i++ {
		fmt.Fprintf(&b, "\n[%d] %s\n%s", i+1, results[i].Title, results[i].URL)
		if snippet := strings.TrimSpace(results[i].Snippet); snippet != "" {
			fmt.Fprintf(&b, "\n%s", snippet)
		}
		b.WriteString("\n")
	}

	return core.Answer{
		Text:      b.String(),
		Citations: allCitations(results[:limit]),
		Degraded:  true,
	}
}
