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
	"testing"
	"time"

	"github.com/poiesic/lancer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(days int) *time.Time {
	ts := testNow.Add(-time.Duration(days) * 24 * time.Hour)
	return &ts
}

func TestFreshnessScore(t *testing.T) {
	week := core.Window{Width: 7 * 24 * time.Hour}

	t.Run("inside window", func(t *testing.T) {
		assert.Equal(t, 1.0, freshnessScore(daysAgo(3), week, testNow))
		assert.Equal(t, 1.0, freshnessScore(daysAgo(7), week, testNow))
	})

	t.Run("linear decay beyond window", func(t *testing.T) {
		// Halfway between the window edge (7d) and the cutoff (21d).
		assert.InDelta(t, 0.5, freshnessScore(daysAgo(14), week, testNow), 1e-9)
	})

	t.Run("zero at three times the width", func(t *testing.T) {
		assert.Equal(t, 0.0, freshnessScore(daysAgo(21), week, testNow))
		assert.Equal(t, 0.0, freshnessScore(daysAgo(100), week, testNow))
	})

	t.Run("undated is neutral", func(t *testing.T) {
		assert.Equal(t, undatedScore, freshnessScore(nil, week, testNow))
	})

	t.Run("unbounded window treats any date as fresh", func(t *testing.T) {
		unbounded := core.Window{Unbounded: true}
		assert.Equal(t, 1.0, freshnessScore(daysAgo(3650), unbounded, testNow))
		assert.Equal(t, undatedScore, freshnessScore(nil, unbounded, testNow))
	})

	t.Run("future date treated as current", func(t *testing.T) {
		future := testNow.Add(time.Hour)
		assert.Equal(t, 1.0, freshnessScore(&future, week, testNow))
	})
}

func TestDomainScore(t *testing.T) {
	none := map[string]float64{}

	t.Run("institutional suffixes", func(t *testing.T) {
		assert.Equal(t, 0.9, domainScore("https://cs.stanford.edu/paper", none))
		assert.Equal(t, 0.9, domainScore("https://www.nasa.gov/news", none))
	})

	t.Run("subdomains inherit", func(t *testing.T) {
		assert.Equal(t, 0.7, domainScore("https://en.wikipedia.org/wiki/Go", none))
		assert.Equal(t, 0.8, domainScore("https://gist.github.com/x", none))
	})

	t.Run("low authority", func(t *testing.T) {
		assert.Equal(t, lowAuthorityScore, domainScore("https://www.pinterest.com/pin/1", none))
	})

	t.Run("unknown is neutral", func(t *testing.T) {
		assert.Equal(t, unknownScore, domainScore("https://some-random-blog.io/post", none))
		assert.Equal(t, unknownScore, domainScore("not a url", none))
	})

	t.Run("overrides win", func(t *testing.T) {
		overrides := map[string]float64{"some-random-blog.io": 0.85}
		assert.Equal(t, 0.85, domainScore("https://some-random-blog.io/post", overrides))
	})
}

func TestAuthorityScore_Corroboration(t *testing.T) {
	base := core.MergedResult{
		RawResult: core.RawResult{URL: "https://example.com/story"},
		Sources:   []string{"a"},
	}
	single := authorityScore(base, nil)

	base.Sources = []string{"a", "b"}
	double := authorityScore(base, nil)
	assert.InDelta(t, single+corroborationStep, double, 1e-9)

	base.Sources = []string{"a", "b", "c", "d", "e", "f"}
	many := authorityScore(base, nil)
	assert.InDelta(t, single+corroborationCap, many, 1e-9)
}

func TestRank_RecentIntentFavorsFreshness(t *testing.T) {
	ranker := New(WithClock(fixedClock))
	intent := core.TemporalIntent{
		Label:  core.LabelRecent,
		Window: core.Window{Width: 30 * 24 * time.Hour},
	}

	results := []core.MergedResult{
		{
			RawResult: core.RawResult{URL: "https://www.nature.com/old", PublishedAt: daysAgo(120)},
			Sources:   []string{"a"},
			Position:  1,
		},
		{
			RawResult: core.RawResult{URL: "https://fresh-blog.io/new", PublishedAt: daysAgo(2)},
			Sources:   []string{"a"},
			Position:  2,
		},
	}

	scored := ranker.Rank(results, intent, 10)
	require.Len(t, scored, 2)
	assert.Equal(t, "https://fresh-blog.io/new", scored[0].URL)
}

func TestRank_EvergreenIntentFavorsAuthority(t *testing.T) {
	ranker := New(WithClock(fixedClock))
	intent := core.TemporalIntent{
		Label:  core.LabelEvergreen,
		Window: core.Window{Unbounded: true},
	}

	results := []core.MergedResult{
		{
			RawResult: core.RawResult{URL: "https://fresh-blog.io/new", PublishedAt: daysAgo(2)},
			Sources:   []string{"a"},
			Position:  1,
		},
		{
			RawResult: core.RawResult{URL: "https://en.wikipedia.org/wiki/Topic", PublishedAt: daysAgo(900)},
			Sources:   []string{"a"},
			Position:  2,
		},
	}

	scored := ranker.Rank(results, intent, 10)
	require.Len(t, scored, 2)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Topic", scored[0].URL)
}

func TestRank_TieBreaks(t *testing.T) {
	ranker := New(WithClock(fixedClock))
	intent := core.TemporalIntent{
		Label:  core.LabelExplicit,
		Window: core.Window{Unbounded: true},
	}

	// Identical scores throughout: unknown domains, same dates.
	results := []core.MergedResult{
		{
			RawResult: core.RawResult{URL: "https://alpha.io/a", PublishedAt: daysAgo(1)},
			Sources:   []string{"a"},
			Position:  1,
		},
		{
			RawResult: core.RawResult{URL: "https://beta.io/b", PublishedAt: daysAgo(1)},
			Sources:   []string{"a", "b"},
			Position:  2,
		},
		{
			RawResult: core.RawResult{URL: "https://gamma.io/c", PublishedAt: daysAgo(1)},
			Sources:   []string{"a", "b"},
			Position:  3,
		},
	}

	scored := ranker.Rank(results, intent, 10)
	require.Len(t, scored, 3)
	// Corroboration beats position; equal corroboration falls back to
	// merge position.
	assert.Equal(t, "https://beta.io/b", scored[0].URL)
	assert.Equal(t, "https://gamma.io/c", scored[1].URL)
	assert.Equal(t, "https://alpha.io/a", scored[2].URL)
}

func TestRank_TruncatesToMaxResults(t *testing.T) {
	ranker := New(WithClock(fixedClock))
	intent := core.TemporalIntent{Label: core.LabelRecent, Window: core.Window{Width: 7 * 24 * time.Hour}}

	results := make([]core.MergedResult, 20)
	for i := range results {
		results[i] = core.MergedResult{
			RawResult: core.RawResult{URL: "https://example.com/a", PublishedAt: daysAgo(i)},
			Sources:   []string{"a"},
			Position:  i + 1,
		}
	}

	scored := ranker.Rank(results, intent, 5)
	assert.Len(t, scored, 5)
}

func TestRank_ScoresStayInRange(t *testing.T) {
	ranker := New(WithClock(fixedClock))

	intents := []core.TemporalIntent{
		{Label: core.LabelBreaking, Window: core.Window{Width: 48 * time.Hour}},
		{Label: core.LabelRecent, Window: core.Window{Width: 30 * 24 * time.Hour}},
		{Label: core.LabelEvergreen, Window: core.Window{Unbounded: true}},
		{Label: core.LabelExplicit, Window: core.Window{Width: 24 * time.Hour}},
	}

	results := []core.MergedResult{
		{RawResult: core.RawResult{URL: "https://cs.mit.edu/x", PublishedAt: daysAgo(0)},
			Sources: []string{"a", "b", "c", "d", "e"}, Position: 1},
		{RawResult: core.RawResult{URL: "https://www.pinterest.com/pin/2", PublishedAt: daysAgo(400)},
			Sources: []string{"a"}, Position: 2},
		{RawResult: core.RawResult{URL: "https://unknown.io/y"}, Sources: []string{"a"}, Position: 3},
	}

	for _, intent := range intents {
		for _, s := range ranker.Rank(results, intent, 10) {
			assert.GreaterOrEqual(t, s.FreshnessScore, 0.0)
			assert.LessOrEqual(t, s.FreshnessScore, 1.0)
			assert.GreaterOrEqual(t, s.AuthorityScore, 0.0)
			assert.LessOrEqual(t, s.AuthorityScore, 1.0)
			assert.GreaterOrEqual(t, s.CombinedScore, 0.0)
			assert.LessOrEqual(t, s.CombinedScore, 1.0)
		}
	}
}
