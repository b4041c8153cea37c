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


package lancer

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/lancer/aggregate"
	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/rank"
	"github.com/poiesic/lancer/sources"
	sourcemock "github.com/poiesic/lancer/sources/mock"
	"github.com/poiesic/lancer/synth"
	synthmock "github.com/poiesic/lancer/synth/mock"
	"github.com/poiesic/lancer/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(days int) *time.Time {
	ts := testNow.Add(-time.Duration(days) * 24 * time.Hour)
	return &ts
}

func newTestEngine(t *testing.T, adapters []sources.Adapter, provider synth.Provider) *Engine {
	t.Helper()

	engine, err := NewEngine(adapters, []synth.Provider{provider},
		WithClassifierOptions(temporal.WithClock(fixedClock)),
		WithRankOptions(rank.WithClock(fixedClock)),
		WithSynthOptions(synth.WithClock(fixedClock)),
		WithAggregateOptions(aggregate.WithRetry(1, time.Millisecond)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("requires adapters", func(t *testing.T) {
		_, err := NewEngine(nil, []synth.Provider{synthmock.NewMockProvider("p")})
		assert.ErrorIs(t, err, aggregate.ErrNoAdapters)
	})

	t.Run("requires providers", func(t *testing.T) {
		_, err := NewEngine([]sources.Adapter{sourcemock.NewMockAdapter("a")}, nil)
		assert.ErrorIs(t, err, synth.ErrNoProviders)
	})

	t.Run("ready when built", func(t *testing.T) {
		engine := newTestEngine(t,
			[]sources.Adapter{sourcemock.NewMockAdapter("a")},
			synthmock.NewMockProvider("p"))
		assert.True(t, engine.Ready())
	})
}

func TestSearch_CurrentEventsQuery(t *testing.T) {
	// Two sources return the same announcement under slightly different
	// URLs; a third result is unique.
	tavily := sourcemock.NewMockAdapter("tavily")
	tavily.Results = []core.RawResult{
		{
			URL:         "https://www.openai.com/blog/gpt-5?utm_source=rss",
			Title:       "GPT-5 announced",
			Snippet:     "OpenAI announced GPT-5 today with improved reasoning.",
			PublishedAt: daysAgo(2),
			SourceName:  "tavily",
			SourceScore: 0.9,
		},
	}

	searxng := sourcemock.NewMockAdapter("searxng")
	searxng.Results = []core.RawResult{
		{
			URL:         "https://openai.com/blog/gpt-5",
			Title:       "GPT-5 announced",
			Snippet:     "OpenAI announced GPT-5.",
			PublishedAt: daysAgo(2),
			SourceName:  "searxng",
			SourceScore: 0.8,
		},
		{
			URL:         "https://techblog.example/gpt-5-review",
			Title:       "Hands on with GPT-5",
			Snippet:     "First impressions of the new model.",
			PublishedAt: daysAgo(1),
			SourceName:  "searxng",
			SourceScore: 0.6,
		},
	}

	provider := synthmock.NewMockProvider("groq/llama-3.3-70b")
	provider.Response = "The latest model is GPT-5, announced two days ago [1]. Early reviews are positive [2]."

	engine := newTestEngine(t, []sources.Adapter{tavily, searxng}, provider)

	response, err := engine.Search(context.Background(), core.Query{
		Text:       "What is the latest GPT model?",
		MaxResults: 5,
		Freshness:  core.HintWeek,
	})
	require.NoError(t, err)

	// Explicit hint pins the window regardless of the query text.
	assert.Equal(t, core.LabelExplicit, response.Intent.Label)
	assert.Equal(t, 7*24*time.Hour, response.Intent.Window.Width)

	// The duplicate collapsed, leaving two results corroborated in order.
	require.Len(t, response.Results, 2)
	top := response.Results[0]
	assert.Equal(t, []string{"tavily", "searxng"}, top.Sources)
	assert.Equal(t, 1.0, top.FreshnessScore)

	assert.Equal(t, "groq/llama-3.3-70b", response.Answer.ProviderUsed)
	assert.False(t, response.Answer.Degraded)
	require.Len(t, response.Answer.Citations, 2)
	for _, citation := range response.Answer.Citations {
		assert.GreaterOrEqual(t, citation.Index, 1)
		assert.LessOrEqual(t, citation.Index, len(response.Results))
	}

	assert.Greater(t, response.Elapsed, time.Duration(0))
}

func TestSearch_EvergreenQueryFavorsAuthority(t *testing.T) {
	adapter := sourcemock.NewMockAdapter("web")
	adapter.Results = []core.RawResult{
		{
			URL:         "https://fresh-listicle.net/rome",
			Title:       "Top 10 Rome facts",
			PublishedAt: daysAgo(3),
			SourceName:  "web",
			SourceScore: 0.6,
		},
		{
			URL:         "https://en.wikipedia.org/wiki/Roman_Empire",
			Title:       "Wikipedia: Roman Empire",
			PublishedAt: daysAgo(700),
			SourceName:  "web",
			SourceScore: 0.7,
		},
	}

	provider := synthmock.NewMockProvider("primary")
	provider.Response = "The Roman Empire was founded in 27 BC [1]."

	engine := newTestEngine(t, []sources.Adapter{adapter}, provider)

	response, err := engine.Search(context.Background(), core.Query{
		Text: "history of the Roman Empire",
	})
	require.NoError(t, err)

	assert.Equal(t, core.LabelEvergreen, response.Intent.Label)
	assert.True(t, response.Intent.Window.Unbounded)

	require.Len(t, response.Results, 2)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Roman_Empire", response.Results[0].URL)
}

func TestSearch_InvalidQuery(t *testing.T) {
	engine := newTestEngine(t,
		[]sources.Adapter{sourcemock.NewMockAdapter("a")},
		synthmock.NewMockProvider("p"))

	_, err := engine.Search(context.Background(), core.Query{Text: "   "})
	assert.ErrorIs(t, err, core.ErrEmptyQuery)
}

func TestSearch_AllSourcesDown(t *testing.T) {
	broken := sourcemock.NewMockAdapter("broken")
	broken.Err = sources.ErrSourceUnavailable

	engine := newTestEngine(t, []sources.Adapter{broken}, synthmock.NewMockProvider("p"))

	_, err := engine.Search(context.Background(), core.Query{Text: "anything"})
	assert.ErrorIs(t, err, aggregate.ErrNoSourcesAvailable)
}

func TestSearch_DegradedAnswerOnProviderFailure(t *testing.T) {
	adapter := sourcemock.NewMockAdapter("web")
	adapter.Results = []core.RawResult{
		{URL: "https://example.com/a", Title: "A result", SourceName: "web"},
	}

	provider := synthmock.NewMockProvider("down")
	provider.Err = assert.AnError

	engine := newTestEngine(t, []sources.Adapter{adapter}, provider)

	response, err := engine.Search(context.Background(), core.Query{Text: "anything"})
	require.NoError(t, err)

	assert.True(t, response.Answer.Degraded)
	assert.NotEmpty(t, response.Answer.Text)
}

func TestConfigValidate(t *testing.T) {
	t.Run("needs a source", func(t *testing.T) {
		config := &Config{LLMBaseURL: "http://localhost:11434/v1", LLMModels: []string{"llama3"}}
		assert.ErrorIs(t, config.Validate(), ErrNoSourcesConfigured)
	})

	t.Run("needs an llm", func(t *testing.T) {
		config := &Config{EnableDuckDuckGo: true}
		assert.ErrorIs(t, config.Validate(), ErrNoLLMConfigured)
	})

	t.Run("valid", func(t *testing.T) {
		config := &Config{
			EnableDuckDuckGo: true,
			LLMBaseURL:       "http://localhost:11434/v1",
			LLMModels:        []string{"llama3"},
		}
		assert.NoError(t, config.Validate())
	})
}

func TestNewConfig(t *testing.T) {
	config := NewConfig(
		WithTavilyAPIKey("key"),
		WithWikipedia(false),
		WithLLM("http://localhost:11434/v1", "", "llama3", "qwen2.5:7b"),
	)

	assert.Equal(t, "key", config.TavilyAPIKey)
	assert.True(t, config.EnableDuckDuckGo)
	assert.False(t, config.EnableWikipedia)
	assert.Equal(t, []string{"llama3", "qwen2.5:7b"}, config.LLMModels)
	assert.NoError(t, config.Validate())
}

func TestNewEngineFromConfig(t *testing.T) {
	config := &Config{
		EnableDuckDuckGo: true,
		EnableWikipedia:  true,
		LLMBaseURL:       "http://localhost:11434/v1",
		LLMModels:        []string{"llama3", "qwen2.5:7b"},
	}

	engine, err := NewEngineFromConfig(config)
	require.NoError(t, err)
	defer engine.Close()

	assert.True(t, engine.Ready())
}
