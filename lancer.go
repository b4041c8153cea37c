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
	"log/slog"
	"time"

	"github.com/poiesic/lancer/aggregate"
	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/rank"
	"github.com/poiesic/lancer/sources"
	"github.com/poiesic/lancer/sources/duckduckgo"
	"github.com/poiesic/lancer/sources/searxng"
	"github.com/poiesic/lancer/sources/tavily"
	"github.com/poiesic/lancer/sources/wikipedia"
	"github.com/poiesic/lancer/synth"
	"github.com/poiesic/lancer/synth/openai"
	"github.com/poiesic/lancer/temporal"
)

// Engine runs the full answer pipeline: classify the query's temporal
// intent, gather results from all sources, rank them, and synthesize a
// cited answer.
type Engine struct {
	classifier  *temporal.Classifier
	aggregator  *aggregate.Aggregator
	ranker      *rank.Ranker
	synthesizer *synth.Synthesizer
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	classifierOpts []temporal.Option
	aggregateOpts  []aggregate.Option
	rankOpts       []rank.Option
	synthOpts      []synth.Option
	logger         *slog.Logger
}

// WithClassifierOptions forwards options to the temporal classifier.
func WithClassifierOptions(opts ...temporal.Option) EngineOption {
	return func(o *engineOptions) {
		o.classifierOpts = append(o.classifierOpts, opts...)
	}
}

// WithAggregateOptions forwards options to the source aggregator.
func WithAggregateOptions(opts ...aggregate.Option) EngineOption {
	return func(o *engineOptions) {
		o.aggregateOpts = append(o.aggregateOpts, opts...)
	}
}

// WithRankOptions forwards options to the ranker.
func WithRankOptions(opts ...rank.Option) EngineOption {
	return func(o *engineOptions) {
		o.rankOpts = append(o.rankOpts, opts...)
	}
}

// WithSynthOptions forwards options to the synthesizer.
func WithSynthOptions(opts ...synth.Option) EngineOption {
	return func(o *engineOptions) {
		o.synthOpts = append(o.synthOpts, opts...)
	}
}

// WithLogger sets the engine's logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine builds an engine from explicit adapters and providers.
// Adapter order determines merge order and ranking tie-breaks; provider
// order determines the synthesis fallback chain.
func NewEngine(adapters []sources.Adapter, providers []synth.Provider, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	aggregator, err := aggregate.New(adapters, options.aggregateOpts...)
	if err != nil {
		return nil, err
	}

	synthesizer, err := synth.New(providers, options.synthOpts...)
	if err != nil {
		aggregator.Release()
		return nil, err
	}

	return &Engine{
		classifier:  temporal.NewClassifier(options.classifierOpts...),
		aggregator:  aggregator,
		ranker:      rank.New(options.rankOpts...),
		synthesizer: synthesizer,
		logger:      options.logger,
	}, nil
}

// NewEngineFromConfig builds an engine from a Config, constructing an
// adapter for each configured source and a provider for each configured
// model.
func NewEngineFromConfig(config *Config, opts ...EngineOption) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var adapters []sources.Adapter
	if config.TavilyAPIKey != "" {
		adapter, err := tavily.New(config.TavilyAPIKey)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if config.SearxngURL != "" {
		adapter, err := searxng.New(config.SearxngURL)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if config.EnableDuckDuckGo {
		adapters = append(adapters, duckduckgo.New())
	}
	if config.EnableWikipedia {
		adapters = append(adapters, wikipedia.New())
	}

	providers := make([]synth.Provider, 0, len(config.LLMModels))
	for _, model := range config.LLMModels {
		provider, err := openai.New(openai.Config{
			BaseURL: config.LLMBaseURL,
			APIKey:  config.LLMAPIKey,
			Model:   model,
		})
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	return NewEngine(adapters, providers, opts...)
}

// Close releases the engine's worker pool. The engine must not be used
// after calling Close.
func (e *Engine) Close() error {
	e.aggregator.Release()
	return nil
}

// Ready reports whether the engine has every component it needs to
// answer queries.
func (e *Engine) Ready() bool {
	return e.aggregator != nil && e.synthesizer != nil && e.classifier != nil && e.ranker != nil
}

// Search answers a query end to end. It fails only on invalid input or
// when every search source is unavailable; synthesis failures degrade
// to a templated answer instead of an error.
func (e *Engine) Search(ctx context.Context, query core.Query) (*core.Response, error) {
	start := time.Now()

	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}

	intent := e.classifier.Classify(query)
	e.logger.Debug("query classified", "query", query.Text, "label", intent.Label, "urgency", intent.Urgency)

	merged, err := e.aggregator.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	scored := e.ranker.Rank(merged, intent, query.EffectiveMaxResults())
	answer := e.synthesizer.Synthesize(ctx, query, intent, scored)

	elapsed := time.Since(start)
	e.logger.Info("query answered",
		"query", query.Text,
		"label", intent.Label,
		"results", len(scored),
		"provider", answer.ProviderUsed,
		"degraded", answer.Degraded,
		"elapsed", elapsed,
	)

	return &core.Response{
		Query:   query,
		Intent:  intent,
		Answer:  answer,
		Results: scored,
		Elapsed: elapsed,
	}, nil
}
