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


package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/lancer/synth"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Low temperature keeps answers anchored to the supplied results.
const synthesisTemperature = 0.3

var (
	// ErrModelRequired is returned when no model name is configured.
	ErrModelRequired = errors.New("model name required")

	// ErrBaseURLRequired is returned when no API endpoint is configured.
	ErrBaseURLRequired = errors.New("base URL required")
)

// Config holds the connection settings for an OpenAI-compatible API.
type Config struct {
	// BaseURL is the API endpoint, e.g. "https://api.groq.com/openai/v1".
	BaseURL string

	// APIKey authenticates requests. Local inference servers usually
	// accept any value; "none" is substituted when empty.
	APIKey string

	// Model is the model identifier to request.
	Model string

	// Label overrides the provider name used for answer attribution.
	// Defaults to the model identifier.
	Label string
}

// Provider implements synth.Provider using OpenAI-compatible chat APIs.
type Provider struct {
	client llms.Model
	name   string
	logger *slog.Logger
}

// newProvider is an internal constructor that returns the concrete type.
func newProvider(config Config) (*Provider, error) {
	if config.Model == "" {
		return nil, ErrModelRequired
	}
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	token := config.APIKey
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	name := config.Label
	if name == "" {
		name = config.Model
	}

	return &Provider{
		client: client,
		name:   name,
		logger: slog.Default().With("component", "openai-synth", "model", config.Model),
	}, nil
}

// New creates a synthesis provider for the configured endpoint.
//
// Returns the synth.Provider interface to enforce abstraction.
func New(config Config) (synth.Provider, error) {
	return newProvider(config)
}

// Name identifies the provider for answer attribution.
func (p *Provider) Name() string { return p.name }

// Synthesize sends the prompt as a single user turn and returns the
// model's completion.
func (p *Provider) Synthesize(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(synthesisTemperature))
	if err != nil {
		p.logger.Error("failed to generate content", "err", err)
		return "", fmt.Errorf("%s: %w", p.name, err)
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("%s: %w", p.name, synth.ErrEmptyCompletion)
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		return "", fmt.Errorf("%s: %w", p.name, synth.ErrEmptyCompletion)
	}

	p.logger.Debug("synthesis complete", "chars", len(text))
	return text, nil
}
