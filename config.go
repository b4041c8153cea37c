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
	"errors"
	"os"
	"strings"
)

// Config selects which search sources and LLM providers the engine is
// built with. Any source or provider left unconfigured is simply not
// used; at least one source and one provider must remain.
type Config struct {
	// TavilyAPIKey enables the Tavily source when set.
	TavilyAPIKey string

	// SearxngURL enables the SearXNG source when set.
	// Example: "http://localhost:8888"
	SearxngURL string

	// EnableDuckDuckGo enables the keyless DuckDuckGo Lite source.
	EnableDuckDuckGo bool

	// EnableWikipedia enables the keyless Wikipedia source.
	EnableWikipedia bool

	// LLMBaseURL is the OpenAI-compatible endpoint for synthesis.
	// Example: "https://api.groq.com/openai/v1"
	LLMBaseURL string

	// LLMAPIKey authenticates against LLMBaseURL. Optional for local
	// inference servers.
	LLMAPIKey string

	// LLMModels lists model identifiers in fallback order. The first
	// model that produces an answer wins.
	LLMModels []string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTavilyAPIKey enables the Tavily source.
func WithTavilyAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.TavilyAPIKey = key
	}
}

// WithSearxngURL enables the SearXNG source at the given instance URL.
func WithSearxngURL(instanceURL string) ConfigOption {
	return func(c *Config) {
		c.SearxngURL = instanceURL
	}
}

// WithDuckDuckGo toggles the keyless DuckDuckGo Lite source.
func WithDuckDuckGo(enabled bool) ConfigOption {
	return func(c *Config) {
		c.EnableDuckDuckGo = enabled
	}
}

// WithWikipedia toggles the keyless Wikipedia source.
func WithWikipedia(enabled bool) ConfigOption {
	return func(c *Config) {
		c.EnableWikipedia = enabled
	}
}

// WithLLM sets the synthesis endpoint, key and model fallback chain.
func WithLLM(baseURL, apiKey string, models ...string) ConfigOption {
	return func(c *Config) {
		c.LLMBaseURL = baseURL
		c.LLMAPIKey = apiKey
		c.LLMModels = models
	}
}

// NewConfig creates a Config with the keyless sources enabled and applies
// the provided options.
//
// Example:
//
//	cfg := lancer.NewConfig(
//	    lancer.WithTavilyAPIKey(os.Getenv("TAVILY_API_KEY")),
//	    lancer.WithLLM("https://api.groq.com/openai/v1", key, "llama-3.3-70b-versatile"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		EnableDuckDuckGo: true,
		EnableWikipedia:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	// ErrNoSourcesConfigured is returned when the configuration enables
	// no search source at all.
	ErrNoSourcesConfigured = errors.New("no search sources configured")

	// ErrNoLLMConfigured is returned when no synthesis endpoint or
	// model is configured.
	ErrNoLLMConfigured = errors.New("no LLM provider configured")
)

// Validate checks that the configuration can produce a working engine.
func (c *Config) Validate() error {
	if c.TavilyAPIKey == "" && c.SearxngURL == "" && !c.EnableDuckDuckGo && !c.EnableWikipedia {
		return ErrNoSourcesConfigured
	}
	if c.LLMBaseURL == "" || len(c.LLMModels) == 0 {
		return ErrNoLLMConfigured
	}
	return nil
}

// ConfigFromEnv builds a Config from LANCER_* environment variables.
// The keyless sources default to enabled so a bare environment with
// just an LLM endpoint still works.
func ConfigFromEnv() *Config {
	return &Config{
		TavilyAPIKey:     os.Getenv("LANCER_TAVILY_API_KEY"),
		SearxngURL:       os.Getenv("LANCER_SEARXNG_URL"),
		EnableDuckDuckGo: getEnvBool("LANCER_ENABLE_DUCKDUCKGO", true),
		EnableWikipedia:  getEnvBool("LANCER_ENABLE_WIKIPEDIA", true),
		LLMBaseURL:       os.Getenv("LANCER_LLM_BASE_URL"),
		LLMAPIKey:        os.Getenv("LANCER_LLM_API_KEY"),
		LLMModels:        splitList(getEnv("LANCER_LLM_MODELS", "")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
