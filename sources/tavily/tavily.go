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


// Package tavily implements a search adapter for the Tavily API, an
// AI-optimized search provider that reports relevance scores and
// publication dates.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/sources"
)

const defaultBaseURL = "https://api.tavily.com"

// Adapter implements sources.Adapter using the Tavily REST API.
type Adapter struct {
	apiKey  string
	baseURL string
	depth   string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(a *Adapter) {
		if baseURL != "" {
			a.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithSearchDepth sets the Tavily search depth ("basic" or "advanced").
// Default is "advanced".
func WithSearchDepth(depth string) Option {
	return func(a *Adapter) {
		if depth != "" {
			a.depth = depth
		}
	}
}

// New creates a Tavily adapter.
//
// Returns the sources.Adapter interface to enforce abstraction.
func New(apiKey string, opts ...Option) (sources.Adapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tavily: %w", sources.ErrAPIKeyRequired)
	}

	a := &Adapter{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		depth:   "advanced",
		client:  &http.Client{},
		logger:  slog.Default().With("component", "tavily"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name identifies the provider.
func (a *Adapter) Name() string { return "tavily" }

type searchRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
	Days              int    `json:"days,omitempty"`
}

type searchResponse struct {
	Results []struct {
		Title         string  `json:"title"`
		URL           string  `json:"url"`
		Content       string  `json:"content"`
		PublishedDate string  `json:"published_date"`
		Score         float64 `json:"score"`
	} `json:"results"`
}

// Search runs the query against Tavily. An explicit freshness hint on the
// query is forwarded as Tavily's days filter.
func (a *Adapter) Search(ctx context.Context, query core.Query) ([]core.RawResult, error) {
	payload := searchRequest{
		APIKey:      a.apiKey,
		Query:       query.Text,
		SearchDepth: a.depth,
		MaxResults:  query.EffectiveMaxResults(),
		Days:        hintDays(query.Freshness),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tavily: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: tavily: %v", sources.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tavily: status %d", sources.ErrSourceUnavailable, resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: tavily: decode response: %v", sources.ErrSourceUnavailable, err)
	}

	results := make([]core.RawResult, 0, len(decoded.Results))
	for _, item := range decoded.Results {
		results = append(results, core.RawResult{
			URL:         item.URL,
			Title:       item.Title,
			Snippet:     item.Content,
			PublishedAt: parseDate(item.PublishedDate),
			SourceName:  a.Name(),
			SourceScore: item.Score,
		})
	}

	a.logger.Debug("search complete", "query", query.Text, "results", len(results))
	return results, nil
}

// hintDays maps a freshness hint to Tavily's days parameter.
// Zero means no filter.
func hintDays(hint core.FreshnessHint) int {
	switch hint {
	case core.HintDay:
		return 1
	case core.HintWeek:
		return 7
	case core.HintMonth:
		return 30
	case core.HintYear:
		return 365
	default:
		return 0
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// parseDate parses the provider's published date, trying the formats
// Tavily has been observed to emit. Returns nil when unparseable.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}
	return nil
}
