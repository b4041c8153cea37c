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


// Package wikipedia implements a search adapter over the MediaWiki API.
// It contributes background/reference material; results carry no
// publication dates and a modest source score since encyclopedic content
// is rarely the freshest answer.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/sources"
)

// Adapter implements sources.Adapter using Wikipedia's public API.
type Adapter struct {
	baseURL  string
	language string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBaseURL overrides the API endpoint. Used by tests; when set, the
// language option is ignored for URL construction.
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

// WithLanguage sets the Wikipedia language edition. Default "en".
func WithLanguage(language string) Option {
	return func(a *Adapter) {
		if language != "" {
			a.language = language
		}
	}
}

// New creates a Wikipedia adapter.
//
// Returns the sources.Adapter interface to enforce abstraction.
func New(opts ...Option) sources.Adapter {
	a := &Adapter{
		language: "en",
		client:   &http.Client{},
		logger:   slog.Default().With("component", "wikipedia"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.baseURL == "" {
		a.baseURL = fmt.Sprintf("https://%s.wikipedia.org", a.language)
	}
	return a
}

// Name identifies the provider.
func (a *Adapter) Name() string { return "wikipedia" }

// Wikipedia contributes at most this many results per query; it is
// background material, not a primary source.
const maxWikipediaResults = 5

type apiResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Index   int    `json:"index"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Search queries the MediaWiki generator=search endpoint, which returns
// page titles together with plain-text intro extracts in a single call.
func (a *Adapter) Search(ctx context.Context, query core.Query) ([]core.RawResult, error) {
	limit := min(query.EffectiveMaxResults(), maxWikipediaResults)

	params := url.Values{}
	params.Set("action", "query")
	params.Set("generator", "search")
	params.Set("gsrsearch", query.Text)
	params.Set("gsrlimit", strconv.Itoa(limit))
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", "5")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/w/api.php?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: build request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: wikipedia: %v", sources.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: wikipedia: status %d", sources.ErrSourceUnavailable, resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: wikipedia: decode response: %v", sources.ErrSourceUnavailable, err)
	}

	// The pages map is unordered; the index field restores search order.
	ordered := make([]core.RawResult, limit)
	count := 0
	for _, page := range decoded.Query.Pages {
		if page.Index < 1 || page.Index > limit {
			continue
		}
		ordered[page.Index-1] = core.RawResult{
			URL:     fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", a.language, strings.ReplaceAll(page.Title, " ", "_")),
			Title:   "Wikipedia: " + page.Title,
			Snippet: cleanHTML(page.Extract),
			// Reference material starts below primary sources and decays
			// with search position.
			SourceScore: 0.7 - float64(page.Index-1)*0.05,
			SourceName:  a.Name(),
		}
		count++
	}

	results := make([]core.RawResult, 0, count)
	for _, r := range ordered {
		if r.URL != "" {
			results = append(results, r)
		}
	}

	a.logger.Debug("search complete", "query", query.Text, "results", len(results))
	return results, nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

func cleanHTML(text string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}
