// Package duckduckgo implements a search adapter for the DuckDuckGo Lite
// HTML endpoint. No API key is required, which makes it the always-available
// fallback source.
package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/sources"
)

const defaultBaseURL = "https://lite.duckduckgo.com"

// Browser-like agent; the Lite endpoint rejects default Go clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Adapter implements sources.Adapter using DuckDuckGo Lite.
type Adapter struct {
	baseURL string
	region  string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBaseURL overrides the endpoint. Used by tests.
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

// WithRegion sets the DuckDuckGo region code. Default "wt-wt" (worldwide).
func WithRegion(region string) Option {
	return func(a *Adapter) {
		if region != "" {
			a.region = region
		}
	}
}

// New creates a DuckDuckGo adapter.
//
// Returns the sources.Adapter interface to enforce abstraction.
func New(opts ...Option) sources.Adapter {
	a := &Adapter{
		baseURL: defaultBaseURL,
		region:  "wt-wt",
		client:  &http.Client{},
		logger:  slog.Default().With("component", "duckduckgo"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the provider.
func (a *Adapter) Name() string { return "duckduckgo" }

// Search runs the query against the Lite endpoint and parses the HTML
// response. DuckDuckGo provides no publication dates or relevance scores,
// so results carry a neutral source score and a nil timestamp.
func (a *Adapter) Search(ctx context.Context, query core.Query) ([]core.RawResult, error) {
	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("kl", a.region)
	params.Set("kp", "-1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/lite/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo: %v", sources.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: duckduckgo: status %d", sources.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo: read response: %v", sources.ErrSourceUnavailable, err)
	}

	results := parseLiteResults(string(body), query.EffectiveMaxResults())
	a.logger.Debug("search complete", "query", query.Text, "results", len(results))
	return results, nil
}

var (
	linkPattern    = regexp.MustCompile(`(?i)<a[^>]*class=["']result-link["'][^>]*href=["']([^"']+)["'][^>]*>([^<]+)</a>`)
	snippetPattern = regexp.MustCompile(`(?i)<td[^>]*class=["']result-snippet["'][^>]*>([^<]+)</td>`)
)

// parseLiteResults extracts results from the DuckDuckGo Lite HTML page.
func parseLiteResults(html string, maxResults int) []core.RawResult {
	links := linkPattern.FindAllStringSubmatch(html, -1)
	snippets := snippetPattern.FindAllStringSubmatch(html, -1)

	results := make([]core.RawResult, 0, min(len(links), maxResults))
	for i, link := range links {
		if len(results) >= maxResults {
			break
		}

		resultURL := strings.TrimSpace(link[1])
		title := strings.TrimSpace(link[2])

		// Skip DuckDuckGo internal links.
		if strings.Contains(resultURL, "duckduckgo.com") {
			continue
		}

		snippet := ""
		if i < len(snippets) {
			snippet = strings.TrimSpace(snippets[i][1])
		}

		results = append(results, core.RawResult{
			URL:         resultURL,
			Title:       title,
			Snippet:     snippet,
			SourceName:  "duckduckgo",
			SourceScore: 0.5,
		})
	}
	return results
}
