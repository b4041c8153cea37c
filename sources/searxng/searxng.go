// Package searxng implements a search adapter for a self-hosted SearXNG
// meta-search instance. SearXNG fans out to many engines itself, so one
// call yields a broad candidate pool at no API cost.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/sources"
)

// Adapter implements sources.Adapter against a SearXNG instance's JSON API.
type Adapter struct {
	baseURL  string
	language string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithLanguage sets the search language code. Default "all".
func WithLanguage(language string) Option {
	return func(a *Adapter) {
		if language != "" {
			a.language = language
		}
	}
}

// New creates a SearXNG adapter for the given instance URL.
//
// Returns the sources.Adapter interface to enforce abstraction.
func New(instanceURL string, opts ...Option) (sources.Adapter, error) {
	if instanceURL == "" {
		return nil, fmt.Errorf("searxng: %w", sources.ErrBaseURLRequired)
	}

	a := &Adapter{
		baseURL:  strings.TrimSuffix(instanceURL, "/"),
		language: "all",
		client:   &http.Client{},
		logger:   slog.Default().With("component", "searxng"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name identifies the provider.
func (a *Adapter) Name() string { return "searxng" }

type apiResponse struct {
	Results []struct {
		Title         string  `json:"title"`
		URL           string  `json:"url"`
		Content       string  `json:"content"`
		PublishedDate string  `json:"publishedDate"`
		Engine        string  `json:"engine"`
		Position      int     `json:"position"`
		Score         float64 `json:"score"`
	} `json:"results"`
}

// Search queries the instance's JSON endpoint. An explicit freshness hint
// is forwarded as SearXNG's time_range filter where a mapping exists.
func (a *Adapter) Search(ctx context.Context, query core.Query) ([]core.RawResult, error) {
	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("format", "json")
	params.Set("language", a.language)
	if tr := timeRange(query.Freshness); tr != "" {
		params.Set("time_range", tr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("searxng: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: searxng: %v", sources.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: searxng: status %d", sources.ErrSourceUnavailable, resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: searxng: decode response: %v", sources.ErrSourceUnavailable, err)
	}

	maxResults := query.EffectiveMaxResults()
	results := make([]core.RawResult, 0, min(len(decoded.Results), maxResults))
	for i, item := range decoded.Results {
		if len(results) >= maxResults {
			break
		}

		position := item.Position
		if position == 0 {
			position = i + 1
		}

		results = append(results, core.RawResult{
			URL:         item.URL,
			Title:       item.Title,
			Snippet:     item.Content,
			PublishedAt: parseDate(item.PublishedDate),
			SourceName:  a.Name(),
			SourceScore: positionScore(position, item.Engine),
		})
	}

	a.logger.Debug("search complete", "query", query.Text, "results", len(results))
	return results, nil
}

// timeRange maps a freshness hint to SearXNG's time_range values.
// SearXNG has no year filter finer than month granularity beyond "year".
func timeRange(hint core.FreshnessHint) string {
	switch hint {
	case core.HintDay:
		return "day"
	case core.HintWeek:
		return "week"
	case core.HintMonth:
		return "month"
	case core.HintYear:
		return "year"
	default:
		return ""
	}
}

// Engines whose results deserve a small score bonus.
var engineBonus = map[string]float64{
	"google":         0.1,
	"bing":           0.05,
	"duckduckgo":     0.05,
	"wikipedia":      0.1,
	"arxiv":          0.15,
	"google scholar": 0.15,
}

// positionScore derives an initial relevance score from the result's rank
// within the meta-search response and the engine that produced it.
func positionScore(position int, engine string) float64 {
	score := max(0.3, 1.0-float64(position)*0.05)
	score += engineBonus[strings.ToLower(engine)]
	return min(1.0, score)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

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
