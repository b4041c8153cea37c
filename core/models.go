package core

import "time"

// FreshnessHint is an explicit recency constraint supplied with a query.
type FreshnessHint string

const (
	// HintNone means no explicit hint was supplied; the classifier infers one.
	HintNone FreshnessHint = ""
	// HintDay restricts results to the last 24 hours.
	HintDay FreshnessHint = "day"
	// HintWeek restricts results to the last 7 days.
	HintWeek FreshnessHint = "week"
	// HintMonth restricts results to the last 30 days.
	HintMonth FreshnessHint = "month"
	// HintYear restricts results to the last 365 days.
	HintYear FreshnessHint = "year"
	// HintAny accepts results of any age.
	HintAny FreshnessHint = "any"
)

// DefaultMaxResults is used when a Query does not specify MaxResults.
const DefaultMaxResults = 10

// MaxResultsLimit is the upper bound a Query may request.
const MaxResultsLimit = 50

// Query is a validated search request. It is immutable once constructed;
// nothing in the pipeline mutates it.
type Query struct {
	Text       string
	MaxResults int
	Freshness  FreshnessHint
}

// IntentLabel classifies how time-sensitive a query is.
type IntentLabel string

const (
	// LabelExplicit means the query carried an explicit freshness hint.
	LabelExplicit IntentLabel = "explicit"
	// LabelBreaking means the query needs very recent information.
	LabelBreaking IntentLabel = "breaking"
	// LabelRecent means the query benefits from recent information.
	LabelRecent IntentLabel = "recent"
	// LabelEvergreen means the query has no meaningful recency requirement.
	LabelEvergreen IntentLabel = "evergreen"
)

// Window is the recency window attached to a TemporalIntent.
// An unbounded window contains results of any age.
type Window struct {
	Width     time.Duration
	Unbounded bool
}

// Contains reports whether content of the given age falls inside the window.
func (w Window) Contains(age time.Duration) bool {
	if w.Unbounded {
		return true
	}
	return age <= w.Width
}

// TemporalIntent is the inferred recency requirement of a query.
// Produced once per query and never mutated afterwards.
type TemporalIntent struct {
	Label   IntentLabel
	Window  Window
	Urgency float64 // 0-1, how much freshness should matter
}

// RawResult is a single entry returned by one search source.
type RawResult struct {
	URL         string
	Title       string
	Snippet     string
	PublishedAt *time.Time // nil when the source provides no date
	SourceName  string
	SourceScore float64 // provider-reported relevance, 0.5 when the source has none
}

// MergedResult is a deduplicated result. Its fingerprint is unique within
// one pipeline run; Sources lists every adapter that returned it.
type MergedResult struct {
	RawResult
	Fingerprint ID
	Sources     []string
	Position    int // merge order, used as the final ranking tie-break
}

// ScoredResult is a MergedResult with reranker scores attached.
// CombinedScore is a deterministic function of the two sub-scores and the
// intent weighting.
type ScoredResult struct {
	MergedResult
	FreshnessScore float64
	AuthorityScore float64
	CombinedScore  float64
}

// Citation references one grounded result by its 1-based prompt index.
type Citation struct {
	Index int
	URL   string
	Title string
}

// Answer is the synthesized response to a query.
// Degraded is true when every LLM provider failed and the text was built
// directly from the ranked results instead.
type Answer struct {
	Text         string
	Citations    []Citation
	ProviderUsed string
	Degraded     bool
}

// Response is the full pipeline output for one query.
type Response struct {
	Query   Query
	Intent  TemporalIntent
	Answer  Answer
	Results []ScoredResult
	Elapsed time.Duration
}
