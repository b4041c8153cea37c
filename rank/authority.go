package rank

import (
	"net/url"
	"strings"
)

const (
	institutionalScore = 0.9
	unknownScore       = 0.5
	lowAuthorityScore  = 0.4
)

// defaultDomainScores holds the built-in authority table. Keys are
// registrable domains; subdomains inherit the parent's score.
var defaultDomainScores = map[string]float64{
	// Wire services and established news outlets.
	"reuters.com":     0.8,
	"apnews.com":      0.8,
	"bbc.com":         0.8,
	"bbc.co.uk":       0.8,
	"nytimes.com":     0.75,
	"bloomberg.com":   0.75,
	"theguardian.com": 0.75,

	// Science and scholarship.
	"nature.com":  0.9,
	"science.org": 0.9,
	"arxiv.org":   0.85,
	"ieee.org":    0.85,
	"acm.org":     0.85,

	// Technical references.
	"github.com":        0.8,
	"stackoverflow.com": 0.75,
	"mozilla.org":       0.75,
	"w3.org":            0.8,

	// Encyclopedic background.
	"wikipedia.org":  0.7,
	"britannica.com": 0.7,
}

// lowAuthorityDomains are content farms and user-generated aggregators
// whose results score below unknown domains.
var lowAuthorityDomains = map[string]bool{
	"pinterest.com":  true,
	"quora.com":      true,
	"answers.com":    true,
	"ehow.com":       true,
	"wikihow.com":    true,
	"buzzfeed.com":   true,
	"slideshare.net": true,
}

// domainScore rates a URL's host. Educational and governmental domains
// always score highest; listed domains use the table; everything else
// gets a neutral score.
func domainScore(rawURL string, overrides map[string]float64) float64 {
	host := hostOf(rawURL)
	if host == "" {
		return unknownScore
	}

	if strings.HasSuffix(host, ".edu") || strings.HasSuffix(host, ".gov") {
		return institutionalScore
	}

	// Walk from the full host down to the registrable domain so that
	// en.wikipedia.org inherits wikipedia.org's score.
	for candidate := host; candidate != ""; candidate = parentDomain(candidate) {
		if score, ok := overrides[candidate]; ok {
			return score
		}
		if score, ok := defaultDomainScores[candidate]; ok {
			return score
		}
		if lowAuthorityDomains[candidate] {
			return lowAuthorityScore
		}
	}

	return unknownScore
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// parentDomain strips the leftmost label. Returns "" once only the TLD
// would remain.
func parentDomain(host string) string {
	i := strings.Index(host, ".")
	if i < 0 {
		return ""
	}
	rest := host[i+1:]
	if !strings.Contains(rest, ".") {
		return ""
	}
	return rest
}
