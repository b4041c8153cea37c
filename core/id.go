package core

import (
	"encoding/binary"
	"net/url"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a dedup identity for search results within one pipeline run.
type ID uint64

// IDFromContent generates a deterministic ID from text using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FingerprintURL returns the dedup identity for a result URL: the URL is
// normalized first so that trivially different links to the same page
// collapse to one ID.
func FingerprintURL(rawURL string) ID {
	return IDFromContent(NormalizeURL(rawURL))
}

// trackingParams are query parameters that identify the click, not the page.
var trackingParams = map[string]bool{
	"fbclid":  true,
	"gclid":   true,
	"msclkid": true,
	"ref":     true,
	"source":  true,
}

// NormalizeURL canonicalizes a URL for deduplication: scheme, host and path
// are lowercased, the www. prefix, trailing slash, fragment and tracking
// query parameters (utm_* and click identifiers) are removed.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return strings.ToLower(strings.TrimSpace(rawURL))
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")

	path := strings.ToLower(strings.TrimSuffix(parsed.Path, "/"))

	query := parsed.Query()
	for key := range query {
		if trackingParams[key] || strings.HasPrefix(key, "utm_") {
			query.Del(key)
		}
	}

	normalized := host + path
	if encoded := query.Encode(); encoded != "" {
		normalized += "?" + encoded
	}
	return normalized
}
