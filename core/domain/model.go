// ABOUTME: Domain model for a catalog model that matched a search term
// ABOUTME: Carries identity fields plus the best-effort creation date and derives the detail page URL

package domain

import (
	"strings"
)

// DiscoveredModel represents one distinct catalog model that matched a search term.
// Values are immutable once built; enrichment returns a copy.
type DiscoveredModel struct {
	// DisplayName is the human-readable name reported by the catalog
	DisplayName string `json:"name"`

	// ModelID is the stable catalog identifier, unique within a discovery run
	ModelID string `json:"id"`

	// CanonicalSlug is the author/slug path used for detail pages and endpoint lookups
	CanonicalSlug string `json:"canonical_slug"`

	// CreationDate is absent when the detail page could not be fetched or had no date
	CreationDate *string `json:"creation_date,omitempty"`
}

// WithCreationDate returns a copy of the model carrying the given creation date.
func (m DiscoveredModel) WithCreationDate(date *string) DiscoveredModel {
	m.CreationDate = date
	return m
}

// Author returns the slug segment before the first '/'.
func (m DiscoveredModel) Author() string {
	author, _, _ := strings.Cut(m.CanonicalSlug, "/")
	return author
}

// DetailURL builds the catalog website URL for the model. The slug segment after the
// author is fully percent-encoded so characters such as ':' survive as one path segment.
func (m DiscoveredModel) DetailURL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	author, slug, found := strings.Cut(m.CanonicalSlug, "/")
	if !found {
		return base + "/" + EscapeSegment(author)
	}
	return base + "/" + author + "/" + EscapeSegment(slug)
}

// EscapeSegment percent-encodes every byte outside the unreserved set A-Z a-z 0-9 _ . - ~.
func EscapeSegment(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~':
		return true
	}
	return false
}
