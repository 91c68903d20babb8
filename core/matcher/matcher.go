// ABOUTME: Name matcher decides which catalog models take part in a run
// ABOUTME: Free-tier detection is a rule table so new upstream markers are additive

package matcher

import (
	"strings"

	"opencosts-api/core/domain"
)

// FreeRule flags a record as free when Field contains Marker, case-insensitively.
type FreeRule struct {
	Field  string
	Marker string
}

// FreeRules lists the free-tier markers the catalog is known to use. Upstream is
// inconsistent about which field carries the marker so every rule is checked.
var FreeRules = []FreeRule{
	{Field: "id", Marker: ":free"},
	{Field: "name", Marker: "(free"},
}

// IsFree reports whether the record is a free-tier variant
func IsFree(record domain.RawRecord) bool {
	for _, rule := range FreeRules {
		if strings.Contains(record.Lower(rule.Field), strings.ToLower(rule.Marker)) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any needle is a case-insensitive substring of name.
// An empty needle set matches nothing, and empty needles are ignored.
func MatchesAny(name string, needles []string) bool {
	lowered := strings.ToLower(name)
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
