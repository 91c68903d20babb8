// ABOUTME: Loosely-typed catalog records and best-effort field accessors
// ABOUTME: Upstream schemas are inconsistent so fields are read defensively

package domain

import (
	"encoding/json"
	"strings"
)

// RawRecord is one JSON object returned by the catalog service.
// Numbers are decoded as json.Number so their upstream text is preserved.
type RawRecord map[string]interface{}

// Value returns the raw field value, nil when absent.
func (r RawRecord) Value(key string) interface{} {
	if r == nil {
		return nil
	}
	return r[key]
}

// String returns the field as text: strings verbatim, numbers in their upstream
// form, anything else as "".
func (r RawRecord) String(key string) string {
	switch v := r.Value(key).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Object returns a nested object field, nil when absent or not an object.
func (r RawRecord) Object(key string) RawRecord {
	switch v := r.Value(key).(type) {
	case map[string]interface{}:
		return RawRecord(v)
	case RawRecord:
		return v
	default:
		return nil
	}
}

// Has reports whether the field is present, even when null.
func (r RawRecord) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Lower returns the field text lower-cased.
func (r RawRecord) Lower(key string) string {
	return strings.ToLower(r.String(key))
}
