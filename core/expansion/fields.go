// ABOUTME: Best-effort coercion of heterogeneous endpoint fields
// ABOUTME: Field-name fallbacks live in tables so new upstream schema variants are additive

package expansion

import (
	"encoding/json"
	"math"
	"strconv"

	"opencosts-api/core/domain"
)

// ContextLengthFields are checked in order; the first truthy value wins.
var ContextLengthFields = []string{"context_length", "max_prompt_tokens"}

// Pricing sub-fields of an endpoint record
const (
	PricingField    = "pricing"
	PromptField     = "prompt"
	CompletionField = "completion"
)

// ContextLength reads the first truthy context-length field and coerces it to an int.
// Numbers are truncated, strings must be ASCII digits, anything else is absent.
func ContextLength(endpoint domain.RawRecord) *int {
	for _, field := range ContextLengthFields {
		value := endpoint.Value(field)
		if !truthy(value) {
			continue
		}
		return coerceInt(value)
	}
	return nil
}

// OpaqueString returns a string or number field as its upstream text, nil otherwise.
func OpaqueString(record domain.RawRecord, field string) *string {
	switch record.Value(field).(type) {
	case string, json.Number:
		text := record.String(field)
		return &text
	default:
		return nil
	}
}

// OptionalFloat returns a numeric field, nil when absent or not a number.
func OptionalFloat(record domain.RawRecord, field string) *float64 {
	var f float64
	switch v := record.Value(field).(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case float64:
		f = v
	case int:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

// truthy mirrors loose truthiness: nil, false, zero, "" and empty collections are falsy.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}

func coerceInt(value interface{}) *int {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return intPtr(n)
		}
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return truncate(f)
	case float64:
		return truncate(v)
	case int:
		return &v
	case string:
		if !isDigits(v) {
			return nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil
		}
		return intPtr(n)
	default:
		return nil
	}
}

func truncate(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	return intPtr(int64(f))
}

func intPtr(n int64) *int {
	i := int(n)
	return &i
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
