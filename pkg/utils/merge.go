package utils

import (
	"encoding/json"
	"fmt"
)

// ApplyPatch shallow-merges a partial update onto a typed value through a
// JSON round trip: keys present in patch override the corresponding keys of
// item, one level deep. Unlike field-by-field merging this can set a boolean
// to false or a number to zero.
func ApplyPatch[T any](item T, patch map[string]interface{}) (T, error) {
	var out T

	raw, err := json.Marshal(item)
	if err != nil {
		return out, fmt.Errorf("failed to marshal item: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return out, fmt.Errorf("failed to decode item: %w", err)
	}

	for k, v := range patch {
		m[k] = v
	}

	merged, err := json.Marshal(m)
	if err != nil {
		return out, fmt.Errorf("failed to marshal merged value: %w", err)
	}
	if err := json.Unmarshal(merged, &out); err != nil {
		return out, fmt.Errorf("invalid patch: %w", err)
	}
	return out, nil
}

// ToFloat attempts to convert a decoded JSON value to float64 for comparison.
func ToFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	}
	return 0, false
}

// ToString renders a decoded JSON value as a plain string.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
