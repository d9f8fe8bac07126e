package paramutil

import (
	"errors"
	"fmt"
)

// ErrMissingParameter is returned when a required parameter is missing or
// empty.
var ErrMissingParameter = errors.New("missing required parameter")

// ExtractRequiredString extracts a required string parameter from params map.
// Returns ErrMissingParameter if the parameter is missing or empty.
func ExtractRequiredString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractOptionalString extracts an optional string parameter.
// Returns empty string if the parameter is missing or empty.
func ExtractOptionalString(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// ExtractRequiredMap extracts a required key-value payload parameter.
// Returns ErrMissingParameter if the parameter is missing or empty.
func ExtractRequiredMap(params map[string]interface{}, key string) (map[string]interface{}, error) {
	if v, ok := params[key].(map[string]interface{}); ok && len(v) > 0 {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// BoolPtr returns a pointer to a boolean value
func BoolPtr(b bool) *bool {
	return &b
}
