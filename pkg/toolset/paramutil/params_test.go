package paramutil

import (
	"errors"
	"testing"
)

func TestExtractRequiredString(t *testing.T) {
	params := map[string]interface{}{
		"schedule_id": "s1",
		"empty":       "",
		"number":      42,
	}

	value, err := ExtractRequiredString(params, "schedule_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "s1" {
		t.Errorf("expected 's1', got %q", value)
	}

	for _, key := range []string{"empty", "missing", "number"} {
		if _, err := ExtractRequiredString(params, key); !errors.Is(err, ErrMissingParameter) {
			t.Errorf("expected ErrMissingParameter for %q, got %v", key, err)
		}
	}
}

func TestExtractOptionalString(t *testing.T) {
	params := map[string]interface{}{"name": "weekly"}

	if got := ExtractOptionalString(params, "name"); got != "weekly" {
		t.Errorf("expected 'weekly', got %q", got)
	}
	if got := ExtractOptionalString(params, "missing"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestExtractRequiredMap(t *testing.T) {
	params := map[string]interface{}{
		"schedule_data": map[string]interface{}{"name": "weekly"},
		"empty":         map[string]interface{}{},
	}

	data, err := ExtractRequiredMap(params, "schedule_data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["name"] != "weekly" {
		t.Errorf("expected name 'weekly', got %v", data["name"])
	}

	for _, key := range []string{"empty", "missing"} {
		if _, err := ExtractRequiredMap(params, key); !errors.Is(err, ErrMissingParameter) {
			t.Errorf("expected ErrMissingParameter for %q, got %v", key, err)
		}
	}
}
