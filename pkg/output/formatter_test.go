package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	formatter := NewFormatter()

	result, err := formatter.FormatJSON(map[string]string{"key": "value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "{\n  \"key\": \"value\"\n}"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFormatJSONDeterministic(t *testing.T) {
	formatter := NewFormatter()
	data := map[string]interface{}{"b": 2, "a": 1, "c": []interface{}{"x"}}

	first, err := formatter.FormatJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := formatter.FormatJSON(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("formatting is not deterministic:\n%s\nvs\n%s", first, again)
		}
	}
}

func TestFormatYAML(t *testing.T) {
	formatter := NewFormatter()

	result, err := formatter.FormatYAML(map[string]string{"key": "value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "key: value") {
		t.Errorf("expected YAML output to contain 'key: value', got %q", result)
	}
}

func TestSanitize(t *testing.T) {
	in := map[string]interface{}{
		"name":    "weekly",
		"count":   float64(3),
		"enabled": true,
		"channel": make(chan int), // no native JSON encoding
		"nested": map[string]interface{}{
			"items": []interface{}{"a", make(chan int)},
		},
	}

	out := Sanitize(in)

	// Sanitized output must round-trip through JSON
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("sanitized value failed to marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded["name"] != "weekly" {
		t.Errorf("expected name to survive sanitization, got %v", decoded["name"])
	}
	if _, ok := decoded["channel"].(string); !ok {
		t.Errorf("expected channel to be stringified, got %T", decoded["channel"])
	}
}
