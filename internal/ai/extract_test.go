package ai

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	got, err := ExtractJSONObject(`{"days": [], "totalCost": 0}`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"days": [], "totalCost": 0}` {
		t.Errorf("unexpected span: %q", got)
	}
}

func TestExtractJSONObjectSurroundingProse(t *testing.T) {
	in := "Here is your itinerary:\n{\"days\": [{\"day\": 1}]}\nEnjoy your trip!"
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"days": [{"day": 1}]}` {
		t.Errorf("unexpected span: %q", got)
	}
}

// Narrative braces after the object must not extend the span; this is exactly the
// case the greedy last-"}" strategy mis-extracts.
func TestExtractJSONObjectTrailingBraces(t *testing.T) {
	in := `{"a": 1} and remember: config blocks look like {this}`
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("unexpected span: %q", got)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Errorf("span is not valid JSON: %v", err)
	}
}

func TestExtractJSONObjectFenced(t *testing.T) {
	in := "Sure! Here you go:\n```json\n{\"days\": []}\n```\nLet me know if you need changes."
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"days": []}` {
		t.Errorf("unexpected span: %q", got)
	}
}

func TestExtractJSONObjectBareFence(t *testing.T) {
	in := "```\n{\"ok\": true}\n```"
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"ok": true}` {
		t.Errorf("unexpected span: %q", got)
	}
}

func TestExtractJSONObjectBracesInsideStrings(t *testing.T) {
	in := `prefix {"note": "use {curly} braces", "n": 1} suffix`
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"note": "use {curly} braces", "n": 1}` {
		t.Errorf("unexpected span: %q", got)
	}
}

func TestExtractJSONObjectEscapedQuote(t *testing.T) {
	in := `{"quote": "she said \"go {now}\"", "x": 2} trailing`
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("span is not valid JSON: %v (%q)", err, got)
	}
	if v["x"] != float64(2) {
		t.Errorf("lost field x: %v", v)
	}
}

func TestExtractJSONObjectNested(t *testing.T) {
	in := `{"days": [{"activities": [{"location": {"coordinates": {"lat": 1}}}]}]}`
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != in {
		t.Errorf("unexpected span: %q", got)
	}
}

func TestExtractJSONObjectFailures(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no braces", "I could not produce an itinerary, sorry."},
		{"unterminated", `{"days": [`},
		{"only close", `} nothing opens this`},
		{"unterminated in string", `{"a": "never closes`},
	}
	for _, tc := range cases {
		if got, err := ExtractJSONObject(tc.in); err == nil {
			t.Errorf("%s: expected error, got %q", tc.name, got)
		}
	}
}

// A fenced block with garbage inside must fall back to scanning the full reply.
func TestExtractJSONObjectFenceFallback(t *testing.T) {
	in := "```\nnot json here\n```\nbut later {\"a\": 1} appears"
	got, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("unexpected span: %q", got)
	}
}
