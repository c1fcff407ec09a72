package phoney

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEngine_EndToEnd(t *testing.T) {
	engine := NewEngine()

	template := map[string]any{
		"id":    "{{uuid}}",
		"name":  "{{first_name}} {{last_name}}",
		"email": "{{email}}",
		"age":   "{{random_int:min=18,max=80}}",
		"user": map[string]any{
			"profile": map[string]any{
				"name": "{{name}}",
			},
		},
		"tags": "{{[word]:count=3}}",
	}

	valid, verrs, warnings := engine.Validate(template, false)
	if !valid {
		t.Fatalf("template should validate, got %v", verrs)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}

	records, diags, err := engine.Process(template, 5, WithSeed(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics %v", diags)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	record := records[0].(map[string]any)

	if age, ok := record["age"].(int); !ok || age < 18 || age > 80 {
		t.Fatalf("age = %T %v, want int in [18,80]", record["age"], record["age"])
	}
	tags, ok := record["tags"].([]any)
	if !ok || len(tags) != 3 {
		t.Fatalf("tags = %T %v, want 3-element array", record["tags"], record["tags"])
	}
	profile := record["user"].(map[string]any)["profile"].(map[string]any)
	if s, ok := profile["name"].(string); !ok || s == "" {
		t.Fatalf("nested name = %T %v", profile["name"], profile["name"])
	}
	if s, ok := record["name"].(string); !ok || s == "" {
		t.Fatalf("mixed-content name = %T %v", record["name"], record["name"])
	}
}

func TestEngine_SeedDeterminism(t *testing.T) {
	template := map[string]any{
		"name":  "{{name}}",
		"email": "{{email}}",
		"tags":  "{{[word]:count=2}}",
		"nested": map[string]any{
			"city": "{{city}}",
		},
	}

	first, err := Generate(template, 3, WithSeed(1234))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Generate(template, 3, WithSeed(1234))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed should reproduce the batch (-first +second):\n%s", diff)
	}

	other, err := Generate(template, 3, WithSeed(4321))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, other); diff == "" {
		t.Fatal("different seeds should diverge")
	}
}

func TestEngine_TypePreservation(t *testing.T) {
	records, err := Generate(map[string]any{
		"pinned": "{{random_int:min=5,max=5}}",
		"flag":   "{{boolean}}",
	}, 1, WithSeed(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record := records[0].(map[string]any)
	if v, ok := record["pinned"].(int); !ok || v != 5 {
		t.Fatalf("pinned = %T %v, want int 5", record["pinned"], record["pinned"])
	}
	if _, ok := record["flag"].(bool); !ok {
		t.Fatalf("flag = %T, want bool", record["flag"])
	}
}

func TestEngine_ValidationRejectsUnknownGenerator(t *testing.T) {
	engine := NewEngine()

	valid, verrs, _ := engine.Validate(map[string]any{"x": "{{zzzzqqqq}}"}, false)
	if valid {
		t.Fatal("unknown generator should not validate")
	}
	if len(verrs) != 1 {
		t.Fatalf("expected one error, got %v", verrs)
	}
	if verrs[0].Kind != "generator_not_found" {
		t.Fatalf("kind = %q", verrs[0].Kind)
	}
	if len(verrs[0].Suggestions) > 5 {
		t.Fatalf("suggestions should be capped at 5, got %v", verrs[0].Suggestions)
	}
}

func TestEngine_EmptyTemplate(t *testing.T) {
	engine := NewEngine()

	valid, verrs, _ := engine.Validate(map[string]any{"static": "text"}, false)
	if valid {
		t.Fatal("placeholder-free template should not validate")
	}

	raw, err := json.Marshal(verrs[0])
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if decoded["error_type"] != "no_placeholders" {
		t.Fatalf("error_type = %v", decoded["error_type"])
	}
}

func TestEngine_CardinalityNeverExceedsCount(t *testing.T) {
	records, err := Generate(map[string]any{"n": "{{name}}"}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) > 7 {
		t.Fatalf("got %d records for count 7", len(records))
	}
}

func TestEngine_UniqueBatch(t *testing.T) {
	records, err := Generate(map[string]any{"id": "{{uuid}}"}, 10, WithSeed(5), WithUnique(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[any]struct{})
	for _, raw := range records {
		id := raw.(map[string]any)["id"]
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %v in unique batch", id)
		}
		seen[id] = struct{}{}
	}
}

func TestEngine_ExtractNestedPaths(t *testing.T) {
	engine := NewEngine()

	fields, err := engine.Extract(map[string]any{
		"user": map[string]any{
			"profile": map[string]any{"name": "{{name}}"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 1 || fields[0].Path != "user.profile.name" {
		t.Fatalf("unexpected fields %v", fields)
	}
}
