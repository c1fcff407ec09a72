package fake

import (
	"sort"
	"testing"
)

func TestDescribe(t *testing.T) {
	r := New()

	desc, ok := r.Describe("number")
	if !ok {
		t.Fatal("number should be describable")
	}
	if desc.Name != "number" {
		t.Fatalf("name = %q", desc.Name)
	}
	if desc.Output == "" {
		t.Fatal("output type should be populated")
	}
	params := make(map[string]ParamInfo, len(desc.Params))
	for _, p := range desc.Params {
		params[p.Field] = p
	}
	for _, field := range []string{"min", "max"} {
		p, ok := params[field]
		if !ok {
			t.Fatalf("number should declare %q, got %v", field, desc.Params)
		}
		if p.Type != "int" {
			t.Fatalf("%s type = %q, want int", field, p.Type)
		}
	}

	if _, ok := r.Describe("zzzzqqqq"); ok {
		t.Fatal("unknown generator should not be describable")
	}
}

func TestCategories(t *testing.T) {
	r := New()

	categories := r.Categories()
	if len(categories) == 0 {
		t.Fatal("surface should expose categories")
	}
	if !sort.StringsAreSorted(categories) {
		t.Fatal("categories should be sorted")
	}

	seen := make(map[string]struct{})
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = struct{}{}
	}
}

func TestNamesByCategory(t *testing.T) {
	r := New()

	for _, category := range r.Categories() {
		names := r.NamesByCategory(category)
		if len(names) == 0 {
			t.Fatalf("category %q should have generators", category)
		}
		if !sort.StringsAreSorted(names) {
			t.Fatalf("names in %q should be sorted", category)
		}
		for _, name := range names {
			desc, ok := r.Describe(name)
			if !ok || desc.Category != category {
				t.Fatalf("generator %q not consistent with category %q", name, category)
			}
		}
	}

	if names := r.NamesByCategory("no-such-category"); len(names) != 0 {
		t.Fatalf("unknown category should be empty, got %v", names)
	}
}
