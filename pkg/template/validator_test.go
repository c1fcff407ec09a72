package template

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// stubRegistry implements Generators over a fixed name set so validator
// and processor behavior can be tested without the real generator
// surface.
type stubRegistry struct {
	names     []string
	invoke    func(concrete string, params map[string]any) (any, error)
	uniqueOn  bool
	clearCalls int
}

func newStubRegistry(names ...string) *stubRegistry {
	return &stubRegistry{
		names: names,
		invoke: func(concrete string, params map[string]any) (any, error) {
			return "stub:" + concrete, nil
		},
	}
}

func (s *stubRegistry) Resolve(name string) (string, bool) {
	lookup := strings.ToLower(strings.TrimSpace(name))
	lookup = strings.Trim(lookup, "[]")
	for _, known := range s.names {
		if known == lookup {
			return known, true
		}
	}
	for _, known := range s.names {
		if strings.Contains(known, lookup) || strings.Contains(lookup, known) {
			return known, true
		}
	}
	return "", false
}

func (s *stubRegistry) Invoke(concrete string, params map[string]any) (any, error) {
	return s.invoke(concrete, params)
}

func (s *stubRegistry) Names() []string { return s.names }

func (s *stubRegistry) Suggest(name string, max int) []string {
	var out []string
	for _, known := range s.names {
		if len(out) == max {
			break
		}
		if strings.Contains(known, strings.ToLower(name)) {
			out = append(out, known)
		}
	}
	return out
}

func (s *stubRegistry) EnableUnique()  { s.uniqueOn = true }
func (s *stubRegistry) DisableUnique() { s.uniqueOn = false }
func (s *stubRegistry) ClearUnique()   { s.clearCalls++ }

type stubUnknownParam struct{ param string }

func (e *stubUnknownParam) Error() string        { return fmt.Sprintf("unknown parameter %q", e.param) }
func (e *stubUnknownParam) UnknownParam() string { return e.param }

type stubBadValue struct{ param, reason string }

func (e *stubBadValue) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.param, e.reason)
}
func (e *stubBadValue) InvalidValue() (string, string) { return e.param, e.reason }

func findError(verrs []ValidationError, kind ErrorKind) (ValidationError, bool) {
	for _, verr := range verrs {
		if verr.Kind == kind {
			return verr, true
		}
	}
	return ValidationError{}, false
}

func TestValidateTemplate_Valid(t *testing.T) {
	registry := newStubRegistry("name", "email", "number")
	validator := NewValidator(registry)

	template := map[string]any{
		"name":  "{{name}}",
		"email": "{{email}}",
		"age":   "{{number:min=18,max=80}}",
	}

	valid, verrs, warnings := validator.ValidateTemplate(template, false)
	if !valid {
		t.Fatalf("expected valid, got errors %v", verrs)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestValidateTemplate_EmptyTemplate(t *testing.T) {
	validator := NewValidator(newStubRegistry("name"))

	valid, verrs, _ := validator.ValidateTemplate(map[string]any{"static": "text"}, false)
	if valid {
		t.Fatal("template without placeholders should be invalid")
	}
	verr, ok := findError(verrs, ErrorNoPlaceholders)
	if !ok {
		t.Fatalf("expected no_placeholders error, got %v", verrs)
	}
	if verr.Message != "No placeholders found in template" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if verr.Field != "template" || verr.Generator != "none" {
		t.Fatalf("unexpected field/generator: %q/%q", verr.Field, verr.Generator)
	}
}

func TestValidateTemplate_UnknownGenerator(t *testing.T) {
	validator := NewValidator(newStubRegistry("email", "emoji"))

	valid, verrs, _ := validator.ValidateTemplate(map[string]any{"x": "{{zzzz}}"}, false)
	if valid {
		t.Fatal("unknown generator should invalidate the template")
	}
	verr, ok := findError(verrs, ErrorGeneratorNotFound)
	if !ok {
		t.Fatalf("expected generator_not_found, got %v", verrs)
	}
	if verr.Message != "Generator 'zzzz' not found" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if verr.Field != "x" {
		t.Fatalf("error should carry the field path, got %q", verr.Field)
	}
}

func TestValidateTemplate_Suggestions(t *testing.T) {
	registry := newStubRegistry("email", "emoji", "emojialias", "name")
	validator := NewValidator(registry)

	// The stub resolves by substring, so pick a request that cannot
	// resolve but still overlaps names for suggestions.
	_, verrs, _ := validator.ValidateTemplate(map[string]any{"x": "{{xyzem}}"}, false)
	verr, ok := findError(verrs, ErrorGeneratorNotFound)
	if !ok {
		t.Fatalf("expected generator_not_found, got %v", verrs)
	}
	if len(verr.Suggestions) > maxSuggestions {
		t.Fatalf("suggestions should be capped at %d, got %d", maxSuggestions, len(verr.Suggestions))
	}
}

func TestValidateTemplate_InvalidParameter(t *testing.T) {
	registry := newStubRegistry("number")
	registry.invoke = func(concrete string, params map[string]any) (any, error) {
		if _, ok := params["bogus"]; ok {
			return nil, &stubUnknownParam{param: "bogus"}
		}
		return 1, nil
	}
	validator := NewValidator(registry)

	valid, verrs, _ := validator.ValidateTemplate(map[string]any{"n": "{{number:bogus=1}}"}, false)
	if valid {
		t.Fatal("unknown parameter should invalidate the template")
	}
	verr, ok := findError(verrs, ErrorInvalidParameter)
	if !ok {
		t.Fatalf("expected invalid_parameter, got %v", verrs)
	}
	if verr.Message != "Invalid parameter 'bogus' for generator 'number'" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestValidateTemplate_ParameterValueError(t *testing.T) {
	registry := newStubRegistry("number")
	registry.invoke = func(concrete string, params map[string]any) (any, error) {
		return nil, &stubBadValue{param: "min", reason: "expected an integer"}
	}
	validator := NewValidator(registry)

	valid, verrs, _ := validator.ValidateTemplate(map[string]any{"n": "{{number:min=low}}"}, false)
	if valid {
		t.Fatal("invalid parameter value should invalidate the template")
	}
	verr, ok := findError(verrs, ErrorParameter)
	if !ok {
		t.Fatalf("expected parameter_error, got %v", verrs)
	}
	if !strings.HasPrefix(verr.Message, "Parameter error: ") {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestValidateTemplate_GenerationFailureIsWarning(t *testing.T) {
	registry := newStubRegistry("number")
	registry.invoke = func(concrete string, params map[string]any) (any, error) {
		return nil, errors.New("transient failure")
	}
	validator := NewValidator(registry)

	valid, verrs, warnings := validator.ValidateTemplate(map[string]any{"n": "{{number:min=1}}"}, false)
	if !valid {
		t.Fatalf("non-structural invocation failure should not invalidate, got %v", verrs)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Could not validate parameters for number") {
		t.Fatalf("expected advisory warning, got %v", warnings)
	}
}

func TestValidateTemplate_ArrayCounts(t *testing.T) {
	validator := NewValidator(newStubRegistry("word"))

	tests := []struct {
		name        string
		template    map[string]any
		wantValid   bool
		wantKind    ErrorKind
		wantMessage string
		wantWarning string
	}{
		{
			name:      "positive count",
			template:  map[string]any{"x": "{{[word]:count=5}}"},
			wantValid: true,
		},
		{
			name:        "zero count",
			template:    map[string]any{"x": "{{[word]:count=0}}"},
			wantKind:    ErrorInvalidArrayCount,
			wantMessage: "Array count must be positive, got 0",
		},
		{
			name:        "non-integer count",
			template:    map[string]any{"x": "{{[word]:count=abc}}"},
			wantKind:    ErrorInvalidArrayCount,
			wantMessage: "Array count must be an integer, got abc",
		},
		{
			name:        "large count warns",
			template:    map[string]any{"x": "{{[word]:count=5000}}"},
			wantValid:   true,
			wantWarning: "Large array count (5000) may impact performance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, verrs, warnings := validator.ValidateTemplate(tt.template, false)
			if valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v (errors %v)", valid, tt.wantValid, verrs)
			}
			if tt.wantKind != "" {
				verr, ok := findError(verrs, tt.wantKind)
				if !ok {
					t.Fatalf("expected %s error, got %v", tt.wantKind, verrs)
				}
				if verr.Message != tt.wantMessage {
					t.Fatalf("message = %q, want %q", verr.Message, tt.wantMessage)
				}
			}
			if tt.wantWarning != "" {
				found := false
				for _, w := range warnings {
					if w == tt.wantWarning {
						found = true
					}
				}
				if !found {
					t.Fatalf("expected warning %q in %v", tt.wantWarning, warnings)
				}
			}
		})
	}
}

func TestValidateTemplate_ArrayPlaceholderResolvesViaFuzzy(t *testing.T) {
	// An array placeholder is also captured by the parameterized pattern
	// with a bracketed generator name; resolution must still succeed so
	// well-formed array templates validate clean.
	validator := NewValidator(newStubRegistry("name"))

	valid, verrs, _ := validator.ValidateTemplate(map[string]any{"x": "{{[name]:count=3}}"}, false)
	if !valid {
		t.Fatalf("array template should validate, got %v", verrs)
	}
}

func TestValidateTemplate_DepthError(t *testing.T) {
	var tree any = map[string]any{"leaf": "{{name}}"}
	for i := 0; i < maxTemplateDepth+1; i++ {
		tree = map[string]any{"nested": tree}
	}
	validator := NewValidator(newStubRegistry("name"))

	valid, verrs, _ := validator.ValidateTemplate(tree, false)
	if valid {
		t.Fatal("over-deep template should be invalid")
	}
	if _, ok := findError(verrs, ErrorParsing); !ok {
		t.Fatalf("expected parsing_error, got %v", verrs)
	}
}
