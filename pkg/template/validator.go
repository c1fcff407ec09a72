package template

import (
	"errors"
	"fmt"
)

const maxSuggestions = 5

// softArrayCountLimit is the array size above which validation emits a
// performance advisory instead of an error.
const softArrayCountLimit = 1000

// Validator cross-checks extracted fields against a generator registry.
// Construct one per validation call; it holds no state beyond the
// registry handle.
type Validator struct {
	registry Generators
}

// NewValidator returns a Validator backed by the supplied registry.
func NewValidator(registry Generators) *Validator {
	return &Validator{registry: registry}
}

// ValidateTemplate checks every placeholder in the template. It returns
// whether the template is valid, the structured errors found, and
// non-fatal warnings. Warnings never affect validity.
//
// The strict flag is accepted for forward compatibility but does not
// change validation outcomes in the current contract; it is an
// extension point, not a behavior switch.
func (v *Validator) ValidateTemplate(template any, strict bool) (bool, []ValidationError, []string) {
	_ = strict

	var (
		verrs    []ValidationError
		warnings []string
	)

	fields, err := ExtractPlaceholders(template, "")
	if err != nil {
		verrs = append(verrs, ValidationError{
			Field:     "template",
			Generator: "unknown",
			Message:   fmt.Sprintf("Template parsing error: %v", err),
			Kind:      ErrorParsing,
		})
		return false, verrs, warnings
	}

	if len(fields) == 0 {
		verrs = append(verrs, ValidationError{
			Field:     "template",
			Generator: "none",
			Message:   "No placeholders found in template",
			Kind:      ErrorNoPlaceholders,
		})
	}

	for _, field := range fields {
		fieldErrs, fieldWarnings := v.validateField(field)
		verrs = append(verrs, fieldErrs...)
		warnings = append(warnings, fieldWarnings...)
	}

	return len(verrs) == 0, verrs, warnings
}

func (v *Validator) validateField(field Field) ([]ValidationError, []string) {
	var (
		verrs    []ValidationError
		warnings []string
	)

	fieldPath := field.Path
	if fieldPath == "" {
		fieldPath = "unknown"
	}

	concrete, ok := v.registry.Resolve(field.Generator)
	if !ok {
		verrs = append(verrs, ValidationError{
			Field:       fieldPath,
			Generator:   field.Generator,
			Message:     fmt.Sprintf("Generator '%s' not found", field.Generator),
			Suggestions: v.registry.Suggest(field.Generator, maxSuggestions),
			Kind:        ErrorGeneratorNotFound,
		})
	} else if len(field.Parameters) > 0 {
		paramErrs, paramWarnings := v.validateParameters(concrete, field.Parameters, fieldPath)
		verrs = append(verrs, paramErrs...)
		warnings = append(warnings, paramWarnings...)
	}

	if field.ArrayCount != nil {
		if *field.ArrayCount < 1 {
			verrs = append(verrs, ValidationError{
				Field:     fieldPath,
				Generator: field.Generator,
				Message:   fmt.Sprintf("Array count must be positive, got %d", *field.ArrayCount),
				Kind:      ErrorInvalidArrayCount,
			})
		} else if *field.ArrayCount > softArrayCountLimit {
			warnings = append(warnings, fmt.Sprintf("Large array count (%d) may impact performance", *field.ArrayCount))
		}
	} else if raw, present := field.Parameters["count"]; present {
		// Non-array fields can still carry a count parameter: the
		// parameterized pattern re-matches array placeholders, and the
		// parser leaves a count that did not coerce to an integer in
		// place. Only a malformed or non-positive count is an error here.
		if n, isInt := raw.(int); !isInt {
			verrs = append(verrs, ValidationError{
				Field:     fieldPath,
				Generator: field.Generator,
				Message:   fmt.Sprintf("Array count must be an integer, got %v", raw),
				Kind:      ErrorInvalidArrayCount,
			})
		} else if n < 1 {
			verrs = append(verrs, ValidationError{
				Field:     fieldPath,
				Generator: field.Generator,
				Message:   fmt.Sprintf("Array count must be positive, got %d", n),
				Kind:      ErrorInvalidArrayCount,
			})
		}
	}

	return verrs, warnings
}

// validateParameters performs a trial invocation to detect parameter
// incompatibility. Parameter shape problems are hard errors; any other
// failure degrades to an advisory warning so transient generation
// issues do not invalidate the template.
func (v *Validator) validateParameters(concrete string, params Params, fieldPath string) ([]ValidationError, []string) {
	_, err := v.registry.Invoke(concrete, invocationParams(params))
	if err == nil {
		return nil, nil
	}

	var unknown unknownParamError
	if errors.As(err, &unknown) {
		return []ValidationError{{
			Field:     fieldPath,
			Generator: concrete,
			Message:   fmt.Sprintf("Invalid parameter '%s' for generator '%s'", unknown.UnknownParam(), concrete),
			Kind:      ErrorInvalidParameter,
		}}, nil
	}

	var badValue paramValueError
	if errors.As(err, &badValue) {
		return []ValidationError{{
			Field:     fieldPath,
			Generator: concrete,
			Message:   fmt.Sprintf("Parameter error: %v", err),
			Kind:      ErrorParameter,
		}}, nil
	}

	return nil, []string{fmt.Sprintf("Could not validate parameters for %s: %v", concrete, err)}
}

// invocationParams strips the reserved count key; it sizes arrays and is
// never forwarded to a generator.
func invocationParams(params Params) map[string]any {
	out := make(map[string]any, len(params))
	for key, value := range params {
		if key == "count" {
			continue
		}
		out[key] = value
	}
	return out
}
