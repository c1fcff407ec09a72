package template

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Placeholder patterns, scanned in a fixed priority: array, then
// parameterized, then simple. The patterns are independent passes
// without mutual exclusion bookkeeping, so an array placeholder is
// additionally re-matched by the parameterized pattern (its generator
// group captures the leading bracket, e.g. "[name"). That double count
// is a documented compatibility artifact; the fuzzy registry lookup
// resolves the bracketed name back to the real generator.
var (
	arrayPlaceholderPattern = regexp.MustCompile(`\{\{\[([^}:]+)\]:([^}]+)\}\}`)
	paramPlaceholderPattern = regexp.MustCompile(`\{\{([^}:]+):([^}]+)\}\}`)
	simplePlaceholderPattern = regexp.MustCompile(`\{\{([^}:]+)\}\}`)
)

// maxTemplateDepth bounds tree recursion so pathological or cyclic
// structures surface as a parsing error instead of exhausting the stack.
const maxTemplateDepth = 100

// ErrMaxDepth reports a template nested beyond the supported depth.
var ErrMaxDepth = errors.New("template: maximum nesting depth exceeded")

// ExtractPlaceholders walks a template tree and returns every
// placeholder occurrence as a flat list of Fields. Map keys are visited
// in sorted order so output is stable across calls. Ordering across
// pattern types within one string is not textual: array matches are
// collected before parameterized before simple.
func ExtractPlaceholders(template any, path string) ([]Field, error) {
	return extract(template, path, 0)
}

func extract(node any, path string, depth int) ([]Field, error) {
	if depth > maxTemplateDepth {
		return nil, ErrMaxDepth
	}

	switch value := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var fields []Field
		for _, key := range keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			child, err := extract(value[key], childPath, depth+1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, child...)
		}
		return fields, nil

	case []any:
		var fields []Field
		for i, item := range value {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			child, err := extract(item, childPath, depth+1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, child...)
		}
		return fields, nil

	case string:
		return parseStringPlaceholders(value, path), nil

	default:
		return nil, nil
	}
}

func parseStringPlaceholders(text, path string) []Field {
	var fields []Field

	// Array placeholders first: {{[generator]:count=5}}.
	for _, match := range arrayPlaceholderPattern.FindAllStringSubmatch(text, -1) {
		generator := strings.TrimSpace(match[1])
		params := ParseParameters(strings.TrimSpace(match[2]))

		count := 1
		arrayCount := &count
		if raw, ok := params["count"]; ok {
			if n, isInt := raw.(int); isInt {
				count = n
				delete(params, "count")
			} else {
				// Leave the malformed count in place so the validator
				// can report it against this field.
				arrayCount = nil
			}
		}
		if len(params) == 0 {
			params = nil
		}

		fields = append(fields, Field{
			Generator:  generator,
			Parameters: params,
			ArrayCount: arrayCount,
			Path:       path,
		})
	}

	// Parameterized placeholders: {{generator:param=value}}.
	for _, match := range paramPlaceholderPattern.FindAllStringSubmatch(text, -1) {
		generator := strings.TrimSpace(match[1])
		params := ParseParameters(strings.TrimSpace(match[2]))
		if len(params) == 0 {
			params = nil
		}

		fields = append(fields, Field{
			Generator:  generator,
			Parameters: params,
			Path:       path,
		})
	}

	// Simple placeholders: {{generator}}.
	for _, match := range simplePlaceholderPattern.FindAllStringSubmatch(text, -1) {
		generator := strings.TrimSpace(match[1])

		// Skip matches already recorded by a higher-priority pattern.
		// Dotted references are compared before reduction, so a dotted
		// name is not deduped against its final segment; a known
		// overlap case.
		if hasField(fields, generator, path) {
			continue
		}

		if strings.Contains(generator, ".") {
			parts := strings.Split(generator, ".")
			generator = parts[len(parts)-1]
		}

		fields = append(fields, Field{
			Generator: generator,
			Path:      path,
		})
	}

	return fields
}

func hasField(fields []Field, generator, path string) bool {
	for _, field := range fields {
		if field.Generator == generator && field.Path == path {
			return true
		}
	}
	return false
}
