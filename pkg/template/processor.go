package template

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Diagnostic records one silently dropped record. Per-record generation
// failures never abort a batch, so callers that care about shortfalls
// can inspect these after processing.
type Diagnostic struct {
	Record int    `json:"record"`
	Reason string `json:"reason"`
}

// Processor generates records from a template. It is configured at
// construction with a registry whose seed pins the entire generation
// sequence; two processors built over registries with the same seed
// produce identical output for identical input. A Processor must not be
// shared across concurrent callers: its registry advances internal
// random state on every invocation.
type Processor struct {
	registry Generators
	diags    []Diagnostic
}

// NewProcessor returns a Processor over the supplied registry.
func NewProcessor(registry Generators) *Processor {
	return &Processor{registry: registry}
}

// Diagnostics returns per-record drop reasons from the most recent
// ProcessTemplate call.
func (p *Processor) Diagnostics() []Diagnostic {
	return p.diags
}

// ProcessTemplate resolves the template count times and returns the
// generated records. Records whose generation fails are dropped and the
// batch continues, so the result may be shorter than count; the error
// return is reserved for structural failures in the template itself.
// Unique mode clears prior uniqueness state and enables best-effort
// tracking in the registry for the duration of the batch.
func (p *Processor) ProcessTemplate(template any, count int, unique bool) ([]any, error) {
	if err := checkDepth(template, 0); err != nil {
		return nil, err
	}

	if unique {
		p.registry.ClearUnique()
		p.registry.EnableUnique()
		defer p.registry.DisableUnique()
	}

	p.diags = nil
	results := make([]any, 0, count)
	for i := 0; i < count; i++ {
		record, err := p.processItem(template)
		if err != nil {
			p.diags = append(p.diags, Diagnostic{Record: i, Reason: err.Error()})
			continue
		}
		results = append(results, record)
	}
	return results, nil
}

func checkDepth(node any, depth int) error {
	if depth > maxTemplateDepth {
		return ErrMaxDepth
	}
	switch value := node.(type) {
	case map[string]any:
		for _, child := range value {
			if err := checkDepth(child, depth+1); err != nil {
				return err
			}
		}
	case []any:
		for _, child := range value {
			if err := checkDepth(child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// processItem rebuilds the tree, substituting placeholders in string
// leaves. Map keys are visited in sorted order so a pinned seed assigns
// the same generated values to the same keys on every run.
func (p *Processor) processItem(node any) (any, error) {
	switch value := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(value))
		for _, key := range keys {
			child, err := p.processItem(value[key])
			if err != nil {
				return nil, err
			}
			out[key] = child
		}
		return out, nil

	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			child, err := p.processItem(item)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil

	case string:
		return p.resolveString(value)

	default:
		return node, nil
	}
}

// resolveString applies the substitution algorithm to one string leaf.
// Array placeholders are handled first, then parameterized, then
// simple. A placeholder that makes up the entire leaf substitutes
// type-preservingly (the leaf becomes the raw value or array); partial
// matches stringify and splice. Matches whose text has already been
// consumed by an earlier replacement are skipped.
func (p *Processor) resolveString(text string) (any, error) {
	result := text

	for _, match := range arrayPlaceholderPattern.FindAllStringSubmatch(text, -1) {
		placeholder := match[0]
		if !strings.Contains(result, placeholder) {
			continue
		}
		generator := strings.TrimSpace(match[1])
		params := ParseParameters(strings.TrimSpace(match[2]))

		count := 1
		if raw, ok := params["count"]; ok {
			n, isInt := raw.(int)
			if !isInt {
				return nil, fmt.Errorf("array count must be an integer, got %v", raw)
			}
			count = n
			delete(params, "count")
		}

		values, err := p.generateArray(generator, count, params)
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(result) == placeholder {
			return values, nil
		}
		spliced, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("encode array for %q: %w", generator, err)
		}
		result = strings.ReplaceAll(result, placeholder, string(spliced))
	}

	for _, match := range paramPlaceholderPattern.FindAllStringSubmatch(text, -1) {
		placeholder := match[0]
		if !strings.Contains(result, placeholder) {
			continue
		}
		generator := strings.TrimSpace(match[1])
		params := ParseParameters(strings.TrimSpace(match[2]))

		value, err := p.generateValue(generator, params)
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(result) == placeholder {
			return value, nil
		}
		result = strings.ReplaceAll(result, placeholder, stringify(value))
	}

	for _, match := range simplePlaceholderPattern.FindAllStringSubmatch(result, -1) {
		placeholder := match[0]
		if !strings.Contains(result, placeholder) {
			continue
		}
		generator := strings.TrimSpace(match[1])
		if strings.Contains(generator, ".") {
			parts := strings.Split(generator, ".")
			generator = parts[len(parts)-1]
		}

		value, err := p.generateValue(generator, nil)
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(result) == placeholder {
			return value, nil
		}
		result = strings.ReplaceAll(result, placeholder, stringify(value))
	}

	return result, nil
}

func (p *Processor) generateValue(generator string, params Params) (any, error) {
	concrete, ok := p.registry.Resolve(generator)
	if !ok {
		return nil, fmt.Errorf("generator %q not found", generator)
	}
	return p.registry.Invoke(concrete, invocationParams(params))
}

func (p *Processor) generateArray(generator string, count int, params Params) ([]any, error) {
	values := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value, err := p.generateValue(generator, params)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func stringify(value any) string {
	return fmt.Sprintf("%v", value)
}
