// Package fake wraps the gofakeit generator surface behind an explicit
// registry: an immutable name list plus typed invocation thunks built
// once at startup, instead of per-call reflection. Name resolution is
// three ordered stages (exact, curated alias, substring fuzzy) so
// results stay deterministic and explainable.
package fake

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultLocale is recorded when a caller does not choose one. The
// underlying library generates en-locale data; locale selection is
// carried as request metadata (see Registry.Locale).
const DefaultLocale = "en_US"

// uniqueMaxAttempts bounds the retry loop in unique mode before a
// generator is declared exhausted.
const uniqueMaxAttempts = 50

// surface is the process-wide snapshot of the generator surface, taken
// once from gofakeit's function lookups.
var (
	surfaceNames []string
	surfaceInfos map[string]gofakeit.Info
)

func init() {
	surfaceInfos = make(map[string]gofakeit.Info, len(gofakeit.FuncLookups))
	surfaceNames = make([]string, 0, len(gofakeit.FuncLookups))
	for name, info := range gofakeit.FuncLookups {
		surfaceInfos[name] = info
		surfaceNames = append(surfaceNames, name)
	}
	sort.Strings(surfaceNames)
}

// Option configures a Registry.
type Option func(*Registry)

// WithSeed pins the random sequence so repeated runs reproduce the same
// values.
func WithSeed(seed int64) Option {
	return func(r *Registry) {
		r.seeded = true
		r.rand = rand.New(rand.NewSource(seed))
	}
}

// WithLocale records the requested locale.
func WithLocale(locale string) Option {
	return func(r *Registry) {
		if strings.TrimSpace(locale) != "" {
			r.locale = locale
		}
	}
}

// Registry resolves generator names and invokes generators over its own
// random source. A Registry is intended for a single caller at a time;
// sharing one across goroutines would interleave random-state advances
// and break seed reproducibility. Construct one per request instead.
type Registry struct {
	rand   *rand.Rand
	locale string
	seeded bool

	unique bool
	seen   map[string]map[string]struct{}
}

// New builds a Registry. Without WithSeed the sequence is seeded from
// the clock.
func New(opts ...Option) *Registry {
	r := &Registry{locale: DefaultLocale}
	for _, opt := range opts {
		opt(r)
	}
	if r.rand == nil {
		r.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// Locale returns the locale recorded at construction.
func (r *Registry) Locale() string { return r.locale }

// Seeded reports whether the sequence was pinned with WithSeed.
func (r *Registry) Seeded() bool { return r.seeded }

// Seed re-pins the random sequence.
func (r *Registry) Seed(n int64) {
	r.seeded = true
	r.rand = rand.New(rand.NewSource(n))
}

// Names returns the full generator surface in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(surfaceNames))
	copy(out, surfaceNames)
	return out
}

// Resolve maps a requested name to a concrete generator name. Exact
// match wins over the curated alias table, which wins over substring
// fuzzy matching; the ordering is load-bearing for determinism.
func (r *Registry) Resolve(name string) (string, bool) {
	if _, ok := surfaceInfos[name]; ok {
		return name, true
	}

	if target, ok := aliases[strings.ToLower(name)]; ok {
		if _, live := surfaceInfos[target]; live {
			return target, true
		}
	}

	lower := strings.ToLower(name)
	for _, candidate := range surfaceNames {
		if strings.Contains(candidate, lower) {
			return candidate, true
		}
	}
	for _, candidate := range surfaceNames {
		if strings.Contains(lower, candidate) {
			return candidate, true
		}
	}

	return "", false
}

// Suggest returns up to max alternative names for an unresolvable
// request: substring matches in both directions first, then ranked
// fuzzy matches to fill the remainder.
func (r *Registry) Suggest(name string, max int) []string {
	if max <= 0 {
		return nil
	}
	lower := strings.ToLower(name)
	seen := make(map[string]struct{}, max)
	out := make([]string, 0, max)

	add := func(candidate string) bool {
		if _, dup := seen[candidate]; dup {
			return len(out) < max
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
		return len(out) < max
	}

	for _, candidate := range surfaceNames {
		if strings.Contains(candidate, lower) || strings.Contains(lower, candidate) {
			if !add(candidate) {
				return out
			}
		}
	}

	ranks := fuzzy.RankFindFold(lower, surfaceNames)
	sort.Sort(ranks)
	for _, rank := range ranks {
		if !add(rank.Target) {
			return out
		}
	}

	return out
}

// Invoke calls a concrete generator with typed parameters. Parameter
// names are checked against the generator's declared signature before
// the call: unknown names return an UnknownParamError and values that
// do not fit the declared type return a ParamValueError. Errors raised
// by the generator itself pass through unclassified.
func (r *Registry) Invoke(concrete string, params map[string]any) (any, error) {
	info, ok := surfaceInfos[concrete]
	if !ok {
		return nil, &NotFoundError{Name: concrete}
	}

	mapParams, err := buildMapParams(info, concrete, params)
	if err != nil {
		return nil, err
	}

	if !r.unique {
		return r.generate(info, mapParams)
	}

	if r.seen == nil {
		r.seen = make(map[string]map[string]struct{})
	}
	seen := r.seen[concrete]
	if seen == nil {
		seen = make(map[string]struct{})
		r.seen[concrete] = seen
	}

	for attempt := 0; attempt < uniqueMaxAttempts; attempt++ {
		value, err := r.generate(info, mapParams)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%v", value)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			return value, nil
		}
	}
	return nil, fmt.Errorf("fake: unique values exhausted for %q after %d attempts", concrete, uniqueMaxAttempts)
}

func (r *Registry) generate(info gofakeit.Info, params *gofakeit.MapParams) (any, error) {
	value, err := info.Generate(r.rand, params, &info)
	if err != nil {
		return nil, fmt.Errorf("fake: generate %s: %w", info.Display, err)
	}
	return value, nil
}

// EnableUnique turns on best-effort uniqueness tracking.
func (r *Registry) EnableUnique() { r.unique = true }

// DisableUnique turns tracking off; previously seen values are kept
// until ClearUnique.
func (r *Registry) DisableUnique() { r.unique = false }

// ClearUnique forgets all tracked values.
func (r *Registry) ClearUnique() { r.seen = nil }

func buildMapParams(info gofakeit.Info, concrete string, params map[string]any) (*gofakeit.MapParams, error) {
	mapParams := gofakeit.NewMapParams()
	if len(params) == 0 {
		return mapParams, nil
	}

	declared := make(map[string]gofakeit.Param, len(info.Params))
	for _, param := range info.Params {
		declared[param.Field] = param
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec, ok := declared[key]
		if !ok {
			return nil, &UnknownParamError{Func: concrete, Param: key}
		}
		text, err := paramText(spec, params[key])
		if err != nil {
			return nil, &ParamValueError{Func: concrete, Param: key, Reason: err.Error()}
		}
		mapParams.Add(key, text)
	}
	return mapParams, nil
}

// paramText converts a coerced template parameter into the string form
// the lookup layer consumes, checking it against the declared type.
func paramText(spec gofakeit.Param, value any) (string, error) {
	switch spec.Type {
	case "int", "uint":
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case string:
			if _, err := strconv.Atoi(v); err == nil {
				return v, nil
			}
		}
		return "", fmt.Errorf("expected integer, got %v", value)
	case "float":
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case string:
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				return v, nil
			}
		}
		return "", fmt.Errorf("expected number, got %v", value)
	case "bool":
		switch v := value.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case string:
			if v == "true" || v == "false" {
				return v, nil
			}
		}
		return "", fmt.Errorf("expected boolean, got %v", value)
	default:
		return fmt.Sprintf("%v", value), nil
	}
}
