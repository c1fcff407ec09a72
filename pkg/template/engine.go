package template

import "errors"

// ErrNilFactory is returned when an Engine was built without a registry
// factory.
var ErrNilFactory = errors.New("template: registry factory is required")

// ProcessOption configures one Process call.
type ProcessOption func(*processConfig)

type processConfig struct {
	locale string
	seed   *int64
	unique bool
}

// WithLocale selects the locale recorded for the generation run.
func WithLocale(locale string) ProcessOption {
	return func(cfg *processConfig) { cfg.locale = locale }
}

// WithSeed pins the generation sequence. Two Process calls with the
// same seed, template, and count produce identical output.
func WithSeed(seed int64) ProcessOption {
	return func(cfg *processConfig) { cfg.seed = &seed }
}

// WithUnique enables best-effort uniqueness tracking for the batch.
func WithUnique(unique bool) ProcessOption {
	return func(cfg *processConfig) { cfg.unique = unique }
}

// Engine composes the parser, validator, and processor behind the three
// template operations. It holds no cross-call state: every call builds
// a fresh registry through the factory, so concurrent calls never share
// random-state.
type Engine struct {
	factory RegistryFactory
}

// NewEngine returns an Engine that builds registries with factory.
func NewEngine(factory RegistryFactory) *Engine {
	return &Engine{factory: factory}
}

// Validate checks the template against the generator surface. See
// Validator.ValidateTemplate for the contract.
func (e *Engine) Validate(template any, strict bool) (bool, []ValidationError, []string) {
	if e.factory == nil {
		return false, []ValidationError{{
			Field:     "template",
			Generator: "unknown",
			Message:   "Template parsing error: " + ErrNilFactory.Error(),
			Kind:      ErrorParsing,
		}}, nil
	}
	validator := NewValidator(e.factory("", nil))
	return validator.ValidateTemplate(template, strict)
}

// Process generates count records from the template. The result may be
// shorter than count when individual records fail; the Diagnostics
// return carries the drop reasons.
func (e *Engine) Process(template any, count int, opts ...ProcessOption) ([]any, []Diagnostic, error) {
	if e.factory == nil {
		return nil, nil, ErrNilFactory
	}

	var cfg processConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	processor := NewProcessor(e.factory(cfg.locale, cfg.seed))
	records, err := processor.ProcessTemplate(template, count, cfg.unique)
	if err != nil {
		return nil, nil, err
	}
	return records, processor.Diagnostics(), nil
}

// Extract returns the flat list of placeholder fields in the template.
func (e *Engine) Extract(template any) ([]Field, error) {
	return ExtractPlaceholders(template, "")
}
