// Package phoney exposes the fake-data template engine through a small
// facade: type aliases for the public data model and a constructor that
// wires the engine to the gofakeit-backed registry.
package phoney

import (
	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/template"
)

// Field aliases the parsed placeholder descriptor.
type Field = template.Field

// ValidationError aliases the structured validation finding.
type ValidationError = template.ValidationError

// Diagnostic aliases the per-record drop report from processing.
type Diagnostic = template.Diagnostic

// Engine aliases the template engine facade.
type Engine = template.Engine

// Process call options re-exported for convenience.
var (
	WithLocale = template.WithLocale
	WithSeed   = template.WithSeed
	WithUnique = template.WithUnique
)

// NewEngine returns a template engine backed by the default generator
// registry. Each validate/process call builds its own registry, so the
// engine is safe to share across goroutines.
func NewEngine() *Engine {
	return template.NewEngine(DefaultRegistryFactory)
}

// DefaultRegistryFactory builds a gofakeit-backed registry for one
// engine call.
func DefaultRegistryFactory(locale string, seed *int64) template.Generators {
	opts := []fake.Option{fake.WithLocale(locale)}
	if seed != nil {
		opts = append(opts, fake.WithSeed(*seed))
	}
	return fake.New(opts...)
}

// Generate is a one-shot helper: process the template count times with
// the supplied options.
func Generate(tpl any, count int, opts ...template.ProcessOption) ([]any, error) {
	records, _, err := NewEngine().Process(tpl, count, opts...)
	return records, err
}
