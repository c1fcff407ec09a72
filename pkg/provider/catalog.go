// Package provider groups the generator surface into named providers
// (person, address, payment, ...) for the discovery endpoints.
package provider

import (
	"fmt"

	"github.com/jpwhite3/phoney/pkg/fake"
)

// Provider is one generator category with its member generators.
type Provider struct {
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	GeneratorCount int      `json:"generator_count"`
	Generators     []string `json:"generators"`
}

// Catalog is an immutable snapshot of the provider surface.
type Catalog struct {
	names     []string
	providers map[string]Provider
}

// NewCatalog builds a catalog from the registry's category metadata.
func NewCatalog(registry *fake.Registry) *Catalog {
	names := registry.Categories()
	providers := make(map[string]Provider, len(names))
	for _, name := range names {
		generators := registry.NamesByCategory(name)
		providers[name] = Provider{
			Name:           name,
			URL:            fmt.Sprintf("/provider/%s", name),
			GeneratorCount: len(generators),
			Generators:     generators,
		}
	}
	return &Catalog{names: names, providers: providers}
}

// List returns the provider names, sorted.
func (c *Catalog) List() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Get returns one provider by name.
func (c *Catalog) Get(name string) (Provider, bool) {
	p, ok := c.providers[name]
	return p, ok
}

// Metadata returns the full provider map keyed by name, the payload
// served by the providers endpoint.
func (c *Catalog) Metadata() map[string]Provider {
	out := make(map[string]Provider, len(c.providers))
	for name, p := range c.providers {
		out[name] = p
	}
	return out
}
