package template

// Params holds placeholder parameters after value coercion. Values are
// bool, int, float64, or string depending on how the raw text parsed.
type Params map[string]any

// Field is one placeholder occurrence extracted from a template tree.
// Fields are created fresh per extract/validate call and never mutated.
type Field struct {
	// Generator is the requested generator name. For dotted references
	// matched by the simple pattern only the final segment is kept.
	Generator string `json:"generator"`

	// Parameters carries the coerced key/value parameters, nil when the
	// placeholder had none.
	Parameters Params `json:"parameters,omitempty"`

	// ArrayCount is set for array placeholders. The count parameter
	// defaults to 1 when absent. Nil for non-array placeholders.
	ArrayCount *int `json:"array_count,omitempty"`

	// Path locates the field's origin in the source tree using dotted
	// and bracketed notation (e.g. "user.address[0].city"). It is
	// informational: processing re-scans the tree structurally rather
	// than re-inserting by path.
	Path string `json:"nested_path"`
}

// Generators is the lookup surface the engine needs from a generator
// registry. Implementations resolve fuzzy names to concrete generators
// and invoke them with parsed parameters.
type Generators interface {
	// Resolve maps a requested name to a concrete generator name.
	Resolve(name string) (string, bool)

	// Invoke calls a concrete generator with the supplied parameters.
	// The reserved "count" key must already be stripped by the caller.
	Invoke(concrete string, params map[string]any) (any, error)

	// Names returns the full generator surface in a stable order, used
	// for suggestion searches.
	Names() []string

	// Suggest returns up to max alternative names for an unresolvable
	// request.
	Suggest(name string, max int) []string

	// Uniqueness is best-effort, tracked per registry instance.
	EnableUnique()
	DisableUnique()
	ClearUnique()
}

// RegistryFactory builds a registry for one validate or process call.
// Seed is nil when the caller did not pin one.
type RegistryFactory func(locale string, seed *int64) Generators
