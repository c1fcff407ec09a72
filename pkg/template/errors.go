package template

// ErrorKind classifies a ValidationError.
type ErrorKind string

const (
	// ErrorNoPlaceholders reports a template with no placeholders at all.
	ErrorNoPlaceholders ErrorKind = "no_placeholders"
	// ErrorGeneratorNotFound reports a generator name the registry could
	// not resolve, with up to five suggestions attached.
	ErrorGeneratorNotFound ErrorKind = "generator_not_found"
	// ErrorInvalidParameter reports a parameter name the generator does
	// not accept.
	ErrorInvalidParameter ErrorKind = "invalid_parameter"
	// ErrorParameter reports a parameter whose value the generator
	// rejected.
	ErrorParameter ErrorKind = "parameter_error"
	// ErrorInvalidArrayCount reports an array count below 1 or one that
	// did not parse as an integer.
	ErrorInvalidArrayCount ErrorKind = "invalid_array_count"
	// ErrorParsing reports an unexpected failure while extracting
	// placeholders from the tree.
	ErrorParsing ErrorKind = "parsing_error"
)

// ValidationError is one structured finding from template validation.
// Validation errors are returned as data, never raised.
type ValidationError struct {
	Field       string    `json:"field"`
	Generator   string    `json:"generator"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Kind        ErrorKind `json:"error_type"`
}

// Error classification interfaces satisfied by registry invocation
// errors. The engine asserts on behavior rather than concrete types, so
// any Generators implementation can participate.
type (
	unknownParamError interface {
		error
		UnknownParam() string
	}
	paramValueError interface {
		error
		InvalidValue() (param, reason string)
	}
)
