// Package template implements the placeholder template engine used to
// describe JSON-shaped records of fake data.
//
// A template is an arbitrarily nested tree of maps, slices, and scalars.
// String leaves may contain placeholders in three surface forms:
//
//	{{generator}}                          simple
//	{{generator:param=value,param2=value}} parameterized
//	{{[generator]:count=N,param=value}}    array
//
// The package splits responsibilities the same way requests flow through
// it: a Parser extracts placeholder occurrences into flat field
// descriptors, a Validator cross-checks those descriptors against the
// generator registry, and a Processor walks the tree again substituting
// placeholders with generated values. Engine composes the three behind
// validate/process/extract operations and holds no cross-call state.
package template
