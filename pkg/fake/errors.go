package fake

import "fmt"

// NotFoundError reports a concrete generator name absent from the
// surface. Callers normally hit this only when bypassing Resolve.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fake: generator %q not found", e.Name)
}

// UnknownParamError reports a parameter name the generator does not
// declare.
type UnknownParamError struct {
	Func  string
	Param string
}

func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("fake: %s does not accept parameter %q", e.Func, e.Param)
}

// UnknownParam returns the offending parameter name. The template
// engine classifies invocation errors through this method.
func (e *UnknownParamError) UnknownParam() string { return e.Param }

// ParamValueError reports a parameter value that does not fit the
// generator's declared type.
type ParamValueError struct {
	Func   string
	Param  string
	Reason string
}

func (e *ParamValueError) Error() string {
	return fmt.Sprintf("fake: %s parameter %q: %s", e.Func, e.Param, e.Reason)
}

// InvalidValue returns the parameter name and rejection reason.
func (e *ParamValueError) InvalidValue() (string, string) { return e.Param, e.Reason }
