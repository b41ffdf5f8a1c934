// Package errcode holds the small set of error codes the HAL can report.
// Hardware is assumed present, so these only surface from bounded waits,
// rejected configuration and user-supplied pin numbers.
package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

const (
	OK            Code = "ok"
	Timeout       Code = "timeout"
	InvalidParams Code = "invalid_params"
	UnknownPin    Code = "unknown_pin"
	Unsupported   Code = "unsupported"

	Error Code = "error" // generic fallback
)

// E keeps the operation and a detail message alongside a code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
