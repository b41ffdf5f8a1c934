//go:build baremetal

package fmtx

import "io"

func Sprintf(format string, a ...any) string { return string(appendFormat(nil, format, a...)) }

func Appendf(b []byte, format string, a ...any) []byte { return appendFormat(b, format, a...) }

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write(appendFormat(nil, format, a...))
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

func Sprint(a ...any) string { return string(appendPrint(nil, a...)) }

func Fprint(w io.Writer, a ...any) (int, error) { return w.Write(appendPrint(nil, a...)) }

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }
