// Package fmtx is a fmt subset for code that runs on the board. Host builds
// forward to fmt. Device builds use a compact formatter that supports
// %s %q %d %x %X %c %t %v and %%, the '0' flag, width, and precision for %s.
package fmtx

import (
	"reflect"
	"unicode/utf8"

	"github.com/jangala-dev/tinygo-rpihal/x/conv"
)

type builder struct{ buf []byte }

func (b *builder) byte(c byte)    { b.buf = append(b.buf, c) }
func (b *builder) bytes(p []byte) { b.buf = append(b.buf, p...) }
func (b *builder) str(s string)   { b.buf = append(b.buf, s...) }

func (b *builder) pad(n int, c byte) {
	for ; n > 0; n-- {
		b.byte(c)
	}
}

// appendFormat formats like fmt.Appendf for the supported subset.
func appendFormat(dst []byte, format string, args ...any) []byte {
	b := builder{buf: dst}
	b.format(format, args...)
	return b.buf
}

// appendPrint formats like fmt.Append: operands are space-separated when
// neither side is a string.
func appendPrint(dst []byte, args ...any) []byte {
	b := builder{buf: dst}
	for i, v := range args {
		if i > 0 && !isString(v) && !isString(args[i-1]) {
			b.byte(' ')
		}
		b.value(v)
	}
	return b.buf
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// intArg returns the magnitude and sign of an integer operand.
func intArg(v any) (u uint64, neg, ok bool) {
	var i int64
	switch x := v.(type) {
	case int:
		i = int64(x)
	case int8:
		i = int64(x)
	case int16:
		i = int64(x)
	case int32:
		i = int64(x)
	case int64:
		i = x
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case uintptr:
		return uint64(x), false, true
	default:
		// Named integer types (pins, codes) have no case above.
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = rv.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return rv.Uint(), false, true
		default:
			return 0, false, false
		}
	}
	if i < 0 {
		return uint64(-i), true, true
	}
	return uint64(i), false, true
}

func (b *builder) value(v any) {
	switch x := v.(type) {
	case nil:
		b.str("<nil>")
	case string:
		b.str(x)
	case []byte:
		b.bytes(x)
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	case error:
		b.str(x.Error())
	case interface{ String() string }:
		b.str(x.String())
	default:
		if u, neg, ok := intArg(v); ok {
			b.number(u, neg, 'd', 0, false)
			return
		}
		b.str("<unk>")
	}
}

func (b *builder) number(u uint64, neg bool, verb byte, width int, zero bool) {
	var tmp [20]byte
	var digits []byte
	switch verb {
	case 'x':
		digits = conv.Hex(tmp[:], u, false)
	case 'X':
		digits = conv.Hex(tmp[:], u, true)
	default:
		digits = conv.Utoa(tmp[:], u)
	}
	n := len(digits)
	if neg {
		n++
	}
	if !zero {
		b.pad(width-n, ' ')
	}
	if neg {
		b.byte('-')
	}
	if zero {
		b.pad(width-n, '0')
	}
	b.bytes(digits)
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.byte(format[i])
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.byte('%')
			i++
			continue
		}
		zero := false
		if i < len(format) && format[i] == '0' {
			zero = true
			i++
		}
		width, prec, hasPrec := 0, 0, false
		i = parseNum(format, i, &width)
		if i < len(format) && format[i] == '.' {
			i++
			hasPrec = true
			i = parseNum(format, i, &prec)
		}
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's', 'q':
			var s string
			switch v := arg.(type) {
			case string:
				s = v
			case []byte:
				s = string(v)
			default:
				b.value(arg)
				continue
			}
			if hasPrec && prec < len(s) {
				s = s[:prec]
			}
			if verb == 'q' {
				s = quote(s)
			}
			b.pad(width-utf8.RuneCountInString(s), ' ')
			b.str(s)
		case 'd', 'x', 'X':
			u, neg, ok := intArg(arg)
			if !ok {
				b.value(arg)
				continue
			}
			b.number(u, neg, verb, width, zero)
		case 'c':
			u, _, ok := intArg(arg)
			if !ok {
				b.value(arg)
				continue
			}
			b.buf = utf8.AppendRune(b.buf, rune(u))
		case 't':
			if v, ok := arg.(bool); ok && v {
				b.str("true")
			} else {
				b.str("false")
			}
		case 'v':
			b.value(arg)
		default:
			// Unknown verb: write it literally to aid debugging.
			b.byte('%')
			b.byte(verb)
		}
	}
}

func parseNum(s string, i int, out *int) int {
	n := 0
	start := i
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i > start {
		*out = n
	}
	return i
}

// quote is a minimal %q: escapes backslash, quotes and common control
// characters and keeps everything else as-is.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '"':
			out = append(out, '\\', c)
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\b':
			out = append(out, '\\', 'b')
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}
