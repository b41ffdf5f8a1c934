// Package console is the print/println shim over the console UART. Lines end
// in CRLF so serial terminals return the carriage.
//
// The UART must be initialised (uartx.Init) before anything is printed.
// Nothing checks this; output before then is lost.
package console

import (
	"io"

	"github.com/jangala-dev/tinygo-rpihal/uartx"
	"github.com/jangala-dev/tinygo-rpihal/x/conv"
	"github.com/jangala-dev/tinygo-rpihal/x/fmtx"
)

// EOL terminates every Println line.
const EOL = "\r\n"

// Logger writes formatted text to Out. Write errors are dropped.
type Logger struct {
	Out io.Writer
}

// Default prints to the selected console UART.
var Default = &Logger{Out: uartx.Default}

func (l *Logger) write(p []byte) { _, _ = l.Out.Write(p) }

func (l *Logger) writeString(s string) { _, _ = io.WriteString(l.Out, s) }

// Print writes the operands as fmt.Print would.
func (l *Logger) Print(a ...any) { _, _ = fmtx.Fprint(l.Out, a...) }

// Printf writes formatted output with no line ending added.
func (l *Logger) Printf(format string, a ...any) {
	var buf [128]byte
	l.write(fmtx.Appendf(buf[:0], format, a...))
}

// Println writes the operands separated by spaces, then CRLF.
func (l *Logger) Println(a ...any) {
	for i, v := range a {
		if i > 0 {
			l.writeString(" ")
		}
		l.Print(v)
	}
	l.writeString(EOL)
}

// Hex32 writes "name = 0xXXXXXXXX" and CRLF without going through the
// formatter.
func (l *Logger) Hex32(name string, v uint32) {
	var buf [8]byte
	l.writeString(name)
	l.writeString(" = 0x")
	l.write(conv.U32Hex(buf[:], v))
	l.writeString(EOL)
}

func Print(a ...any)                 { Default.Print(a...) }
func Printf(format string, a ...any) { Default.Printf(format, a...) }
func Println(a ...any)               { Default.Println(a...) }
func Hex32(name string, v uint32)    { Default.Hex32(name, v) }
