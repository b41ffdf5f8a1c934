// uartx/uartx.go

// Package uartx is a polled console UART for the Raspberry Pi. Two engines
// sit behind one front-end: the auxiliary Mini UART and the PL011 UART0. The
// engine is picked at build time (PL011 unless the miniuart tag is set) and
// both share the same write loop and line editor.
//
// There are no interrupts. WriteByte and Flush spin on status bits and, by
// default, wait forever if the hardware never reports ready; Config.SpinLimit
// bounds those waits. TryReadByte, Read and IsDataReady never block.
package uartx

import (
	"context"
	"errors"

	"github.com/jangala-dev/tinygo-rpihal/errcode"

	"tinygo.org/x/drivers"
)

// Flusher is implemented by types that can flush buffered output to the underlying device.
type Flusher interface{ Flush() error }

// ErrBufferEmpty is returned by ReadByte when no byte is pending.
var ErrBufferEmpty = errors.New("UART buffer empty")

var (
	_ drivers.UART = (*UART)(nil)
	_ Flusher      = (*UART)(nil)
)

// UART is the front-end shared by both engines. The embedded Engine provides
// the register-level primitives.
type UART struct {
	Engine
	kind      Kind
	spinLimit uint32 // 0 waits forever
	stats     Stats
}

// Kind reports which engine backs u.
func (u *UART) Kind() Kind { return u.kind }

// Init brings the UART up with the default configuration (115200 8N1 on
// GPIO 14/15). It must run before any output is attempted.
func (u *UART) Init() { _ = u.Configure(Config{}) }

// Configure muxes the pins and programs the engine. Calling it again
// reprograms the engine from scratch. A rejected cfg leaves the spin limit
// as it was.
func (u *UART) Configure(cfg Config) error {
	if err := u.Engine.Configure(cfg); err != nil {
		return err
	}
	u.spinLimit = cfg.SpinLimit
	return nil
}

// SetSpinLimit bounds the number of status polls WriteByte and Flush make
// before giving up with errcode.Timeout. Zero waits forever.
func (u *UART) SetSpinLimit(n uint32) { u.spinLimit = n }

type waitFor uint8

const (
	waitTxReady waitFor = iota
	waitTxIdle
)

// spin polls the engine until the condition holds. It returns false if the
// spin limit ran out first.
func (u *UART) spin(w waitFor) bool {
	for n := uint32(0); ; {
		var ok bool
		switch w {
		case waitTxReady:
			ok = u.TxReady()
		case waitTxIdle:
			ok = u.TxIdle()
		}
		if ok {
			return true
		}
		u.dbgWait(w)
		n++
		if u.spinLimit != 0 && n >= u.spinLimit {
			u.dbgTimeout()
			return false
		}
		relax()
	}
}

// WriteByte waits until the transmitter has room for one byte, then queues c.
func (u *UART) WriteByte(c byte) error {
	if !u.spin(waitTxReady) {
		return errcode.Timeout
	}
	u.Put(c)
	return nil
}

// Write implements io.Writer, one WriteByte per byte.
func (u *UART) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := u.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString implements io.StringWriter without converting s.
func (u *UART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := u.WriteByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Flush waits until the transmitter is completely idle: FIFO empty and the
// last stop bit shifted out.
func (u *UART) Flush() error {
	if !u.spin(waitTxIdle) {
		return errcode.Timeout
	}
	return nil
}

// IsDataReady reports whether a received byte is pending, without consuming it.
func (u *UART) IsDataReady() bool { return u.RxReady() }

// TryReadByte checks the receiver once and returns the pending byte, if any.
// It never blocks.
func (u *UART) TryReadByte() (byte, bool) {
	if !u.RxReady() {
		return 0, false
	}
	return u.Get(), true
}

// ReadByte is the io.ByteReader form of TryReadByte.
func (u *UART) ReadByte() (byte, error) {
	if b, ok := u.TryReadByte(); ok {
		return b, nil
	}
	return 0, ErrBufferEmpty
}

// Read copies whatever the receiver has pending into p and returns
// immediately. A return of 0, nil means no data now.
func (u *UART) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, ok := u.TryReadByte()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

// ReadLine reads an edited line into buf, echoing as it goes, and returns
// its length. The line ends at CR or LF, or when buf has room only for the
// terminator. Backspace and DEL remove the previous byte and erase it on the
// terminal. buf[n] is set to 0. ok is false only when buf is empty.
//
// ReadLine blocks until a line ends.
func (u *UART) ReadLine(buf []byte) (n int, ok bool) {
	n, err := u.readLine(nil, buf)
	return n, err == nil
}

// ReadLineContext is ReadLine that gives up when ctx is done. On
// cancellation the partial line is still terminated and its length returned
// with ctx.Err().
func (u *UART) ReadLineContext(ctx context.Context, buf []byte) (int, error) {
	return u.readLine(ctx, buf)
}

var errNoRoom = errors.New("line buffer has no room for the terminator")

func (u *UART) readLine(ctx context.Context, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, errNoRoom
	}
	pos := 0
	for pos < len(buf)-1 {
		b, ok := u.TryReadByte()
		if !ok {
			if ctx != nil {
				if err := pollDone(ctx); err != nil {
					buf[pos] = 0
					return pos, err
				}
			}
			u.dbgIdle()
			relax()
			continue
		}
		switch b {
		case '\r', '\n':
			buf[pos] = 0
			return pos, nil
		case '\b', 0x7F:
			if pos > 0 {
				pos--
				_, _ = u.WriteString("\b \b")
				u.dbgErase()
			}
		default:
			buf[pos] = b
			_ = u.WriteByte(b)
			pos++
		}
	}
	u.dbgOverflow()
	buf[pos] = 0
	return pos, nil
}
