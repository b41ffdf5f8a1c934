//go:build baremetal

// Command uart_diag dumps the console UART registers before and after
// configuration, reports the baud rate the divisors actually produce, then
// runs a short self-test. For the loopback step, jumper GPIO 14 to GPIO 15;
// without the jumper that step is skipped rather than failed.
package main

import (
	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/console"
	"github.com/jangala-dev/tinygo-rpihal/regs"
	"github.com/jangala-dev/tinygo-rpihal/uartx"
)

const (
	spinLimit  = 1 << 20
	rxPolls    = 1 << 18
	blinkDelay = 400_000
)

var u = uartx.Default

func report(title string) {
	console.Println("-----------------------------")
	console.Println(title)
	u.Dump(console.Hex32)
}

// actualBaud derives the rate the programmed divisors produce.
func actualBaud() uint32 {
	switch u.Kind() {
	case uartx.KindMini:
		return board.CoreClockHz / (8 * (regs.AUX.MU.BAUD.Get() + 1))
	default:
		// baud = clk / (16 * (IBRD + FBRD/64)), scaled by 64 and rounded.
		div := uint64(regs.UART0.IBRD.Get())*64 + uint64(regs.UART0.FBRD.Get())
		if div == 0 {
			return 0
		}
		den := 16 * div
		return uint32((uint64(board.UARTClockHz)*64 + den/2) / den)
	}
}

func drain() {
	for {
		if _, ok := u.TryReadByte(); !ok {
			return
		}
	}
}

// recvPolled waits a bounded number of polls for one byte.
func recvPolled() (byte, bool) {
	for i := 0; i < rxPolls; i++ {
		if b, ok := u.TryReadByte(); ok {
			return b, true
		}
	}
	return 0, false
}

func ledBlink(times int) {
	board.LED.SetOutput()
	for i := 0; i < times; i++ {
		board.LED.High()
		board.Spin(blinkDelay)
		board.LED.Low()
		board.Spin(blinkDelay)
	}
}

func main() {
	// Registers first, while the firmware's setup is still in place. Nothing
	// can be printed yet, so take a snapshot.
	var before [16]struct {
		name string
		v    uint32
	}
	n := 0
	u.Dump(func(name string, v uint32) {
		if n < len(before) {
			before[n].name, before[n].v = name, v
			n++
		}
	})

	if err := u.Configure(uartx.Config{SpinLimit: spinLimit}); err != nil {
		// No console to complain on.
		for {
			ledBlink(1)
			board.Spin(4 * blinkDelay)
		}
	}

	console.Println()
	console.Println("uart_diag on", board.Name, "engine", u.Kind().String())
	console.Println("-----------------------------")
	console.Println("Before configure:")
	for i := 0; i < n; i++ {
		console.Hex32(before[i].name, before[i].v)
	}
	report("After Configure():")
	console.Println("requested baud:", board.DefaultBaudRate, "actual:", actualBaud())

	pass, fail, skip := 0, 0, 0
	run := func(name string, f func() string) {
		console.Println()
		console.Println("[Test]", name)
		switch msg := f(); msg {
		case "":
			console.Println("  PASS")
			pass++
		case "skip":
			console.Println("  SKIP")
			skip++
		default:
			console.Println("  FAIL:", msg)
			fail++
		}
	}

	run("transmitter drains", func() string {
		if _, err := u.WriteString("UUUUUUUU\r\n"); err != nil {
			return "write: " + err.Error()
		}
		if err := u.Flush(); err != nil {
			return "flush: " + err.Error()
		}
		if !u.TxReady() || !u.TxIdle() {
			return "not idle after flush"
		}
		return ""
	})

	run("loopback GPIO14->GPIO15", func() string {
		drain()
		const probe = "rpihal"
		got := 0
		for i := 0; i < len(probe); i++ {
			if err := u.WriteByte(probe[i]); err != nil {
				return "write: " + err.Error()
			}
			b, ok := recvPolled()
			if !ok {
				if i == 0 {
					return "skip"
				}
				return "lost byte"
			}
			if b != probe[i] {
				return "mismatch"
			}
			got++
		}
		console.Println("  echoed", got, "bytes")
		return ""
	})

	if st := u.DebugStats().String(); st != "" {
		console.Println("  stats:", st)
	}

	console.Println()
	console.Println("Summary")
	console.Println("  passed =", pass)
	console.Println("  failed =", fail)
	console.Println("  skipped =", skip)
	_ = u.Flush()

	if fail == 0 {
		ledBlink(3)
	}
	for {
		ledBlink(1)
		board.Spin(2 * blinkDelay)
	}
}
