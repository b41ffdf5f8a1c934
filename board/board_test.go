package board

import (
	"testing"

	"github.com/jangala-dev/tinygo-rpihal/regs"
)

func TestConsolePinsAndClocks(t *testing.T) {
	if UART_TX_PIN != 14 || UART_RX_PIN != 15 {
		t.Fatalf("console pins %d/%d want 14/15", UART_TX_PIN, UART_RX_PIN)
	}
	// 115200 must be reachable by both engines.
	if CoreClockHz/(8*DefaultBaudRate)-1 != 270 {
		t.Fatalf("mini divisor %d want 270", CoreClockHz/(8*DefaultBaudRate)-1)
	}
	if UARTClockHz*8/DefaultBaudRate>>7 != 26 {
		t.Fatal("PL011 integer divisor changed")
	}
	if !LED.Valid() {
		t.Fatalf("LED pin %d out of range", LED)
	}
}

func TestSpinReadsGPIO(t *testing.T) {
	reads := 0
	untap := regs.Tap(&regs.GPIO.GPLEV[0], regs.Hook{Read: func() uint32 { reads++; return 0 }})
	defer untap()
	Spin(10)
	if reads != 10 {
		t.Fatalf("reads=%d want 10", reads)
	}
}
