//go:build !rpi3

package board

import "github.com/jangala-dev/tinygo-rpihal/gpio"

const Name = "rpi4"

const (
	// CoreClockHz feeds the Mini UART baud generator. The firmware default
	// core_freq is assumed; enable_uart=1 pins it.
	CoreClockHz = 250_000_000
	// UARTClockHz feeds the PL011 (init_uart_clock).
	UARTClockHz = 48_000_000
)

// LED is the green ACT LED.
const LED gpio.Pin = 42
