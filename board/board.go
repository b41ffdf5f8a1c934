// Package board holds the per-board constants the drivers derive settings
// from. The board is chosen at build time: BCM2711 (Raspberry Pi 4) unless the
// rpi3 tag is set.
package board

import "github.com/jangala-dev/tinygo-rpihal/gpio"

// Console pins shared by the Mini UART (ALT5) and the PL011 (ALT0).
const (
	UART_TX_PIN gpio.Pin = 14
	UART_RX_PIN gpio.Pin = 15
)

// Default console speed.
const DefaultBaudRate = 115200
