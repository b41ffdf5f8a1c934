// uartx/export.go

package uartx

import (
	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
)

type Pin = gpio.Pin

const (
	NoPin       = gpio.NoPin
	UART_TX_PIN = board.UART_TX_PIN
	UART_RX_PIN = board.UART_RX_PIN
)
