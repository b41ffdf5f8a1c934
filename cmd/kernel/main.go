//go:build baremetal

// Command kernel is the board image: it brings up the console UART, blinks
// the ACT LED and hands the line to the monitor shell.
package main

import (
	"context"

	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/console"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
	"github.com/jangala-dev/tinygo-rpihal/internal/shell"
	"github.com/jangala-dev/tinygo-rpihal/uartx"
)

const blinkDelay = 1_000_000

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
	// Nothing may print before this.
	uartx.Init()

	console.Println()
	console.Println("rpihal", board.Name, "console on", uartx.Selected.String())
	console.Printf("baud %d, LED on GPIO %d\r\n", board.DefaultBaudRate, int(board.LED))
	console.Println("type 'help' for commands")

	ledBlink(3)

	sh := shell.New(uartx.Default, gpio.Default, board.LED)
	// Run does not return under a background context.
	err := sh.Run(context.Background())
	console.Println("shell exited:", err)
	for {
		ledBlink(1)
	}
}
