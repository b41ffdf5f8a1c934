//go:build rpi3

package board

import "github.com/jangala-dev/tinygo-rpihal/gpio"

const Name = "rpi3"

const (
	CoreClockHz = 250_000_000
	UARTClockHz = 48_000_000
)

// LED is the ACT LED of the Zero 2 W. Pi 3 boards drive theirs through the
// firmware GPIO expander, which this HAL does not reach.
const LED gpio.Pin = 29
