package board

import "github.com/jangala-dev/tinygo-rpihal/regs"

// Spin busy-waits for roughly n GPIO register reads. Each iteration is a
// volatile load, so the loop is never optimised away. The wall-clock length
// depends on the core and bus clocks.
func Spin(n int) {
	for i := 0; i < n; i++ {
		_ = regs.GPIO.GPLEV[0].Get()
	}
}
