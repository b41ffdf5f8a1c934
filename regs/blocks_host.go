// regs/blocks_host.go
//go:build !baremetal

package regs

// Host builds have no peripherals; the fixed views point at zeroed memory so
// code written against them runs unchanged under go test.
var (
	GPIO  = &gpioMem
	AUX   = &auxMem
	UART0 = &uart0Mem

	gpioMem  GPIOBlock
	auxMem   AuxBlock
	uart0Mem PL011Block
)
