// regs/blocks_baremetal.go
//go:build baremetal

package regs

import "unsafe"

// Fixed views onto the peripherals. They are never allocated or freed.
var (
	GPIO  = (*GPIOBlock)(unsafe.Pointer(uintptr(GPIOBase)))
	AUX   = (*AuxBlock)(unsafe.Pointer(uintptr(AuxBase)))
	UART0 = (*PL011Block)(unsafe.Pointer(uintptr(UART0Base)))
)
