// Package regs describes the BCM2711/BCM2837 peripheral register blocks used by
// this HAL: GPIO, the auxiliary block with its Mini UART, and the PL011 UART0.
//
// Each block is a struct whose field order and padding reproduce the hardware
// offset table, so a pointer to the block placed on the peripheral's base
// address is a complete view of it. On baremetal builds the fixed accessors
// (GPIO, AUX, UART0) point at physical memory; on host builds they point at
// zeroed in-memory blocks.
package regs

// GPIOBlock is the GPIO controller, offsets from GPIOBase.
type GPIOBlock struct {
	GPFSEL [6]Register32 // 0x00..0x14, 10 pins per register, 3 bits per pin
	_      uint32        // 0x18
	GPSET  [2]Register32 // 0x1C, 0x20 (write 1 to drive high)
	_      uint32        // 0x24
	GPCLR  [2]Register32 // 0x28, 0x2C (write 1 to drive low)
	_      uint32        // 0x30
	GPLEV  [2]Register32 // 0x34, 0x38
}

const (
	OffGPFSEL0 = 0x00
	OffGPFSEL5 = 0x14
	OffGPSET0  = 0x1C
	OffGPSET1  = 0x20
	OffGPCLR0  = 0x28
	OffGPCLR1  = 0x2C
	OffGPLEV0  = 0x34
	OffGPLEV1  = 0x38

	SizeGPIOBlock = 0x3C
)

const (
	GPFSEL_PINS  = 10 // pins per function-select register
	GPFSEL_WIDTH = 3  // bits per pin
	GPFSEL_MASK  = 0x7
)
