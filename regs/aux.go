package regs

// AuxBlock is the auxiliary peripheral block shared by the Mini UART and the
// two auxiliary SPI masters, offsets from AuxBase. Only the Mini UART is
// modeled past the common IRQ/ENABLES pair.
type AuxBlock struct {
	IRQ     Register32 // 0x00
	ENABLES Register32 // 0x04
	_       [14]uint32 // 0x08..0x3C
	MU      MiniUARTBlock
}

// MiniUARTBlock is the Mini UART register file. It starts at AuxBase+0x40.
// The first eight registers follow the 16550 layout.
type MiniUARTBlock struct {
	IO      Register32 // 0x40 data (FIFO)
	IER     Register32 // 0x44 interrupt enable
	IIR     Register32 // 0x48 interrupt identify / FIFO clear
	LCR     Register32 // 0x4C line control
	MCR     Register32 // 0x50 modem control
	LSR     Register32 // 0x54 line status, read-only
	MSR     Register32 // 0x58 modem status, read-only
	SCRATCH Register32 // 0x5C
	CNTL    Register32 // 0x60 extra control
	STAT    Register32 // 0x64 extra status
	BAUD    Register32 // 0x68 baud rate divisor
}

const (
	OffAUX_IRQ     = 0x00
	OffAUX_ENABLES = 0x04
	OffAUX_MU      = 0x40

	OffMU_IO      = 0x40
	OffMU_IER     = 0x44
	OffMU_IIR     = 0x48
	OffMU_LCR     = 0x4C
	OffMU_MCR     = 0x50
	OffMU_LSR     = 0x54
	OffMU_MSR     = 0x58
	OffMU_SCRATCH = 0x5C
	OffMU_CNTL    = 0x60
	OffMU_STAT    = 0x64
	OffMU_BAUD    = 0x68

	SizeAuxBlock = 0x6C
)

// AUX_ENABLES bits.
const (
	AUX_ENABLES_MINIUART = 1 << 0
	AUX_ENABLES_SPI1     = 1 << 1
	AUX_ENABLES_SPI2     = 1 << 2
)

// Mini UART bits.
const (
	MU_IIR_CLEAR_RX = 1 << 1 // write: clear receive FIFO
	MU_IIR_CLEAR_TX = 1 << 2 // write: clear transmit FIFO

	// BCM2835 errata: bit 1 must be set as well for true 8-bit operation.
	MU_LCR_DATA_8BIT = 0x3

	MU_LSR_DATA_READY = 1 << 0
	MU_LSR_RX_OVERRUN = 1 << 1
	MU_LSR_TX_EMPTY   = 1 << 5 // room for at least one byte
	MU_LSR_TX_IDLE    = 1 << 6 // FIFO empty and shifter done

	MU_CNTL_RX_ENABLE = 1 << 0
	MU_CNTL_TX_ENABLE = 1 << 1

	MU_STAT_RX_LEVEL_Pos = 16
	MU_STAT_RX_LEVEL_Msk = 0xF
	MU_STAT_TX_LEVEL_Pos = 24
	MU_STAT_TX_LEVEL_Msk = 0xF

	MU_BAUD_MAX = 0xFFFF
)
