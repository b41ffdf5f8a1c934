package regs

// PL011Block is the ARM PrimeCell UART (UART0), offsets from UART0Base.
type PL011Block struct {
	DR     Register32 // 0x00 data
	RSRECR Register32 // 0x04 receive status / error clear
	_      [4]uint32  // 0x08..0x14
	FR     Register32 // 0x18 flags, read-only
	_      uint32     // 0x1C
	ILPR   Register32 // 0x20 IrDA low-power counter (unused)
	IBRD   Register32 // 0x24 integer baud divisor
	FBRD   Register32 // 0x28 fractional baud divisor
	LCRH   Register32 // 0x2C line control
	CR     Register32 // 0x30 control
	IFLS   Register32 // 0x34 FIFO level select
	IMSC   Register32 // 0x38 interrupt mask set/clear
	RIS    Register32 // 0x3C raw interrupt status
	MIS    Register32 // 0x40 masked interrupt status
	ICR    Register32 // 0x44 interrupt clear
	DMACR  Register32 // 0x48 DMA control
}

const (
	OffUART_DR     = 0x00
	OffUART_RSRECR = 0x04
	OffUART_FR     = 0x18
	OffUART_ILPR   = 0x20
	OffUART_IBRD   = 0x24
	OffUART_FBRD   = 0x28
	OffUART_LCRH   = 0x2C
	OffUART_CR     = 0x30
	OffUART_IFLS   = 0x34
	OffUART_IMSC   = 0x38
	OffUART_RIS    = 0x3C
	OffUART_MIS    = 0x40
	OffUART_ICR    = 0x44
	OffUART_DMACR  = 0x48

	SizePL011Block = 0x4C
)

// PL011 bits.
const (
	PL011_DR_DATA_Msk = 0xFF

	PL011_FR_BUSY = 1 << 3
	PL011_FR_RXFE = 1 << 4
	PL011_FR_TXFF = 1 << 5
	PL011_FR_RXFF = 1 << 6
	PL011_FR_TXFE = 1 << 7

	PL011_LCRH_FEN    = 1 << 4
	PL011_LCRH_WLEN_8 = 3 << 5

	PL011_CR_UARTEN = 1 << 0
	PL011_CR_TXE    = 1 << 8
	PL011_CR_RXE    = 1 << 9

	PL011_ICR_ALL = 0x7FF

	PL011_IBRD_MAX = 0xFFFF
	PL011_FBRD_Msk = 0x3F
)
