package regs

// Physical addresses of the modeled blocks (ARM side, low peripheral mode).
const (
	GPIOBase  = PeripheralBase + 0x20_0000
	UART0Base = PeripheralBase + 0x20_1000
	AuxBase   = PeripheralBase + 0x21_5000
)
