// uartx/pl011.go

package uartx

import (
	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
	"github.com/jangala-dev/tinygo-rpihal/regs"
)

// PL011 is the ARM PrimeCell UART0. It runs from the fixed UART reference
// clock and keeps its rate when the core clock is scaled. A nil GPIO means
// gpio.Default.
type PL011 struct {
	Bus  *regs.PL011Block
	GPIO *gpio.Controller
}

var _ Engine = (*PL011)(nil)

// pl011Divisors splits clk/(16*baud) into the 16-bit integer part and the
// rounded 6-bit fraction.
func pl011Divisors(clk, baud uint32) (ibrd, fbrd uint32) {
	div := uint32(8 * uint64(clk) / uint64(baud))
	ibrd = div >> 7
	fbrd = ((div & 0x7f) + 1) / 2
	switch {
	case ibrd == 0:
		ibrd, fbrd = 1, 0
	case ibrd >= regs.PL011_IBRD_MAX:
		ibrd, fbrd = regs.PL011_IBRD_MAX, 0
	}
	return ibrd, fbrd & regs.PL011_FBRD_Msk
}

func (p *PL011) Configure(cfg Config) error {
	cfg = cfg.withDefaults(board.UARTClockHz)
	ibrd, fbrd := pl011Divisors(cfg.ClockHz, cfg.BaudRate)

	// 1) Pins: TXD0/RXD0 live on ALT0.
	pins := pinsOr(p.GPIO)
	pins.SetFunction(cfg.TX, gpio.Alt0)
	pins.SetFunction(cfg.RX, gpio.Alt0)

	// 2) Disable and quiesce before touching the divisors.
	p.Bus.CR.Set(0)
	p.Bus.ICR.Set(regs.PL011_ICR_ALL)
	p.Bus.IMSC.Set(0)

	// 3) Divisors only latch on the LCRH write that follows.
	p.Bus.IBRD.Set(ibrd)
	p.Bus.FBRD.Set(fbrd)
	p.Bus.LCRH.Set(regs.PL011_LCRH_WLEN_8 | regs.PL011_LCRH_FEN)

	p.Bus.CR.Set(regs.PL011_CR_UARTEN | regs.PL011_CR_TXE | regs.PL011_CR_RXE)
	return nil
}

func (p *PL011) TxReady() bool { return !p.Bus.FR.HasBits(regs.PL011_FR_TXFF) }

func (p *PL011) TxIdle() bool {
	fr := p.Bus.FR.Get()
	return fr&regs.PL011_FR_TXFE != 0 && fr&regs.PL011_FR_BUSY == 0
}

func (p *PL011) Put(c byte)    { p.Bus.DR.Set(uint32(c)) }
func (p *PL011) RxReady() bool { return !p.Bus.FR.HasBits(regs.PL011_FR_RXFE) }
func (p *PL011) Get() byte     { return byte(p.Bus.DR.Get() & regs.PL011_DR_DATA_Msk) }

// Buffered reports 1 when anything is pending. The PL011 has no FIFO level
// register, so this is a lower bound.
func (p *PL011) Buffered() int {
	if p.RxReady() {
		return 1
	}
	return 0
}

func (p *PL011) Dump(fn func(name string, v uint32)) {
	fn("UART_FR", p.Bus.FR.Get())
	fn("UART_IBRD", p.Bus.IBRD.Get())
	fn("UART_FBRD", p.Bus.FBRD.Get())
	fn("UART_LCRH", p.Bus.LCRH.Get())
	fn("UART_CR", p.Bus.CR.Get())
	fn("UART_IMSC", p.Bus.IMSC.Get())
	fn("UART_RIS", p.Bus.RIS.Get())
}
