// uartx/miniuart.go

package uartx

import (
	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/errcode"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
	"github.com/jangala-dev/tinygo-rpihal/regs"
)

// MiniUART is the auxiliary UART1. Its baud clock is the VPU core clock, so
// the rate drifts if the firmware scales core_freq. A nil GPIO means
// gpio.Default.
type MiniUART struct {
	Aux  *regs.AuxBlock
	GPIO *gpio.Controller
}

var _ Engine = (*MiniUART)(nil)

// miniDivisor returns the AUX_MU_BAUD value for baud at clk:
// baud = clk / (8 * (div + 1)).
func miniDivisor(clk, baud uint32) (uint32, error) {
	q := uint64(clk) / (8 * uint64(baud))
	if q == 0 || q-1 > regs.MU_BAUD_MAX {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "uartx.MiniUART.Configure", Msg: "baud divisor out of range"}
	}
	return uint32(q - 1), nil
}

func (m *MiniUART) Configure(cfg Config) error {
	cfg = cfg.withDefaults(board.CoreClockHz)
	div, err := miniDivisor(cfg.ClockHz, cfg.BaudRate)
	if err != nil {
		return err
	}

	// 1) Pins: TXD1/RXD1 live on ALT5.
	pins := pinsOr(m.GPIO)
	pins.SetFunction(cfg.TX, gpio.Alt5)
	pins.SetFunction(cfg.RX, gpio.Alt5)

	// 2) Enable the block, then program it with TX/RX held off.
	mu := &m.Aux.MU
	m.Aux.ENABLES.SetBits(regs.AUX_ENABLES_MINIUART)
	mu.CNTL.Set(0)
	mu.IER.Set(0)
	mu.LCR.Set(regs.MU_LCR_DATA_8BIT)
	mu.MCR.Set(0)
	mu.BAUD.Set(div)

	// 3) Enable TX/RX and drop anything left in the FIFOs.
	mu.CNTL.Set(regs.MU_CNTL_RX_ENABLE | regs.MU_CNTL_TX_ENABLE)
	mu.IIR.Set(regs.MU_IIR_CLEAR_RX | regs.MU_IIR_CLEAR_TX)
	return nil
}

func (m *MiniUART) TxReady() bool { return m.Aux.MU.LSR.HasBits(regs.MU_LSR_TX_EMPTY) }
func (m *MiniUART) TxIdle() bool  { return m.Aux.MU.LSR.HasBits(regs.MU_LSR_TX_IDLE) }
func (m *MiniUART) Put(c byte)    { m.Aux.MU.IO.Set(uint32(c)) }
func (m *MiniUART) RxReady() bool { return m.Aux.MU.LSR.HasBits(regs.MU_LSR_DATA_READY) }
func (m *MiniUART) Get() byte     { return byte(m.Aux.MU.IO.Get()) }

// Buffered reads the receive FIFO level (0..8) from STAT.
func (m *MiniUART) Buffered() int {
	return int(m.Aux.MU.STAT.Get() >> regs.MU_STAT_RX_LEVEL_Pos & regs.MU_STAT_RX_LEVEL_Msk)
}

func (m *MiniUART) Dump(fn func(name string, v uint32)) {
	mu := &m.Aux.MU
	fn("AUX_ENABLES", m.Aux.ENABLES.Get())
	fn("MU_IER", mu.IER.Get())
	fn("MU_LCR", mu.LCR.Get())
	fn("MU_MCR", mu.MCR.Get())
	fn("MU_LSR", mu.LSR.Get())
	fn("MU_CNTL", mu.CNTL.Get())
	fn("MU_STAT", mu.STAT.Get())
	fn("MU_BAUD", mu.BAUD.Get())
}
