// uartx/engine.go

package uartx

import (
	"github.com/jangala-dev/tinygo-rpihal/board"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
	"github.com/jangala-dev/tinygo-rpihal/regs"
)

// Kind names a serial engine.
type Kind uint8

const (
	KindCustom Kind = iota
	KindMini
	KindPL011
)

func (k Kind) String() string {
	switch k {
	case KindMini:
		return "mini"
	case KindPL011:
		return "pl011"
	default:
		return "custom"
	}
}

// Engine is the register-level half of a UART. Implementations do no
// waiting; the front-end owns every spin loop.
type Engine interface {
	// Configure muxes the pins and programs the engine from cfg.
	Configure(cfg Config) error
	// TxReady reports room for at least one byte in the transmit path.
	TxReady() bool
	// TxIdle reports that every queued byte has left the shift register.
	TxIdle() bool
	// Put writes one byte to the data register. TxReady must hold.
	Put(c byte)
	// RxReady reports a received byte pending.
	RxReady() bool
	// Get pops one received byte. RxReady must hold.
	Get() byte
	// Buffered is the number of received bytes the hardware reports.
	Buffered() int
	// Dump calls fn for each register worth showing in a diagnostic.
	Dump(fn func(name string, v uint32))
}

// Config holds UART settings. Zero fields take defaults.
type Config struct {
	BaudRate uint32   // 115200 when zero
	ClockHz  uint32   // engine input clock; board default when zero
	TX, RX   gpio.Pin // 14 and 15 respectively when zero
	// SpinLimit bounds status polls in WriteByte and Flush. Zero waits forever.
	SpinLimit uint32
}

func (cfg Config) withDefaults(clockHz uint32) Config {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = board.DefaultBaudRate
	}
	if cfg.ClockHz == 0 {
		cfg.ClockHz = clockHz
	}
	if cfg.TX == 0 {
		cfg.TX = board.UART_TX_PIN
	}
	if cfg.RX == 0 {
		cfg.RX = board.UART_RX_PIN
	}
	return cfg
}

func pinsOr(c *gpio.Controller) *gpio.Controller {
	if c == nil {
		return gpio.Default
	}
	return c
}

// Blocks are the register blocks a UART is built over.
type Blocks struct {
	GPIO  *regs.GPIOBlock
	Aux   *regs.AuxBlock
	UART0 *regs.PL011Block
}

// DefaultBlocks returns the board's fixed peripheral blocks.
func DefaultBlocks() Blocks {
	return Blocks{GPIO: regs.GPIO, Aux: regs.AUX, UART0: regs.UART0}
}

// New returns a front-end over the engine named by kind. KindCustom is
// treated as KindPL011.
func New(kind Kind, b Blocks) *UART {
	pins := &gpio.Controller{Bus: b.GPIO}
	if kind == KindMini {
		return &UART{Engine: &MiniUART{Aux: b.Aux, GPIO: pins}, kind: KindMini}
	}
	return &UART{Engine: &PL011{Bus: b.UART0, GPIO: pins}, kind: KindPL011}
}

// NewWithEngine wraps any Engine in the shared front-end. A MiniUART or PL011
// built without a GPIO controller muxes its pins through gpio.Default.
func NewWithEngine(e Engine) *UART {
	u := &UART{Engine: e}
	switch e.(type) {
	case *MiniUART:
		u.kind = KindMini
	case *PL011:
		u.kind = KindPL011
	}
	return u
}
