// Package gpio drives the BCM GPIO block: pin function selection and output
// levels. It has no state beyond the register block it is pointed at.
package gpio

import (
	"github.com/jangala-dev/tinygo-rpihal/errcode"
	"github.com/jangala-dev/tinygo-rpihal/regs"
	"github.com/jangala-dev/tinygo-rpihal/x/bitx"
)

// Pin is a GPIO number.
type Pin uint8

const (
	MaxPin Pin = 53
	NoPin  Pin = 0xFF
)

// Valid reports whether p names a pin on the header/SoC.
func (p Pin) Valid() bool { return p <= MaxPin }

// Function is the 3-bit function-select code of a pin.
type Function uint8

const (
	Input  Function = 0b000
	Output Function = 0b001
	Alt0   Function = 0b100
	Alt1   Function = 0b101
	Alt2   Function = 0b110
	Alt3   Function = 0b111
	Alt4   Function = 0b011
	Alt5   Function = 0b010
)

func (f Function) String() string {
	switch f {
	case Input:
		return "in"
	case Output:
		return "out"
	case Alt0:
		return "alt0"
	case Alt1:
		return "alt1"
	case Alt2:
		return "alt2"
	case Alt3:
		return "alt3"
	case Alt4:
		return "alt4"
	case Alt5:
		return "alt5"
	default:
		return "invalid"
	}
}

// Controller is a GPIO block. Bus must not be nil.
type Controller struct {
	Bus *regs.GPIOBlock
}

// Default drives the board's GPIO block.
var Default = &Controller{Bus: regs.GPIO}

// fsel locates the function-select register and bit position for p.
// ok is false when p has no register in the modeled set.
func (c *Controller) fsel(p Pin) (r *regs.Register32, pos uint8, ok bool) {
	if !p.Valid() {
		return nil, 0, false
	}
	idx := int(p) / regs.GPFSEL_PINS
	if idx >= len(c.Bus.GPFSEL) {
		return nil, 0, false
	}
	return &c.Bus.GPFSEL[idx], uint8(int(p)%regs.GPFSEL_PINS) * regs.GPFSEL_WIDTH, true
}

// SetFunction clears p's function-select field and sets it to fn in a single
// read-modify-write. Pins outside the modeled registers are ignored.
func (c *Controller) SetFunction(p Pin, fn Function) {
	r, pos, ok := c.fsel(p)
	if !ok {
		return
	}
	r.Set(bitx.WithField(r.Get(), pos, regs.GPFSEL_WIDTH, uint32(fn)))
}

// Function returns the current function of p (Input for unknown pins).
func (c *Controller) Function(p Pin) Function {
	r, pos, ok := c.fsel(p)
	if !ok {
		return Input
	}
	return Function(bitx.Field(r.Get(), pos, regs.GPFSEL_WIDTH))
}

// SetOutput configures p as an output.
func (c *Controller) SetOutput(p Pin) { c.SetFunction(p, Output) }

// SetInput configures p as an input.
func (c *Controller) SetInput(p Pin) { c.SetFunction(p, Input) }

// SetHigh drives p high. GPSET is write-1-to-set, so there is no read.
func (c *Controller) SetHigh(p Pin) {
	if !p.Valid() {
		return
	}
	c.Bus.GPSET[p/32].Set(1 << (p % 32))
}

// SetLow drives p low through GPCLR.
func (c *Controller) SetLow(p Pin) {
	if !p.Valid() {
		return
	}
	c.Bus.GPCLR[p/32].Set(1 << (p % 32))
}

// Set drives p to level.
func (c *Controller) Set(p Pin, level bool) {
	if level {
		c.SetHigh(p)
	} else {
		c.SetLow(p)
	}
}

// Get returns the pin level from GPLEV.
func (c *Controller) Get(p Pin) bool {
	if !p.Valid() {
		return false
	}
	return bitx.IsSet(c.Bus.GPLEV[p/32].Get(), uint8(p%32))
}

// Check returns errcode.UnknownPin for pins the controller ignores.
func (c *Controller) Check(p Pin) error {
	if _, _, ok := c.fsel(p); !ok {
		return errcode.UnknownPin
	}
	return nil
}
