package gpio

import (
	"testing"

	"github.com/jangala-dev/tinygo-rpihal/errcode"
	"github.com/jangala-dev/tinygo-rpihal/regs"
)

// newTestController returns a controller over a fresh in-memory block.
func newTestController() (*Controller, *regs.GPIOBlock) {
	b := &regs.GPIOBlock{}
	return &Controller{Bus: b}, b
}

// recordWrites taps r and returns a pointer to the list of stored values.
func recordWrites(t *testing.T, r *regs.Register32) *[]uint32 {
	t.Helper()
	var w []uint32
	untap := regs.Tap(r, regs.Hook{Write: func(v uint32) { w = append(w, v) }})
	t.Cleanup(untap)
	return &w
}

func TestSetOutputHighLow(t *testing.T) {
	for _, c := range []struct {
		pin  Pin
		fsel int
		pos  uint
		bank int
		bit  uint32
	}{
		{pin: 21, fsel: 2, pos: 3, bank: 0, bit: 1 << 21},
		{pin: 31, fsel: 3, pos: 3, bank: 0, bit: 1 << 31},
		{pin: 32, fsel: 3, pos: 6, bank: 1, bit: 1 << 0},
		{pin: 42, fsel: 4, pos: 6, bank: 1, bit: 1 << 10},
	} {
		ctl, b := newTestController()
		set := recordWrites(t, &b.GPSET[c.bank])
		clr := recordWrites(t, &b.GPCLR[c.bank])

		ctl.SetOutput(c.pin)
		if got := b.GPFSEL[c.fsel].Get() >> c.pos & 0x7; got != uint32(Output) {
			t.Fatalf("pin %d: fsel field = %03b, want 001", c.pin, got)
		}
		if ctl.Function(c.pin) != Output {
			t.Fatalf("pin %d: Function() = %v", c.pin, ctl.Function(c.pin))
		}

		ctl.SetHigh(c.pin)
		ctl.SetLow(c.pin)
		if len(*set) != 1 || (*set)[0] != c.bit {
			t.Fatalf("pin %d: GPSET%d writes = %x, want [%x]", c.pin, c.bank, *set, c.bit)
		}
		if len(*clr) != 1 || (*clr)[0] != c.bit {
			t.Fatalf("pin %d: GPCLR%d writes = %x, want [%x]", c.pin, c.bank, *clr, c.bit)
		}
		other := 1 - c.bank
		if b.GPSET[other].Get() != 0 || b.GPCLR[other].Get() != 0 {
			t.Fatalf("pin %d touched bank %d", c.pin, other)
		}
	}
}

func TestSetFunctionPreservesNeighbours(t *testing.T) {
	ctl, b := newTestController()
	b.GPFSEL[1].Set(0xFFFF_FFFF)

	ctl.SetFunction(14, Alt5)
	ctl.SetFunction(15, Alt0)

	// Bits 12..14 = 010, bits 15..17 = 100, everything else untouched.
	const want = 0xFFFE_2FFF
	if got := b.GPFSEL[1].Get(); got != want {
		t.Fatalf("GPFSEL1 = 0x%08x, want 0x%08x", got, uint32(want))
	}
	if ctl.Function(14) != Alt5 || ctl.Function(15) != Alt0 {
		t.Fatalf("functions = %v/%v", ctl.Function(14), ctl.Function(15))
	}
}

func TestLastPinStaysInsideFSEL5(t *testing.T) {
	ctl, b := newTestController()
	ctl.SetOutput(53)
	if got := b.GPFSEL[5].Get(); got != uint32(Output)<<9 {
		t.Fatalf("GPFSEL5 = 0x%08x, want 0x%08x", got, uint32(Output)<<9)
	}
	for i := 0; i < 5; i++ {
		if b.GPFSEL[i].Get() != 0 {
			t.Fatalf("GPFSEL%d written for pin 53", i)
		}
	}
}

func TestPinsPastTheEndAreIgnored(t *testing.T) {
	for _, p := range []Pin{54, 59, 60, 63, 64, 200, NoPin} {
		ctl, b := newTestController()
		ctl.SetOutput(p)
		ctl.SetHigh(p)
		ctl.SetLow(p)
		if ctl.Get(p) {
			t.Fatalf("pin %d: Get should be false", p)
		}
		if *b != (regs.GPIOBlock{}) {
			t.Fatalf("pin %d: block modified: %+v", p, b)
		}
		if err := ctl.Check(p); err != errcode.UnknownPin {
			t.Fatalf("pin %d: Check = %v", p, err)
		}
	}
}

func TestGetReadsLevel(t *testing.T) {
	ctl, b := newTestController()
	b.GPLEV[0].Set(1 << 4)
	b.GPLEV[1].Set(1 << (47 - 32))
	if !ctl.Get(4) || ctl.Get(5) || !ctl.Get(47) || ctl.Get(46) {
		t.Fatal("level bits mismatch")
	}
	if ctl.Check(47) != nil {
		t.Fatal("pin 47 should be valid")
	}
}

func TestSetLevel(t *testing.T) {
	ctl, b := newTestController()
	ctl.Set(3, true)
	if b.GPSET[0].Get() != 1<<3 {
		t.Fatal("Set(true) should write GPSET0")
	}
	ctl.Set(3, false)
	if b.GPCLR[0].Get() != 1<<3 {
		t.Fatal("Set(false) should write GPCLR0")
	}
}

func TestFunctionString(t *testing.T) {
	if Output.String() != "out" || Alt5.String() != "alt5" || Function(9).String() != "invalid" {
		t.Fatal("Function.String mapping changed")
	}
}
