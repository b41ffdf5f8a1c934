//go:build !baremetal

package sim

import "github.com/jangala-dev/tinygo-rpihal/regs"

// PL011RxDepth is the receive FIFO depth of the PL011.
const PL011RxDepth = 16

// PL011 models UART_DR and UART_FR.
type PL011 struct {
	line
	bus *regs.PL011Block
}

// AttachPL011 taps bus and returns the model. Call Detach when done.
func AttachPL011(bus *regs.PL011Block) *PL011 {
	p := &PL011{bus: bus}
	p.rx = NewFIFO(PL011RxDepth)
	p.untaps = append(p.untaps,
		regs.Tap(&bus.DR, regs.Hook{Read: p.readDR, Write: p.writeDR}),
		regs.Tap(&bus.FR, regs.Hook{Read: p.readFR}),
	)
	return p
}

func (p *PL011) readDR() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, _ := p.rx.Get()
	return uint32(b)
}

func (p *PL011) writeDR(v uint32) {
	p.mu.Lock()
	p.put(byte(v))
	p.mu.Unlock()
}

func (p *PL011) readFR() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	var v uint32
	switch p.pollTx() {
	case txIdle:
		v |= regs.PL011_FR_TXFE
	case txBusy:
		v |= regs.PL011_FR_TXFE | regs.PL011_FR_BUSY
	case txFull:
		v |= regs.PL011_FR_TXFF | regs.PL011_FR_BUSY
	}
	switch {
	case p.rx.Empty():
		v |= regs.PL011_FR_RXFE
	case p.rx.Full():
		v |= regs.PL011_FR_RXFF
	}
	return v
}
