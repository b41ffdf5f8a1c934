//go:build !baremetal

package sim

import "github.com/jangala-dev/tinygo-rpihal/regs"

// MiniRxDepth is the receive FIFO depth of the auxiliary UART.
const MiniRxDepth = 8

// MiniUART models AUX_MU_IO, LSR, STAT and the FIFO-clear bits of IIR.
type MiniUART struct {
	line
	aux *regs.AuxBlock
}

// AttachMini taps aux and returns the model. Call Detach when done.
func AttachMini(aux *regs.AuxBlock) *MiniUART {
	m := &MiniUART{aux: aux}
	m.rx = NewFIFO(MiniRxDepth)
	mu := &aux.MU
	m.untaps = append(m.untaps,
		regs.Tap(&mu.IO, regs.Hook{Read: m.readIO, Write: m.writeIO}),
		regs.Tap(&mu.LSR, regs.Hook{Read: m.readLSR}),
		regs.Tap(&mu.STAT, regs.Hook{Read: m.readSTAT}),
		regs.Tap(&mu.IIR, regs.Hook{Write: m.writeIIR}),
	)
	return m
}

func (m *MiniUART) readIO() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, _ := m.rx.Get()
	return uint32(b)
}

func (m *MiniUART) writeIO(v uint32) {
	m.mu.Lock()
	m.put(byte(v))
	m.mu.Unlock()
}

func (m *MiniUART) readLSR() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var v uint32
	switch m.pollTx() {
	case txIdle:
		v |= regs.MU_LSR_TX_EMPTY | regs.MU_LSR_TX_IDLE
	case txBusy:
		v |= regs.MU_LSR_TX_EMPTY
	}
	if !m.rx.Empty() {
		v |= regs.MU_LSR_DATA_READY
	}
	if m.overrun {
		v |= regs.MU_LSR_RX_OVERRUN
		m.overrun = false
	}
	return v
}

func (m *MiniUART) readSTAT() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint32(m.rx.Used()) << regs.MU_STAT_RX_LEVEL_Pos
}

func (m *MiniUART) writeIIR(v uint32) {
	if v&regs.MU_IIR_CLEAR_RX == 0 {
		return
	}
	m.mu.Lock()
	m.rx.Clear()
	m.mu.Unlock()
}
