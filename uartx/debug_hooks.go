//go:build uartxdebug

package uartx

import (
	"sync/atomic"

	"github.com/jangala-dev/tinygo-rpihal/x/fmtx"
)

// Stats holds counters since the last reset.
type Stats struct {
	// Transmit side
	TxWaits   uint32 // polls that found the transmitter full
	IdleWaits uint32 // polls in Flush that found the transmitter busy
	Timeouts  uint32 // WriteByte/Flush calls that hit the spin limit

	// Line editor
	RxIdlePolls   uint32 // ReadLine polls with nothing received
	Erases        uint32 // backspace/DEL that removed a byte
	LineOverflows uint32 // lines cut at buffer capacity
}

func (s Stats) String() string {
	return fmtx.Sprintf("txwait=%d idlewait=%d timeout=%d rxidle=%d erase=%d overflow=%d",
		s.TxWaits, s.IdleWaits, s.Timeouts, s.RxIdlePolls, s.Erases, s.LineOverflows)
}

func (u *UART) DebugReset() {
	u.stats = Stats{}
}

func (u *UART) DebugStats() Stats {
	return Stats{
		TxWaits:       atomic.LoadUint32(&u.stats.TxWaits),
		IdleWaits:     atomic.LoadUint32(&u.stats.IdleWaits),
		Timeouts:      atomic.LoadUint32(&u.stats.Timeouts),
		RxIdlePolls:   atomic.LoadUint32(&u.stats.RxIdlePolls),
		Erases:        atomic.LoadUint32(&u.stats.Erases),
		LineOverflows: atomic.LoadUint32(&u.stats.LineOverflows),
	}
}

func (u *UART) dbgWait(w waitFor) {
	if w == waitTxIdle {
		atomic.AddUint32(&u.stats.IdleWaits, 1)
		return
	}
	atomic.AddUint32(&u.stats.TxWaits, 1)
}

func (u *UART) dbgTimeout()  { atomic.AddUint32(&u.stats.Timeouts, 1) }
func (u *UART) dbgIdle()     { atomic.AddUint32(&u.stats.RxIdlePolls, 1) }
func (u *UART) dbgErase()    { atomic.AddUint32(&u.stats.Erases, 1) }
func (u *UART) dbgOverflow() { atomic.AddUint32(&u.stats.LineOverflows, 1) }
