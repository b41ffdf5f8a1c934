//go:build !uartxdebug

package uartx

type Stats struct{}

func (Stats) String() string { return "" }

func (u *UART) DebugReset()       {}
func (u *UART) DebugStats() Stats { return Stats{} }

func (u *UART) dbgWait(waitFor) {}
func (u *UART) dbgTimeout()     {}
func (u *UART) dbgIdle()        {}
func (u *UART) dbgErase()       {}
func (u *UART) dbgOverflow()    {}
