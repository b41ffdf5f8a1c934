// regs/register_host.go
//go:build !baremetal

package regs

import (
	"sync"
	"sync/atomic"
)

// Register32 is the host stand-in for runtime/volatile.Register32. It has the
// same size and method set so block layouts and driver code are identical on
// both builds. Loads and stores are atomic, so the compiler never merges or
// elides them.
type Register32 struct {
	Reg uint32
}

// Hook attaches side effects to a single register. Read, when set, supplies
// the value returned by Get. Write, when set, observes every stored value;
// the value is stored either way.
type Hook struct {
	Read  func() uint32
	Write func(v uint32)
}

var (
	tapMu sync.RWMutex
	taps  map[*Register32]Hook
)

// Tap installs h on r and returns a function that removes it.
func Tap(r *Register32, h Hook) (untap func()) {
	tapMu.Lock()
	if taps == nil {
		taps = make(map[*Register32]Hook)
	}
	taps[r] = h
	tapMu.Unlock()
	return func() {
		tapMu.Lock()
		delete(taps, r)
		tapMu.Unlock()
	}
}

func hookFor(r *Register32) (Hook, bool) {
	tapMu.RLock()
	h, ok := taps[r]
	tapMu.RUnlock()
	return h, ok
}

// Get returns the value of the register.
func (r *Register32) Get() uint32 {
	if h, ok := hookFor(r); ok && h.Read != nil {
		return h.Read()
	}
	return atomic.LoadUint32(&r.Reg)
}

// Set stores value into the register.
func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
	if h, ok := hookFor(r); ok && h.Write != nil {
		h.Write(value)
	}
}

// SetBits reads the register, sets the given bits and writes it back.
func (r *Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits reads the register, clears the given bits and writes it back.
func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any of the given bits are set.
func (r *Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the field selected by mask at pos with value.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
