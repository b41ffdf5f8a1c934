//go:build !baremetal

// Package sim models the console UARTs on top of in-memory register blocks
// so host tests can drive the real driver code. A model taps the data and
// status registers of one block: received bytes are queued with Receive,
// transmitted bytes are collected in Sent, and the transmitter can be held
// full or busy for a number of status polls.
package sim

import (
	"fmt"
	"sync"
)

// line is the state shared by both models.
type line struct {
	mu      sync.Mutex
	rx      FIFO
	sent    []byte
	overrun bool

	stall int // status polls left reporting "no room"
	busy  int // status polls left reporting "room, still shifting"

	trace  bool
	events []string

	untaps []func()
}

// txState is what the next status poll reports, consuming one stall or busy
// credit.
type txState uint8

const (
	txIdle txState = iota
	txBusy
	txFull
)

func (l *line) pollTx() txState {
	s := txIdle
	switch {
	case l.stall > 0:
		l.stall--
		s = txFull
	case l.busy > 0:
		l.busy--
		s = txBusy
	}
	if l.trace {
		l.events = append(l.events, [...]string{"tx-idle", "tx-busy", "tx-full"}[s])
	}
	return s
}

func (l *line) put(b byte) {
	l.sent = append(l.sent, b)
	if l.trace {
		l.events = append(l.events, fmt.Sprintf("put %q", b))
	}
}

// Receive queues bytes as if they arrived on RX. Bytes that do not fit are
// dropped and latch the overrun flag.
func (l *line) Receive(bs ...byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range bs {
		if !l.rx.Put(b) {
			l.overrun = true
		}
	}
}

// ReceiveString is Receive for a string.
func (l *line) ReceiveString(s string) { l.Receive([]byte(s)...) }

// Pending returns how many received bytes the driver has not read yet.
func (l *line) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rx.Used()
}

// Sent returns a copy of every byte written to the data register.
func (l *line) Sent() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]byte(nil), l.sent...)
}

// ResetSent forgets the bytes transmitted so far.
func (l *line) ResetSent() {
	l.mu.Lock()
	l.sent = l.sent[:0]
	l.mu.Unlock()
}

// StallTx makes the next n status polls report a full transmitter.
func (l *line) StallTx(n int) {
	l.mu.Lock()
	l.stall = n
	l.mu.Unlock()
}

// BusyTx makes the next n status polls (after any stall) report room in the
// FIFO but the shifter still active.
func (l *line) BusyTx(n int) {
	l.mu.Lock()
	l.busy = n
	l.mu.Unlock()
}

// Trace starts recording transmitter polls and writes as events.
func (l *line) Trace() {
	l.mu.Lock()
	l.trace = true
	l.events = l.events[:0]
	l.mu.Unlock()
}

// Events returns the recorded trace: "tx-full", "tx-busy", "tx-idle" for
// each status poll and "put 'c'" for each transmitted byte.
func (l *line) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// Detach removes the model's register taps. The block keeps its last
// stored values.
func (l *line) Detach() {
	for _, u := range l.untaps {
		u()
	}
	l.untaps = nil
}
