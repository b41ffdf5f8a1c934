//go:build !baremetal

package uartx

import "runtime"

// relax yields between polls so host simulations driven from another
// goroutine make progress.
func relax() { runtime.Gosched() }
