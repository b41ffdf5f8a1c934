// regs/register_baremetal.go
//go:build baremetal

package regs

import "runtime/volatile"

// Register32 is a memory-mapped 32-bit register. Every method is a volatile
// load and/or store.
type Register32 = volatile.Register32
