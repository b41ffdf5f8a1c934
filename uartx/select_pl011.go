//go:build !miniuart

package uartx

// Selected is the engine behind Default.
const Selected = KindPL011
