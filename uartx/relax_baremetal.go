//go:build baremetal

package uartx

func relax() {}
