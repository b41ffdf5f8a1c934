//go:build rpi3

package regs

// PeripheralBase is the BCM2837 (Raspberry Pi 2/3/Zero 2) peripheral window.
const PeripheralBase = 0x3F00_0000
