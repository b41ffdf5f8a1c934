//go:build !rpi3

package regs

// PeripheralBase is the BCM2711 (Raspberry Pi 4) peripheral window.
const PeripheralBase = 0xFE00_0000
