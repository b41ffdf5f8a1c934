// Package bitx holds the bit primitives used on register values. They operate
// on plain values; when the value came from a live register, reading and
// writing it back is the caller's job.
package bitx

import "golang.org/x/exp/constraints"

// Set returns v with bit n set.
func Set[T constraints.Unsigned](v T, n uint8) T { return v | T(1)<<n }

// Clear returns v with bit n cleared.
func Clear[T constraints.Unsigned](v T, n uint8) T { return v &^ (T(1) << n) }

// Toggle returns v with bit n inverted.
func Toggle[T constraints.Unsigned](v T, n uint8) T { return v ^ T(1)<<n }

// IsSet reports whether bit n of v is set.
func IsSet[T constraints.Unsigned](v T, n uint8) bool { return v&(T(1)<<n) != 0 }

// Read returns bit n of v as 0 or 1.
func Read[T constraints.Unsigned](v T, n uint8) uint8 { return uint8(v >> n & 1) }

// Mask returns width low bits set.
func Mask[T constraints.Unsigned](width uint8) T { return T(1)<<width - 1 }

// Field extracts the width-bit field starting at pos.
func Field[T constraints.Unsigned](v T, pos, width uint8) T {
	return v >> pos & Mask[T](width)
}

// WithField returns v with the width-bit field at pos replaced by x.
// Bits of x above width are dropped.
func WithField[T constraints.Unsigned](v T, pos, width uint8, x T) T {
	m := Mask[T](width)
	return v&^(m<<pos) | (x&m)<<pos
}
