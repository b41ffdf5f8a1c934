package bitx

import "testing"

var samples = []uint32{0, 1, 0x8000_0000, 0xFFFF_FFFF, 0xDEAD_BEEF, 0x0F0F_0F0F, 0x1234_5678}

func TestSetClearToggleLaws(t *testing.T) {
	for _, v := range samples {
		for n := uint8(0); n < 32; n++ {
			if got, want := Clear(Set(v, n), n), Clear(v, n); got != want {
				t.Fatalf("Clear(Set(0x%x,%d)) = 0x%x, want 0x%x", v, n, got, want)
			}
			if !IsSet(Set(v, n), n) {
				t.Fatalf("IsSet(Set(0x%x,%d)) = false", v, n)
			}
			if IsSet(Clear(v, n), n) {
				t.Fatalf("IsSet(Clear(0x%x,%d)) = true", v, n)
			}
			if got := Toggle(Toggle(v, n), n); got != v {
				t.Fatalf("Toggle twice of 0x%x bit %d = 0x%x", v, n, got)
			}
			want := uint8(0)
			if IsSet(v, n) {
				want = 1
			}
			if got := Read(v, n); got != want {
				t.Fatalf("Read(0x%x,%d) = %d, want %d", v, n, got, want)
			}
		}
	}
}

func TestSetIsOr(t *testing.T) {
	if got := Set(uint32(0b1000), 0); got != 0b1001 {
		t.Fatalf("Set got %b", got)
	}
	if got := Clear(uint32(0b1001), 3); got != 0b0001 {
		t.Fatalf("Clear got %b", got)
	}
	if got := Toggle(uint8(0xF0), 7); got != 0x70 {
		t.Fatalf("Toggle on uint8 got 0x%x", got)
	}
}

func TestFields(t *testing.T) {
	// GPFSEL1 with pin 14 = ALT5 (0b010) and pin 15 = ALT0 (0b100).
	v := WithField(uint32(0), 12, 3, 0b010)
	v = WithField(v, 15, 3, 0b100)
	if v != 0x0002_2000 {
		t.Fatalf("WithField got 0x%08x", v)
	}
	if got := Field(v, 12, 3); got != 0b010 {
		t.Fatalf("Field(12) got %b", got)
	}
	if got := Field(v, 15, 3); got != 0b100 {
		t.Fatalf("Field(15) got %b", got)
	}
	if got := WithField(uint32(0xFFFF_FFFF), 0, 3, 0xFF); got != 0xFFFF_FFFF {
		t.Fatalf("WithField must drop excess bits, got 0x%08x", got)
	}
	if Mask[uint32](3) != 7 || Mask[uint16](16) != 0xFFFF {
		t.Fatal("Mask mismatch")
	}
}
