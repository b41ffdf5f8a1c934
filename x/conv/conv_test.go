package conv

import (
	"math"
	"testing"
)

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{115200, "115200"},
		{math.MaxUint64, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q want %q", c.n, got, c.want)
		}
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("Utoa into empty buf = %q", got)
	}
}

func TestItoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{-1, "-1"},
		{-250000000, "-250000000"},
		{42, "42"},
	} {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q want %q", c.n, got, c.want)
		}
	}
}

func TestU32Hex(t *testing.T) {
	var buf [8]byte
	if got := string(U32Hex(buf[:], 0xFE215040)); got != "FE215040" {
		t.Fatalf("got %q", got)
	}
	if got := string(U32Hex(buf[:], 0x1a)); got != "0000001A" {
		t.Fatalf("got %q", got)
	}
	if got := U32Hex(buf[:4], 1); len(got) != 0 {
		t.Fatalf("short buffer should yield empty, got %q", got)
	}
}

func TestHex(t *testing.T) {
	var buf [16]byte
	for _, c := range []struct {
		n     uint64
		upper bool
		want  string
	}{
		{0, false, "0"},
		{0x301, false, "301"},
		{0xbeef, true, "BEEF"},
		{math.MaxUint64, false, "ffffffffffffffff"},
	} {
		if got := string(Hex(buf[:], c.n, c.upper)); got != c.want {
			t.Fatalf("Hex(%#x) = %q want %q", c.n, got, c.want)
		}
	}
}
