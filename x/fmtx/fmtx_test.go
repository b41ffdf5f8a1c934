package fmtx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type level uint8

type named struct{}

func (named) String() string { return "named" }

func TestAppendFormatMatchesFmt(t *testing.T) {
	type C struct {
		fmt  string
		args []any
	}
	for _, c := range []C{
		{"hello %s", []any{"world"}},
		{"num %d hex %x HEX %X", []any{255, 255, 255}},
		{"neg %d %x", []any{-42, -255}},
		{"pad [%5d] [%05d]", []any{42, -42}},
		{"reg 0x%08x", []any{uint32(0x301)}},
		{"bool %t %t", []any{true, false}},
		{"literal %%", nil},
		{"q=%q", []any{"a\"b\\c\r\n"}},
		{"v=%v %v %v", []any{123, "s", false}},
		{"trim: %.3s|%6s|", []any{"abcdef", "ab"}},
		{"char %c%c", []any{'o', byte('k')}},
		{"named %d %v", []any{level(14), named{}}},
		{"err: %v", []any{errors.New("boom")}},
		{"nil %v", []any{nil}},
		{"u64 %d", []any{uint64(1) << 63}},
	} {
		want := fmt.Sprintf(c.fmt, c.args...)
		got := string(appendFormat(nil, c.fmt, c.args...))
		if got != want {
			t.Fatalf("appendFormat(%q) = %q, want %q", c.fmt, got, want)
		}
	}
}

func TestAppendFormatKeepsPrefix(t *testing.T) {
	got := appendFormat([]byte("> "), "%d", 5)
	if string(got) != "> 5" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendFormatMissingArgsStop(t *testing.T) {
	if got := string(appendFormat(nil, "a=%d b=%d", 1)); got != "a=1 b=" {
		t.Fatalf("got %q", got)
	}
	if got := string(appendFormat(nil, "odd %y", 1)); got != "odd %y" {
		t.Fatalf("unknown verb: got %q", got)
	}
}

func TestAppendPrintMatchesFmt(t *testing.T) {
	for _, args := range [][]any{
		{"a", 1, true},
		{1, 2, "x", 3},
		{"GPIO", level(42), "=", true},
	} {
		want := fmt.Sprint(args...)
		if got := string(appendPrint(nil, args...)); got != want {
			t.Fatalf("appendPrint(%v) = %q, want %q", args, got, want)
		}
	}
}

func TestHostFrontEnd(t *testing.T) {
	var sb strings.Builder
	if _, err := Fprintf(&sb, "hi %s", "there"); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "hi there" {
		t.Fatalf("Fprintf wrote %q", sb.String())
	}
	if err := Errorf("bad %s: %d", "thing", 3); err.Error() != "bad thing: 3" {
		t.Fatalf("Errorf = %q", err)
	}
	if got := string(Appendf([]byte("x"), "%d", 1)); got != "x1" {
		t.Fatalf("Appendf = %q", got)
	}
}
