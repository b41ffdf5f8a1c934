//go:build !baremetal

package main

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakePort reads from r (blocking forever when r is nil) and records writes.
type fakePort struct {
	r  io.Reader
	mu sync.Mutex
	w  bytes.Buffer
}

func (p *fakePort) Read(b []byte) (int, error) {
	if p.r == nil {
		select {}
	}
	return p.r.Read(b)
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w.Write(b)
}

func (p *fakePort) written() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w.String()
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) { select {} }

func TestBridgeStopsAtEscape(t *testing.T) {
	remote := &fakePort{}
	var out bytes.Buffer
	if err := bridge(strings.NewReader("led on\r\x1dignored"), &out, remote); err != nil {
		t.Fatalf("bridge: %v", err)
	}
	if got := remote.written(); got != "led on\r" {
		t.Fatalf("sent %q", got)
	}
}

func TestBridgeReturnsWhenRemoteCloses(t *testing.T) {
	remote := &fakePort{r: strings.NewReader("> hello\r\n")}
	var out bytes.Buffer
	if err := bridge(blockingReader{}, &out, remote); err != io.EOF {
		t.Fatalf("bridge err=%v want EOF", err)
	}
	if out.String() != "> hello\r\n" {
		t.Fatalf("out %q", out.String())
	}
}

func TestForwardPassesInputEnd(t *testing.T) {
	var w bytes.Buffer
	if err := forward(&w, strings.NewReader("abc")); err != io.EOF {
		t.Fatalf("err=%v want EOF", err)
	}
	if w.String() != "abc" {
		t.Fatalf("forwarded %q", w.String())
	}
}

func TestRunOnce(t *testing.T) {
	remote := &fakePort{r: strings.NewReader("uart: pl011 ready=false buffered=0\r\n")}
	var out bytes.Buffer
	if err := runOnce(remote, &out, "uart", time.Second); err != nil {
		t.Fatal(err)
	}
	if remote.written() != "uart\r" {
		t.Fatalf("sent %q", remote.written())
	}
	if !strings.HasPrefix(out.String(), "uart: pl011") {
		t.Fatalf("reply %q", out.String())
	}
}

func TestRunOnceTimesOut(t *testing.T) {
	remote := &fakePort{}
	var out bytes.Buffer
	start := time.Now()
	if err := runOnce(remote, &out, "help", 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("runOnce did not honour the wait")
	}
}
