//go:build !baremetal

package main

import (
	"errors"
	"io"
	"time"
)

// escape ends an interactive session (Ctrl-]).
const escape = 0x1d

// errEscape is returned by bridge when the user typed the escape byte.
var errEscape = errors.New("escape")

// bridge copies remote to out in the background and in to remote until in
// ends or carries the escape byte. A clean escape returns nil.
func bridge(in io.Reader, out io.Writer, remote io.ReadWriter) error {
	rerr := make(chan error, 1)
	go func() {
		_, err := io.Copy(out, remote)
		rerr <- err
	}()

	werr := make(chan error, 1)
	go func() {
		werr <- forward(remote, in)
	}()

	select {
	case err := <-werr:
		if errors.Is(err, errEscape) {
			return nil
		}
		return err
	case err := <-rerr:
		if err == nil {
			err = io.EOF
		}
		return err
	}
}

// forward copies in to w, stopping before the escape byte.
func forward(w io.Writer, in io.Reader) error {
	var buf [64]byte
	for {
		n, err := in.Read(buf[:])
		for i := 0; i < n; i++ {
			if buf[i] == escape {
				if _, werr := w.Write(buf[:i]); werr != nil {
					return werr
				}
				return errEscape
			}
		}
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			return err
		}
	}
}

// runOnce sends line with a CR, then copies whatever arrives to out until
// wait passes.
func runOnce(remote io.ReadWriter, out io.Writer, line string, wait time.Duration) error {
	if _, err := io.WriteString(remote, line+"\r"); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(out, remote)
		done <- err
	}()
	select {
	case err := <-done:
		if err == io.EOF {
			return nil
		}
		return err
	case <-time.After(wait):
		return nil
	}
}
