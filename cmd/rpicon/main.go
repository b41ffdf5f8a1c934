//go:build !baremetal

// Command rpicon is a serial console for the board. It opens the USB-serial
// adapter wired to GPIO 14/15, puts the local terminal in raw mode and
// passes bytes both ways until Ctrl-] is typed.
//
//	rpicon -d /dev/ttyUSB0
//	rpicon -d /dev/ttyUSB0 -e "pin 42 get"
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/pkg/term"

	tty "github.com/mattn/go-tty"
)

var (
	devFlag  = flag.String("d", "/dev/ttyUSB0", "serial device wired to the board")
	baudFlag = flag.Int("b", 115200, "baud rate")
	execFlag = flag.String("e", "", "send one command line, print the reply and exit")
	waitFlag = flag.Duration("w", 500*time.Millisecond, "with -e, how long to wait for the reply")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rpicon: ")
	flag.Parse()

	serial, err := term.Open(*devFlag, term.Speed(*baudFlag), term.RawMode)
	if err != nil {
		log.Fatalf("open %s: %v", *devFlag, err)
	}
	defer serial.Close()

	if *execFlag != "" {
		if err := runOnce(serial, os.Stdout, *execFlag, *waitFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	local, err := tty.Open()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	defer local.Close()
	restore, err := local.Raw()
	if err != nil {
		log.Fatalf("raw mode: %v", err)
	}
	defer restore()

	log.Printf("connected to %s at %d baud, Ctrl-] to quit\r", *devFlag, *baudFlag)
	if err := bridge(local.Input(), local.Output(), serial); err != nil {
		log.Printf("%v\r", err)
	}
}
