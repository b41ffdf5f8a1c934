// Package shell is a line monitor over the console UART. It reads edited
// lines with the UART's line editor, splits them with shell quoting rules and
// runs a small fixed set of board commands.
package shell

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/jangala-dev/tinygo-rpihal/console"
	"github.com/jangala-dev/tinygo-rpihal/errcode"
	"github.com/jangala-dev/tinygo-rpihal/gpio"
	"github.com/jangala-dev/tinygo-rpihal/uartx"
)

// Prompt is printed before every line read.
const Prompt = "> "

// Shell runs commands read from UART. GPIO is the block pin and led act on.
type Shell struct {
	UART *uartx.UART
	GPIO *gpio.Controller
	LED  gpio.Pin

	out   *console.Logger
	ledOn bool
	line  [128]byte
}

// New returns a shell on u. The LED pin is switched to output on first use.
func New(u *uartx.UART, pins *gpio.Controller, led gpio.Pin) *Shell {
	return &Shell{UART: u, GPIO: pins, LED: led, out: &console.Logger{Out: u}}
}

// Run prompts, reads and executes lines until ctx is done. Command errors are
// printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.out.Print(Prompt)
		n, err := s.UART.ReadLineContext(ctx, s.line[:])
		s.out.Println()
		if err != nil {
			return err
		}
		if err := s.Exec(string(s.line[:n])); err != nil {
			s.out.Println("error:", err)
		}
	}
}

// Exec runs one command line. Blank lines are ignored.
func (s *Shell) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "shell", Msg: err.Error(), Err: err}
	}
	if len(args) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case cmdHelp:
		return s.help(args[1:])
	case cmdEcho:
		s.out.Println(strings.Join(args[1:], " "))
		return nil
	case cmdLED:
		return s.led(args[1:])
	case cmdPin:
		return s.pin(args[1:])
	case cmdRegs:
		s.UART.Dump(s.out.Hex32)
		return nil
	case cmdUART:
		s.out.Printf("uart: %s ready=%t buffered=%d\r\n", s.UART.Kind(), s.UART.IsDataReady(), s.UART.Buffered())
		return nil
	default:
		return &errcode.E{C: errcode.Unsupported, Op: "shell", Msg: "unknown command " + strconv.Quote(cmd)}
	}
}

func (s *Shell) help(args []string) error {
	if len(args) > 0 {
		txt, ok := help[strings.ToLower(args[0])]
		if !ok {
			return &errcode.E{C: errcode.Unsupported, Op: "help", Msg: "no help for " + args[0]}
		}
		s.out.Println(txt)
		return nil
	}
	for _, c := range commandList {
		s.out.Printf("%s\t%s\r\n", c, help[c])
	}
	return nil
}

func usage(cmd string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: cmd, Msg: help[cmd]}
}

func (s *Shell) led(args []string) error {
	if len(args) != 1 {
		return usage(cmdLED)
	}
	switch args[0] {
	case "on":
		s.ledOn = true
	case "off":
		s.ledOn = false
	case "toggle":
		s.ledOn = !s.ledOn
	default:
		return usage(cmdLED)
	}
	s.GPIO.SetOutput(s.LED)
	s.GPIO.Set(s.LED, s.ledOn)
	return nil
}

func (s *Shell) pin(args []string) error {
	if len(args) != 2 {
		return usage(cmdPin)
	}
	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: cmdPin, Msg: "bad pin number " + strconv.Quote(args[0]), Err: err}
	}
	p := gpio.Pin(n)
	if err := s.GPIO.Check(p); err != nil {
		return &errcode.E{C: errcode.UnknownPin, Op: cmdPin, Msg: "no GPIO " + args[0], Err: err}
	}

	switch args[1] {
	case "out":
		s.GPIO.SetOutput(p)
	case "in":
		s.GPIO.SetInput(p)
	case "high":
		s.GPIO.SetHigh(p)
	case "low":
		s.GPIO.SetLow(p)
	case "get":
		level := 0
		if s.GPIO.Get(p) {
			level = 1
		}
		s.out.Printf("pin %d (%s) = %d\r\n", n, s.GPIO.Function(p), level)
	default:
		return usage(cmdPin)
	}
	return nil
}
