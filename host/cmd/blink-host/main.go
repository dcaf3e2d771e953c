// Command blink-host runs the blink command on a board over its serial
// console and reports whether it completed or halted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"blinky/host/serial"
	"blinky/host/shell"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", serial.DefaultBaud, "Console baud rate")
	command = flag.String("command", "blink_main", "Shell command to run")
	prompt  = flag.String("prompt", shell.DefaultPrompt, "Shell prompt that marks completion")
	timeout = flag.Duration("timeout", 15*time.Second, "Give up after this long")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

// Exit codes
const (
	exitOK       = 0
	exitHalted   = 1
	exitTimeout  = 2
	exitError    = 3
	exitNoBanner = 4
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			return exitError
		}
	}
	defer log.Sync()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	log.Info("opening console", zap.String("device", cfg.Device), zap.Int("baud", cfg.Baud))
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	defer port.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sess := shell.NewSession(port, shell.WithPrompt(*prompt), shell.WithLogger(log))
	rep, err := sess.Invoke(ctx, *command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	for _, line := range rep.Lines() {
		fmt.Println(line)
	}
	fmt.Printf("result=%s banner=%t elapsed=%s\n", rep.Result, rep.Banner, rep.Elapsed.Round(time.Millisecond))

	return exitCode(rep.Result)
}

func exitCode(r shell.Result) int {
	switch r {
	case shell.ResultOK:
		return exitOK
	case shell.ResultHalted:
		return exitHalted
	case shell.ResultNoBanner:
		return exitNoBanner
	default:
		return exitTimeout
	}
}
