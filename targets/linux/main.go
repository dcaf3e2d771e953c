//go:build linux

// Command blink_main runs the blink command on a Linux board, as the shell
// command of the same name does on BL602 firmware.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"blinky/cli"
	"blinky/core"
	"blinky/platform/linux"
)

var (
	backend = flag.String("backend", "gpiocdev", "GPIO backend: gpiocdev or rpio")
	chip    = flag.String("chip", "gpiochip0", "GPIO chip for the gpiocdev backend")
	tickHz  = flag.Uint("tick-hz", linux.DefaultTickHz, "Emulated RTOS tick rate")
	debug   = flag.Bool("debug", false, "Enable debug output")
)

func main() {
	flag.Parse()

	log := zap.NewNop()
	if *debug {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()
	linux.SetLogger(log.Named("hal"))

	seqLog := log.Named("blink").Sugar()
	core.SetDebugWriter(func(s string) { seqLog.Debug(s) })
	core.SetDebugEnabled(*debug)

	cfg := linux.DefaultConfig(os.Stdout)
	cfg.Backend = *backend
	cfg.Chip = *chip
	cfg.TickHz = uint32(*tickHz)

	hal, err := linux.NewHAL(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	args := append([]string{"blink_main"}, flag.Args()...)
	buf, n, argc, argv := cli.CArgs(strings.Join(args, " "), args)
	log.Debug("invoking",
		zap.String("line", cli.GoString(buf, int(n)+1)),
		zap.String("command", cli.Arg(argv, argc, 0)),
		zap.Int32("argc", argc))

	// returns only on success; a halt parks this process until it is killed
	core.BlinkMain(hal, buf, n, argc, argv)

	if err := hal.Close(); err != nil {
		log.Warn("release gpio", zap.Error(err))
	}
}
