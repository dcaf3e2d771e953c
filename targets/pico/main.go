//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"blinky/cli"
	"blinky/core"
)

func main() {
	// Allow USB CDC to enumerate before we print
	time.Sleep(2 * time.Second)

	hal := NewPicoHAL()

	fh := core.NewFaultHandler(hal)
	fh.SetPark(func() {}) // spin until reset
	core.InstallFaultHandler(fh)

	core.SetDebugWriter(core.ConsoleDebugWriter(hal))

	shell := cli.New(machine.Serial)
	shell.Register("blink_main", "Run blink", func(buf *byte, length, argc int32, argv **byte) {
		core.BlinkMain(hal, buf, length, argc, argv)
	})
	shell.Register("debug", "debug output: on, off or toggle", func(_ *byte, _, argc int32, argv **byte) {
		switch cli.Arg(argv, argc, 1) {
		case "on":
			core.SetDebugEnabled(true)
		case "off":
			core.SetDebugEnabled(false)
		default:
			core.SetDebugEnabled(!core.IsDebugEnabled())
		}
	})
	shell.Start()

	for {
		if machine.Serial.Buffered() == 0 {
			// Yield to avoid a busy loop
			time.Sleep(1 * time.Millisecond)
			continue
		}
		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}
		shell.Feed(b)
	}
}
