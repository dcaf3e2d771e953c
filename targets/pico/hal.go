//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"blinky/core"
)

// TickHz is the emulated porting-layer tick rate (configTICK_RATE_HZ on BL602)
const TickHz = 1000

// Status codes returned by the pin calls, negated errno values
const (
	statusNoDev = -19 // pin used before EnableOutput
	statusInval = -22 // pin or value out of range
	statusIO    = -5  // console write failed
)

// PicoHAL implements core.HAL on an RP2040/RP2350 with TinyGo's machine package.
type PicoHAL struct {
	console machine.Serialer
	// Track configured pins so OutputSet can reject unconfigured ones
	configuredPins map[uint8]machine.Pin
}

// NewPicoHAL creates a HAL printing to the default serial console
func NewPicoHAL() *PicoHAL {
	return &PicoHAL{
		console:        machine.Serial,
		configuredPins: make(map[uint8]machine.Pin),
	}
}

// Puts writes the view without its terminator, followed by CRLF
func (h *PicoHAL) Puts(view []byte) int32 {
	n := len(view)
	if n == 0 || view[n-1] != 0 {
		return statusInval
	}
	if _, err := h.console.Write(view[:n-1]); err != nil {
		return statusIO
	}
	if _, err := h.console.Write([]byte("\r\n")); err != nil {
		return statusIO
	}
	return 0
}

// EnableOutput configures a pin as a digital output.
// TinyGo exposes no pull setting for outputs, so both pulls at once is the
// only flag combination rejected.
func (h *PicoHAL) EnableOutput(pin, pullup, pulldown uint8) int32 {
	if pin >= numPins || pullup > 1 || pulldown > 1 || (pullup == 1 && pulldown == 1) {
		return statusInval
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	h.configuredPins[pin] = p
	return 0
}

// OutputSet sets a configured pin high (1) or low (0)
func (h *PicoHAL) OutputSet(pin, value uint8) int32 {
	p, ok := h.configuredPins[pin]
	if !ok {
		return statusNoDev
	}
	if value > 1 {
		return statusInval
	}
	p.Set(value == 1)
	return 0
}

// MsToTicks32 converts milliseconds to TickHz ticks
func (h *PicoHAL) MsToTicks32(ms uint32) uint32 {
	return uint32(uint64(ms) * TickHz / 1000)
}

// Delay sleeps for the given number of ticks
func (h *PicoHAL) Delay(ticks uint32) {
	time.Sleep(time.Duration(ticks) * time.Second / TickHz)
}

var _ core.HAL = (*PicoHAL)(nil)
