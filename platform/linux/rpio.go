//go:build linux

package linux

import (
	"github.com/stianeikeland/go-rpio/v4"
	"go.uber.org/zap"
)

// maxBCMPin is the highest BCM GPIO number on the BCM283x family
const maxBCMPin = 53

// RPIOGPIO drives BCM GPIO numbers through /dev/gpiomem register access.
type RPIOGPIO struct {
	opened bool
	pins   map[uint8]rpio.Pin
}

// NewRPIOGPIO creates a backend; the register mapping is opened on first use.
func NewRPIOGPIO() *RPIOGPIO {
	return &RPIOGPIO{pins: make(map[uint8]rpio.Pin)}
}

// EnableOutput switches the pin to output and applies the pull setting.
func (g *RPIOGPIO) EnableOutput(pin, pullup, pulldown uint8) int32 {
	if pin > maxBCMPin || pullup > 1 || pulldown > 1 || (pullup == 1 && pulldown == 1) {
		return statusInvalid
	}
	if !g.opened {
		if err := rpio.Open(); err != nil {
			Logger().Warn("gpio memory map failed", zap.Error(err))
			return statusOf(err)
		}
		g.opened = true
	}

	p := rpio.Pin(pin)
	p.Output()
	switch {
	case pullup == 1:
		p.PullUp()
	case pulldown == 1:
		p.PullDown()
	default:
		p.PullOff()
	}
	g.pins[pin] = p
	Logger().Debug("pin output", zap.Uint8("bcm", pin))
	return 0
}

// OutputSet writes value to a pin configured by EnableOutput.
func (g *RPIOGPIO) OutputSet(pin, value uint8) int32 {
	p, ok := g.pins[pin]
	if !ok {
		return statusNotReady
	}
	if value > 1 {
		return statusInvalid
	}
	p.Write(rpio.State(value))
	return 0
}

// Close reverts configured pins to input and unmaps the registers.
func (g *RPIOGPIO) Close() error {
	if !g.opened {
		return nil
	}
	for pin, p := range g.pins {
		p.Input()
		delete(g.pins, pin)
	}
	g.opened = false
	return rpio.Close()
}
