//go:build linux

package linux

import (
	"fmt"
	"io"

	"blinky/core"
)

// Backend is a GPIO implementation that holds kernel or register resources.
type Backend interface {
	core.GPIO
	Close() error
}

// HAL combines a console, a tick clock and a GPIO backend.
type HAL struct {
	Console
	TickClock
	Backend
}

var _ core.HAL = (*HAL)(nil)

// Config selects and configures the pieces of a HAL
type Config struct {
	Backend string // "gpiocdev" or "rpio"
	Chip    string // gpiocdev chip name
	TickHz  uint32
	Out     io.Writer
}

// DefaultConfig returns the gpiocdev configuration for gpiochip0
func DefaultConfig(out io.Writer) *Config {
	return &Config{
		Backend: "gpiocdev",
		Chip:    "gpiochip0",
		TickHz:  DefaultTickHz,
		Out:     out,
	}
}

// NewHAL builds a HAL from cfg. Nothing touches the hardware until the
// first EnableOutput.
func NewHAL(cfg *Config) (*HAL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Out == nil {
		return nil, fmt.Errorf("config has no console writer")
	}

	var b Backend
	switch cfg.Backend {
	case "gpiocdev", "":
		b = NewCdevGPIO(cfg.Chip)
	case "rpio":
		b = NewRPIOGPIO()
	default:
		return nil, fmt.Errorf("unknown gpio backend %q", cfg.Backend)
	}

	return &HAL{
		Console:   Console{W: cfg.Out},
		TickClock: TickClock{Hz: cfg.TickHz},
		Backend:   b,
	}, nil
}
