//go:build !wasm

package serial

import (
	"errors"
	"fmt"

	"github.com/tarm/serial"
)

// uartPort is a Port backed by a tarm/serial handle
type uartPort struct {
	*serial.Port
	device string
}

// Open opens the console described by cfg.
func Open(cfg *Config) (Port, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("serial: nil config")
	case cfg.Device == "":
		return nil, errors.New("serial: no device")
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open console %s: %w", cfg.Device, err)
	}
	return &uartPort{Port: p, device: cfg.Device}, nil
}

func (p *uartPort) String() string { return p.device }
