// Package serial opens the board's UART console from the host.
package serial

import (
	"io"
	"time"
)

// Port is an open board console. Reads return after at most the configured
// read timeout, with zero bytes if the board was silent.
type Port interface {
	io.ReadWriteCloser

	// Flush drops console output received before the next command is sent
	Flush() error
}

// Config describes how to reach the board console
type Config struct {
	Device      string        // tty the board enumerates as
	Baud        int           // must match the firmware UART setup
	ReadTimeout time.Duration // upper bound on one Read; 0 blocks
}

// DefaultBaud is the rate the BL602 SDK configures for its console UART
const DefaultBaud = 2000000

// DefaultReadTimeout keeps reads short enough to notice a command deadline
const DefaultReadTimeout = 100 * time.Millisecond

// DefaultConfig returns the console settings for device
func DefaultConfig(device string) *Config {
	return &Config{Device: device, Baud: DefaultBaud, ReadTimeout: DefaultReadTimeout}
}
