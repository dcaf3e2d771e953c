// Package linux runs the blink command on a Linux board. Console output goes
// to a writer, ticks are emulated with a fixed rate, and the pin is driven
// through one of the GPIO backends.
package linux

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger, a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger; nil restores the no-op logger.
// Call it before building a HAL.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
