//go:build linux

package linux

import (
	"github.com/warthog618/go-gpiocdev"
	"go.uber.org/zap"
)

// Consumer labels the lines requested by this process
const Consumer = "blinky"

// CdevGPIO drives pins as line offsets on a GPIO character device chip.
type CdevGPIO struct {
	chip  string
	lines map[uint8]*gpiocdev.Line
}

// NewCdevGPIO creates a backend for chip, e.g. "gpiochip0".
func NewCdevGPIO(chip string) *CdevGPIO {
	return &CdevGPIO{chip: chip, lines: make(map[uint8]*gpiocdev.Line)}
}

// EnableOutput requests the line as an output, initially low.
// A line that is already held is released and requested again.
func (g *CdevGPIO) EnableOutput(pin, pullup, pulldown uint8) int32 {
	if pullup > 1 || pulldown > 1 || (pullup == 1 && pulldown == 1) {
		return statusInvalid
	}
	if l, ok := g.lines[pin]; ok {
		l.Close()
		delete(g.lines, pin)
	}

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(Consumer),
	}
	switch {
	case pullup == 1:
		opts = append(opts, gpiocdev.WithPullUp)
	case pulldown == 1:
		opts = append(opts, gpiocdev.WithPullDown)
	default:
		opts = append(opts, gpiocdev.WithBiasDisabled)
	}

	l, err := gpiocdev.RequestLine(g.chip, int(pin), opts...)
	if err != nil {
		Logger().Warn("request line failed",
			zap.String("chip", g.chip),
			zap.Uint8("offset", pin),
			zap.Error(err))
		return statusOf(err)
	}
	g.lines[pin] = l
	Logger().Debug("line requested", zap.String("chip", g.chip), zap.Uint8("offset", pin))
	return 0
}

// OutputSet writes value to a requested line.
func (g *CdevGPIO) OutputSet(pin, value uint8) int32 {
	l, ok := g.lines[pin]
	if !ok {
		return statusNotReady
	}
	if value > 1 {
		return statusInvalid
	}
	if err := l.SetValue(int(value)); err != nil {
		Logger().Warn("set value failed", zap.Uint8("offset", pin), zap.Error(err))
		return statusOf(err)
	}
	return 0
}

// Close reverts every held line to input and releases it.
func (g *CdevGPIO) Close() error {
	var first error
	for pin, l := range g.lines {
		if err := l.Reconfigure(gpiocdev.AsInput); err != nil && first == nil {
			first = err
		}
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
		delete(g.lines, pin)
	}
	return first
}
