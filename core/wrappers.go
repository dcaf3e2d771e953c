package core

// Safe wrappers over the foreign capabilities. Each call converts the raw
// foreign result into a typed Go result; nothing above this file touches a
// capability directly.

// Operation names carried by StatusError.Op. They name the capability, not
// a particular HAL's symbol.
const (
	OpEnableOutput = "enable_output"
	OpOutputSet    = "output_set"
)

// Ticks is a duration in platform ticks. The zero value is 0 ticks; other
// values come only from MsToTicks.
type Ticks struct {
	n uint32
}

// Count returns the raw tick count.
func (t Ticks) Count() uint32 { return t.n }

// Puts prints msg on the console and returns the raw foreign status.
// Messages that do not fit a CString fail before the console is touched.
func Puts(c Console, msg string) (int32, error) {
	s, err := NewCString(msg)
	if err != nil {
		return 0, err
	}
	if err := s.PushNull(); err != nil {
		return 0, err
	}
	return c.Puts(s.View()), nil
}

// EnableOutput configures pin as an output. No retries.
func EnableOutput(g GPIO, pin Pin, pullup, pulldown bool) error {
	res := g.EnableOutput(uint8(pin), flag(pullup), flag(pulldown))
	return statusErr(OpEnableOutput, res)
}

// OutputSet drives pin to level. No retries.
func OutputSet(g GPIO, pin Pin, level Level) error {
	res := g.OutputSet(uint8(pin), uint8(level))
	return statusErr(OpOutputSet, res)
}

// MsToTicks converts milliseconds to platform ticks.
func MsToTicks(c Clock, ms uint32) Ticks {
	return Ticks{n: c.MsToTicks32(ms)}
}

// Delay blocks the caller for about t ticks.
// It cannot be cancelled or cut short.
func Delay(c Clock, t Ticks) {
	c.Delay(t.n)
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
