package core

// Pin identifies a hardware GPIO pin number.
// The HAL decides whether a pin is valid; this layer passes it through.
type Pin uint8

// Level is the logical output level written to a pin.
// On this board's LED wiring 0 lights the LED and 1 turns it off.
type Level uint8

const (
	LevelOn  Level = 0
	LevelOff Level = 1
)

// Console is the foreign serial console print capability.
type Console interface {
	// Puts prints a NUL-terminated byte view to the console.
	// The returned status is passed back to callers uninterpreted.
	Puts(view []byte) int32
}

// GPIO is the foreign pin-level HAL capability.
// Both calls return 0 on success and a HAL-specific code otherwise.
type GPIO interface {
	// EnableOutput configures a pin as an output (pullup/pulldown are 0 or 1)
	EnableOutput(pin, pullup, pulldown uint8) int32

	// OutputSet drives a configured output pin to value (0 or 1)
	OutputSet(pin, value uint8) int32
}

// Clock is the foreign real-time porting layer time capability.
type Clock interface {
	// MsToTicks32 converts milliseconds to platform ticks
	MsToTicks32(ms uint32) uint32

	// Delay suspends the caller for about ticks platform ticks
	Delay(ticks uint32)
}

// HAL bundles every foreign capability the blink command consumes.
// Targets implement it over real hardware; tests substitute a recorder.
type HAL interface {
	Console
	GPIO
	Clock
}
