// Blink sequencer: configure the LED pin, then toggle it on a fixed schedule.
package core

import "errors"

const (
	// LEDPin is the GPIO wired to the board LED (PineCone blue LED on BL602)
	LEDPin Pin = 11

	// Banner is printed once per invocation before the pin is touched
	Banner = "Hello from Rust!"

	// ToggleCount is the number of level writes per invocation
	ToggleCount = 10

	// ToggleIntervalMs is the delay after every level write
	ToggleIntervalMs = 1000
)

// State is a sequencer state.
type State uint8

const (
	StateInit State = iota
	StateConfigurePin
	StateToggleLoop
	StateDone
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateConfigurePin:
		return "configure_pin"
	case StateToggleLoop:
		return "toggle_loop"
	case StateDone:
		return "done"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Blinker runs the blink protocol against a HAL.
// A Blinker is single use and not safe for concurrent use.
type Blinker struct {
	hal   HAL
	state State
	step  uint8
}

// NewBlinker creates a sequencer in StateInit.
func NewBlinker(hal HAL) *Blinker {
	return &Blinker{hal: hal, state: StateInit}
}

// State returns the current state.
func (b *Blinker) State() State { return b.state }

// Step returns the current toggle iteration.
func (b *Blinker) Step() uint8 { return b.step }

// Run executes the whole protocol. It returns nil after the last delay,
// or the first wrapper failure with the sequencer left in StateHalted.
// The caller owns the fail-stop policy; Run itself never parks.
func (b *Blinker) Run() error {
	for b.state != StateDone {
		if err := b.advance(); err != nil {
			DebugPrintln("blink: " + b.state.String() + " failed: " + err.Error())
			b.state = StateHalted
			RecordEvent(StateHalted, b.step, uint32(CodeOf(err)))
			return err
		}
	}
	return nil
}

// advance performs the work of the current state and moves to the next one
func (b *Blinker) advance() error {
	switch b.state {
	case StateInit:
		// status is diagnostic only; overflow still halts
		res, err := Puts(b.hal, Banner)
		if err != nil {
			return err
		}
		RecordEvent(StateInit, 0, uint32(res))
		b.state = StateConfigurePin

	case StateConfigurePin:
		DebugPrintln("blink: enable output pin=" + itoa(int(LEDPin)))
		if err := EnableOutput(b.hal, LEDPin, false, false); err != nil {
			return err
		}
		RecordEvent(StateConfigurePin, 0, uint32(LEDPin))
		b.state = StateToggleLoop
		b.step = 0

	case StateToggleLoop:
		level := Level(b.step % 2)
		if err := OutputSet(b.hal, LEDPin, level); err != nil {
			return err
		}
		ticks := MsToTicks(b.hal, ToggleIntervalMs)
		RecordEvent(StateToggleLoop, b.step, ticks.Count())
		Delay(b.hal, ticks)

		if b.step+1 >= ToggleCount {
			b.state = StateDone
			DebugPrintln("blink: done")
			return nil
		}
		b.step++

	case StateHalted:
		return errHalted
	}
	return nil
}

// errHalted is returned when Run is called on a sequencer that already failed
var errHalted = errors.New("blink: sequencer halted")
