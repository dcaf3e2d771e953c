package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures one sequencer step for post-mortem analysis
type Event struct {
	State State  // state the sequencer was in
	Step  uint8  // toggle iteration, 0 outside the loop
	Value uint32 // level written, ticks delayed or status code
}

// EventRingSize is how many recent events are kept.
const EventRingSize = 16

var (
	// debugPrintln is the global debug print function (set by platform code)
	debugPrintln DebugWriter = func(string) {}

	// debugEnabled is off by default so delays are not skewed by console output
	debugEnabled bool

	eventRing     [EventRingSize]Event
	eventRingHead uint8
	eventCount    uint32
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrintln = w
}

// ConsoleDebugWriter returns a DebugWriter that prints through c. Lines
// longer than a CString can hold are split across several Puts calls, so
// nothing is dropped. Console status is ignored.
func ConsoleDebugWriter(c Console) DebugWriter {
	const chunk = BoundedCapacity - 1
	return func(s string) {
		for {
			n := len(s)
			if n > chunk {
				n = chunk
			}
			_, _ = Puts(c, s[:n])
			s = s[n:]
			if s == "" {
				return
			}
		}
	}
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes msg through the platform writer when debug is enabled
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// RecordEvent stores a step in the ring buffer. Always on, never blocks.
func RecordEvent(state State, step uint8, value uint32) {
	idx := eventRingHead
	eventRing[idx] = Event{State: state, Step: step, Value: value}
	eventRingHead = (idx + 1) % EventRingSize
	eventCount++
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	n := int(eventCount)
	if n > EventRingSize {
		n = EventRingSize
	}
	out := make([]Event, 0, n)
	start := (int(eventRingHead) - n + EventRingSize) % EventRingSize
	for i := 0; i < n; i++ {
		out = append(out, eventRing[(start+i)%EventRingSize])
	}
	return out
}

// DumpEvents writes the ring buffer through the debug writer, oldest first.
func DumpEvents() {
	if !debugEnabled {
		return
	}
	debugPrintln("[EVENTS] total=" + utoa(eventCount))
	for _, ev := range Events() {
		debugPrintln("[EVENTS] " + ev.State.String() +
			" step=" + itoa(int(ev.Step)) +
			" value=" + utoa(ev.Value))
	}
}

// ClearEvents empties the ring buffer
func ClearEvents() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
	eventCount = 0
}
