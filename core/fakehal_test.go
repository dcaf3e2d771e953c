package core

import "runtime"

// ---- fakes ----

// call is one recorded foreign call
type call struct {
	name string
	args []uint32
	text string // Puts payload without the terminator
}

// fakeHAL records every foreign call in order.
type fakeHAL struct {
	calls []call

	putsStatus   int32
	enableStatus int32
	setStatus    int32
	setFailAt    int // 1-based OutputSet call that returns setStatus; 0 = every call
	sets         int

	tickHz     uint32
	putsPanics bool
}

func newFakeHAL() *fakeHAL { return &fakeHAL{tickHz: 1000} }

func (f *fakeHAL) Puts(view []byte) int32 {
	if f.putsPanics {
		panic("console gone")
	}
	var text string
	if n := len(view); n > 0 && view[n-1] == 0 {
		text = string(view[:n-1])
	} else {
		text = "<unterminated>" + string(view)
	}
	f.calls = append(f.calls, call{name: "puts", text: text, args: []uint32{uint32(len(view))}})
	return f.putsStatus
}

func (f *fakeHAL) EnableOutput(pin, pullup, pulldown uint8) int32 {
	f.calls = append(f.calls, call{name: "enable_output", args: []uint32{uint32(pin), uint32(pullup), uint32(pulldown)}})
	return f.enableStatus
}

func (f *fakeHAL) OutputSet(pin, value uint8) int32 {
	f.sets++
	f.calls = append(f.calls, call{name: "output_set", args: []uint32{uint32(pin), uint32(value)}})
	if f.setFailAt == 0 || f.setFailAt == f.sets {
		return f.setStatus
	}
	return 0
}

func (f *fakeHAL) MsToTicks32(ms uint32) uint32 {
	f.calls = append(f.calls, call{name: "ms_to_ticks", args: []uint32{ms}})
	return ms * f.tickHz / 1000
}

func (f *fakeHAL) Delay(ticks uint32) {
	f.calls = append(f.calls, call{name: "delay", args: []uint32{ticks}})
}

func (f *fakeHAL) named(name string) []call {
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeHAL) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

var _ HAL = (*fakeHAL)(nil)

// ---- park harness ----

type outcome int

const (
	returned outcome = iota
	parked
	panicked
)

func (o outcome) String() string {
	switch o {
	case returned:
		return "returned"
	case parked:
		return "parked"
	default:
		return "panicked"
	}
}

// runGuarded runs fn in its own goroutine and reports how it ended. A fault
// handler whose park action is runtime.Goexit ends the goroutine without
// returning, which shows up here as parked.
func runGuarded(fn func()) outcome {
	done := make(chan outcome, 1)
	go func() {
		finished := false
		defer func() {
			switch {
			case recover() != nil:
				done <- panicked
			case finished:
				done <- returned
			default:
				done <- parked
			}
		}()
		fn()
		finished = true
	}()
	return <-done
}

// installTestFaultHandler replaces the process-wide handler with one that
// prints through c and parks by exiting the goroutine.
func installTestFaultHandler(c Console) *FaultHandler {
	faultHandler = nil
	h := NewFaultHandler(c)
	h.SetPark(runtime.Goexit)
	InstallFaultHandler(h)
	return h
}

func resetGlobals() {
	faultHandler = nil
	ClearEvents()
	SetDebugEnabled(false)
	SetDebugWriter(nil)
}
