package core

import "time"

// FaultMessage is the fixed fallback diagnostic printed when the command halts.
const FaultMessage = "PANIC: blink halted"

// FaultHandler is the terminal handler for unrecoverable faults. It prints
// FaultMessage once on a best-effort basis and then parks the caller forever.
type FaultHandler struct {
	console Console
	park    func()
	entered bool
}

// NewFaultHandler creates a handler that prints through c and parks by sleeping.
func NewFaultHandler(c Console) *FaultHandler {
	return &FaultHandler{console: c, park: parkForever}
}

// SetPark replaces the park action. park is called in an endless loop, so
// it may block, spin or exit the goroutine, but returning just calls it again.
func (h *FaultHandler) SetPark(park func()) {
	if park == nil {
		park = parkForever
	}
	h.park = park
}

// Fault reports reason, prints the fallback diagnostic and never returns.
// A second fault, including one raised while printing, parks immediately.
func (h *FaultHandler) Fault(reason string) {
	if !h.entered {
		h.entered = true
		DebugPrintln("fault: " + reason)
		DumpEvents()
		h.tryPrint()
	}
	for {
		h.park()
	}
}

// tryPrint prints FaultMessage, swallowing any failure or panic.
func (h *FaultHandler) tryPrint() {
	defer func() { _ = recover() }()
	if h.console != nil {
		_, _ = Puts(h.console, FaultMessage)
	}
}

func parkForever() {
	time.Sleep(time.Hour)
}

// process-wide handler, set once
var faultHandler *FaultHandler

// InstallFaultHandler installs h as the process-wide fault handler.
// Only the first call takes effect; it reports whether h was installed.
func InstallFaultHandler(h *FaultHandler) bool {
	if faultHandler != nil || h == nil {
		return false
	}
	faultHandler = h
	return true
}

// Halt transfers control to the installed fault handler and never returns.
// Without a handler there is no console to report on, so it only parks.
func Halt(err error) {
	reason := "halt"
	if err != nil {
		reason = err.Error()
	}
	if h := faultHandler; h != nil {
		h.Fault(reason)
	}
	for {
		parkForever()
	}
}

// RecoverFault turns a panic into a Halt. Defer it at the top of an entry point.
func RecoverFault() {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case error:
		Halt(v)
	case string:
		Halt(&panicError{msg: v})
	default:
		Halt(&panicError{msg: "unrecoverable fault"})
	}
}

type panicError struct{ msg string }

func (e *panicError) Error() string { return "panic: " + e.msg }
