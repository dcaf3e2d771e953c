//go:build bl602

package bl602

import "C"

import (
	"unsafe"

	"blinky/core"
)

func init() {
	h := core.NewFaultHandler(HAL{})
	// spin in place, as a bare loop {} would
	h.SetPark(func() {})
	core.InstallFaultHandler(h)

	core.SetDebugWriter(core.ConsoleDebugWriter(HAL{}))
}

// blink_main is called by the BL602 command-line interface. cgo requires
// the Go name to match the exported C symbol.
//
//export blink_main
func blink_main(buf *C.char, length C.int, argc C.int, argv **C.char) {
	core.BlinkMain(HAL{},
		(*byte)(unsafe.Pointer(buf)), int32(length),
		int32(argc), (**byte)(unsafe.Pointer(argv)))
}
