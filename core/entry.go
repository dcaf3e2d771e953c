package core

// BlinkMain is the command entry point called by the firmware shell.
//
// buf/length is the raw command line and argc/argv its parsed arguments.
// They are accepted for shell calling-convention compatibility and are not
// used. BlinkMain returns after the toggle sequence completes; on any failure
// it halts into the fault handler and does not return.
func BlinkMain(hal HAL, buf *byte, length, argc int32, argv **byte) {
	_, _, _, _ = buf, length, argc, argv

	if faultHandler == nil {
		InstallFaultHandler(NewFaultHandler(hal))
	}
	defer RecoverFault()

	if err := NewBlinker(hal).Run(); err != nil {
		Halt(err)
	}
}
