package cli

import "unsafe"

func ptrAdd(p *byte, off int) *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(p), off))
}

// Arg returns argv[i] as a Go string, or "" past the end of the vector.
func Arg(argv **byte, argc int32, i int) string {
	if argv == nil || i < 0 || i >= int(argc) {
		return ""
	}
	p := *(**byte)(unsafe.Add(unsafe.Pointer(argv), uintptr(i)*unsafe.Sizeof(argv)))
	return GoString(p, LineMax)
}
