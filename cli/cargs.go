package cli

// CArgs lays out a command line and its arguments the way a C shell passes
// them: a NUL-terminated line buffer, its length without the terminator, an
// argument count and a NULL-terminated vector of NUL-terminated strings.
// The returned pointers stay valid as long as the caller holds them.
func CArgs(line string, args []string) (buf *byte, length, argc int32, argv **byte) {
	lb := append([]byte(line), 0)

	vec := make([]*byte, 0, len(args)+1)
	for _, a := range args {
		ab := append([]byte(a), 0)
		vec = append(vec, &ab[0])
	}
	vec = append(vec, nil)

	return &lb[0], int32(len(line)), int32(len(args)), &vec[0]
}

// GoString reads a NUL-terminated string starting at p. It stops after max
// bytes when no terminator is found.
func GoString(p *byte, max int) string {
	if p == nil {
		return ""
	}
	out := make([]byte, 0, 16)
	for i := 0; i < max; i++ {
		b := *ptrAdd(p, i)
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return string(out)
}
