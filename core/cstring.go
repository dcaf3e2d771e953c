package core

// BoundedCapacity is the CString capacity in bytes, NUL terminator included.
const BoundedCapacity = 64

// CString is a fixed-capacity owned text buffer for handing text to
// foreign calls that expect NUL-terminated bytes. It never grows; the
// length including any terminator never exceeds BoundedCapacity.
type CString struct {
	buf [BoundedCapacity]byte
	n   int
}

// NewCString copies s into a fresh buffer.
// It fails if s plus a terminator would not fit.
func NewCString(s string) (*CString, error) {
	if len(s)+1 > BoundedCapacity {
		return nil, &OverflowError{Capacity: BoundedCapacity, Need: len(s) + 1}
	}
	c := &CString{}
	c.n = copy(c.buf[:], s)
	return c, nil
}

// PushNull appends the NUL terminator.
func (c *CString) PushNull() error {
	if c.n >= BoundedCapacity {
		return &OverflowError{Capacity: BoundedCapacity, Need: c.n + 1}
	}
	c.buf[c.n] = 0
	c.n++
	return nil
}

// Len returns the number of bytes in use, terminator included once pushed.
func (c *CString) Len() int { return c.n }

// View returns the used bytes. The slice aliases the buffer: it is only
// valid while c is alive and must not be written through.
func (c *CString) View() []byte {
	return c.buf[:c.n:c.n]
}

// Terminated reports whether the last byte in use is NUL.
func (c *CString) Terminated() bool {
	return c.n > 0 && c.buf[c.n-1] == 0
}
