package core

import "errors"

// ErrorCode is a raw nonzero status returned by a HAL call.
type ErrorCode int32

// StatusError reports a HAL call that returned a nonzero status.
type StatusError struct {
	Op   string // capability operation, OpEnableOutput or OpOutputSet
	Code ErrorCode
}

func (e *StatusError) Error() string {
	return e.Op + " failed: status " + itoa(int(e.Code))
}

// OverflowError reports text that does not fit a bounded buffer.
type OverflowError struct {
	Capacity int // buffer capacity in bytes, terminator included
	Need     int // bytes required, terminator included
}

func (e *OverflowError) Error() string {
	return "bounded string overflow: need " + itoa(e.Need) + " bytes, capacity " + itoa(e.Capacity)
}

// statusErr maps a raw HAL status to an error (nil for 0)
func statusErr(op string, res int32) error {
	if res == 0 {
		return nil
	}
	return &StatusError{Op: op, Code: ErrorCode(res)}
}

// CodeOf extracts the HAL status carried by err.
// It returns 0 for nil and -1 for errors that carry no status.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return 0
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return -1
}

// IsOverflow reports whether err is, or wraps, an *OverflowError.
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}
