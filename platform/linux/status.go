package linux

import (
	"errors"
	"syscall"
)

// Status values for failures that carry no errno
const (
	statusFailed   int32 = -1
	statusNotReady int32 = -int32(syscall.ENODEV)
	statusInvalid  int32 = -int32(syscall.EINVAL)
)

// statusOf maps a backend error to a HAL status: 0 for nil, the negated
// errno when one is wrapped, -1 otherwise.
func statusOf(err error) int32 {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return -int32(errno)
	}
	return statusFailed
}
