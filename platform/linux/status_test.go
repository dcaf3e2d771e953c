package linux

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, int32(0), statusOf(nil))
	assert.Equal(t, int32(-1), statusOf(errors.New("opaque")))
	assert.Equal(t, -int32(syscall.EBUSY), statusOf(syscall.EBUSY))

	wrapped := fmt.Errorf("request: %w", &os.PathError{Op: "open", Path: "/dev/gpiochip9", Err: syscall.ENOENT})
	assert.Equal(t, -int32(syscall.ENOENT), statusOf(wrapped))
}
