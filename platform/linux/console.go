package linux

import (
	"bytes"
	"io"

	"go.uber.org/zap"
)

// Console behaves like C puts on an io.Writer: the text up to the first NUL
// is written followed by a newline.
type Console struct {
	W io.Writer
}

// Puts returns 0 on success and -1 on a write error or a missing terminator.
func (c Console) Puts(view []byte) int32 {
	end := bytes.IndexByte(view, 0)
	if end < 0 {
		return -1
	}
	line := make([]byte, end+1)
	copy(line, view[:end])
	line[end] = '\n'
	if _, err := c.W.Write(line); err != nil {
		Logger().Debug("console write failed", zap.Error(err))
		return -1
	}
	return 0
}
