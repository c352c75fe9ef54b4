package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err only says that nobody reads stdout any
// more, as after `fibbench | head -c0`. Callers exit as if the line had been
// written.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE):
		return true
	default:
		return errors.Is(err, io.ErrClosedPipe)
	}
}
