// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warner writes "fibbench: warning: ..." lines. A quiet Warner drops them.
type Warner struct {
	Out   io.Writer
	Quiet bool
}

func (w Warner) Warnf(format string, a ...any) {
	if w.Quiet || w.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(w.Out, "fibbench: warning: %s\n", fmt.Sprintf(format, a...))
}
