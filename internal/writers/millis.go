// internal/writers/millis.go
package writers

import (
	"fmt"
	"io"
)

// WriteMillis prints ms on a line of its own.
func WriteMillis(w io.Writer, ms float64) error {
	if _, err := fmt.Fprintln(w, ms); err != nil {
		return fmt.Errorf("write elapsed: %w", err)
	}
	return nil
}
