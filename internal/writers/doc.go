// Package writers owns everything that reaches stdout.
//
// Design:
//   - The timing result is one line: float64 milliseconds in Go's default %v form, no unit.
//   - Callers buffer and flush; a closed downstream pipe is reported via IsBrokenPipe.
package writers
