// Package sequence computes terms of the additive two-term recurrence
// (a, b) → (b, a+b) seeded with (0, 1), using float64 accumulation.
//
// Notes:
//   - Terms are IEEE-754 binary64; large n overflows to +Inf, which is a value, not an error.
//   - Term is pure. Callers may run it from any goroutine.
package sequence
