// internal/timing/runner.go
package timing

import (
	"time"

	"fibbench/internal/sequence"
)

// Sample is one timed call.
type Sample struct {
	Start time.Time
	End   time.Time
	Term  float64 // generator result; kept, never reported
}

// Elapsed is End-Start. With time.Now readings this uses the monotonic clock.
func (s Sample) Elapsed() time.Duration { return s.End.Sub(s.Start) }

// Millis reports the elapsed time in milliseconds, clamped at 0.
func (s Sample) Millis() float64 {
	d := s.Elapsed()
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

// Runner times a single synchronous generator call.
type Runner struct {
	// Now returns the current time. nil means time.Now.
	Now func() time.Time
}

func (r Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Measure brackets gen(n) with two clock readings.
// A panic in gen is not recovered.
func (r Runner) Measure(gen sequence.Generator, n int) Sample {
	var s Sample
	s.Start = r.now()
	s.Term = gen(n)
	s.End = r.now()
	return s
}
