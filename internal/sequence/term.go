// internal/sequence/term.go
package sequence

// DefaultTerms is the benchmark input size.
const DefaultTerms = 100_000_000

// Generator computes the n-th term of a recurrence.
type Generator func(n int) float64

// Term returns a after n steps of (a, b) = (b, a+b) from (0, 1).
// Negative n performs no steps.
func Term(n int) float64 {
	a, b := 0.0, 1.0
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}
