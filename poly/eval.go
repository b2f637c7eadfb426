package poly

// Eval evaluates p at x using Horner's rule. As with the arithmetic
// operations, overflow wraps silently.
func (p Poly) Eval(x int64) int64 {
	var y int64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return y
}
