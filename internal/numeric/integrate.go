package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Integrate approximates the integral of f over [a, b] with composite
// Simpson quadrature on n uniform panels (n+1 samples).
//
// Requires finite a < b, n >= 2, and a non-nil f; violations report
// ErrInvalidArgument. A non-finite sample anywhere on the grid reports
// ErrDomain, since a quadrature over a singularity is meaningless.
func Integrate(f Func, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("integrate: nil function: %w", ErrInvalidArgument)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return 0, fmt.Errorf("integrate: interval [%v, %v]: %w", a, b, ErrInvalidArgument)
	}
	if n < 2 {
		return 0, fmt.Errorf("integrate: panel count %d: %w", n, ErrInvalidArgument)
	}

	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	h := (b - a) / float64(n)
	for i := range xs {
		x := a + float64(i)*h
		if i == n {
			// Land exactly on b regardless of rounding in h.
			x = b
		}
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, fmt.Errorf("integrate: f(%v) not finite: %w", x, ErrDomain)
		}
		xs[i], ys[i] = x, y
	}
	return integrate.Simpsons(xs, ys), nil
}
