package numeric

import (
	"fmt"
	"math"
)

// Func is a scalar function of one real variable.
type Func func(float64) float64

// FindRoot solves f(x) = 0 by Newton-Raphson iteration starting from x0.
//
// Each step applies x = x - f(x)/df(x) until the residual |f(x)| drops
// below tol or maxIter steps have run. A derivative smaller than
// DerivativeEpsilon stops the search with ErrDerivativeZero and the stall
// point. An exhausted budget returns the last iterate together with
// ErrDidNotConverge: usable as an estimate, not authoritative. tol and
// maxIter must be positive, x0 finite, f and df non-nil.
func FindRoot(x0 float64, f, df Func, tol float64, maxIter int) (float64, error) {
	if f == nil || df == nil {
		return 0, fmt.Errorf("findroot: nil function: %w", ErrInvalidArgument)
	}
	if math.IsNaN(tol) || tol <= 0 {
		return 0, fmt.Errorf("findroot: tolerance %v: %w", tol, ErrInvalidArgument)
	}
	if maxIter <= 0 {
		return 0, fmt.Errorf("findroot: iteration budget %d: %w", maxIter, ErrInvalidArgument)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return 0, fmt.Errorf("findroot: initial guess %v: %w", x0, ErrInvalidArgument)
	}

	x := x0
	for k := 0; k < maxIter; k++ {
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return x, fmt.Errorf("findroot: f(%v) not finite at step %d: %w", x, k, ErrDidNotConverge)
		}
		if math.Abs(fx) < tol {
			return x, nil
		}

		d := df(x)
		if math.Abs(d) < DerivativeEpsilon {
			return x, fmt.Errorf("findroot: derivative %v at x = %v: %w", d, x, ErrDerivativeZero)
		}

		next := x - fx/d
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return x, fmt.Errorf("findroot: iterate diverged at step %d: %w", k, ErrDidNotConverge)
		}
		x = next
	}
	return x, fmt.Errorf("findroot: no root within %d iterations: %w", maxIter, ErrDidNotConverge)
}
