package numeric

import (
	"fmt"
	"math"
)

// Secant solves f(x) = 0 from two starting points, replacing the Newton
// derivative with a finite difference of successive function values.
//
// Semantics mirror FindRoot: convergence is the residual |f(x)| < tol, a
// secant slope under DerivativeEpsilon reports ErrDerivativeZero, and an
// exhausted budget returns the last iterate with ErrDidNotConverge. The
// starting points must be finite and distinct.
func Secant(x0, x1 float64, f Func, tol float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("secant: nil function: %w", ErrInvalidArgument)
	}
	if math.IsNaN(tol) || tol <= 0 {
		return 0, fmt.Errorf("secant: tolerance %v: %w", tol, ErrInvalidArgument)
	}
	if maxIter <= 0 {
		return 0, fmt.Errorf("secant: iteration budget %d: %w", maxIter, ErrInvalidArgument)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(x1) || math.IsInf(x1, 0) {
		return 0, fmt.Errorf("secant: starting points %v, %v: %w", x0, x1, ErrInvalidArgument)
	}
	if x0 == x1 {
		return 0, fmt.Errorf("secant: identical starting points %v: %w", x0, ErrInvalidArgument)
	}

	f0 := f(x0)
	if math.IsNaN(f0) || math.IsInf(f0, 0) {
		return x0, fmt.Errorf("secant: f(%v) not finite: %w", x0, ErrDidNotConverge)
	}
	if math.Abs(f0) < tol {
		return x0, nil
	}

	for k := 0; k < maxIter; k++ {
		f1 := f(x1)
		if math.IsNaN(f1) || math.IsInf(f1, 0) {
			return x1, fmt.Errorf("secant: f(%v) not finite at step %d: %w", x1, k, ErrDidNotConverge)
		}
		if math.Abs(f1) < tol {
			return x1, nil
		}

		denom := f1 - f0
		if math.Abs(denom) < DerivativeEpsilon {
			return x1, fmt.Errorf("secant: slope %v at x = %v: %w", denom, x1, ErrDerivativeZero)
		}

		next := x1 - f1*(x1-x0)/denom
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return x1, fmt.Errorf("secant: iterate diverged at step %d: %w", k, ErrDidNotConverge)
		}
		x0, f0 = x1, f1
		x1 = next
	}
	return x1, fmt.Errorf("secant: no root within %d iterations: %w", maxIter, ErrDidNotConverge)
}
