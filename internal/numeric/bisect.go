package numeric

import (
	"fmt"
	"math"
)

// Bisect solves f(x) = 0 on the bracket [a, b] by interval halving.
//
// The bracket must be finite with a < b and f must change sign across it;
// anything else reports ErrInvalidArgument. The search stops when the
// midpoint residual |f(mid)| drops below tol or the half-width shrinks
// under tol. Budget exhaustion returns the midpoint with ErrDidNotConverge.
func Bisect(a, b float64, f Func, tol float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("bisect: nil function: %w", ErrInvalidArgument)
	}
	if math.IsNaN(tol) || tol <= 0 {
		return 0, fmt.Errorf("bisect: tolerance %v: %w", tol, ErrInvalidArgument)
	}
	if maxIter <= 0 {
		return 0, fmt.Errorf("bisect: iteration budget %d: %w", maxIter, ErrInvalidArgument)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return 0, fmt.Errorf("bisect: bracket [%v, %v]: %w", a, b, ErrInvalidArgument)
	}

	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, fmt.Errorf("bisect: f not defined on bracket [%v, %v]: %w", a, b, ErrInvalidArgument)
	}
	if math.Abs(fa) < tol {
		return a, nil
	}
	if math.Abs(fb) < tol {
		return b, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, fmt.Errorf("bisect: no sign change on [%v, %v]: %w", a, b, ErrInvalidArgument)
	}

	mid := a
	for k := 0; k < maxIter; k++ {
		mid = a + (b-a)/2
		fm := f(mid)
		if math.IsNaN(fm) || math.IsInf(fm, 0) {
			return mid, fmt.Errorf("bisect: f(%v) not finite at step %d: %w", mid, k, ErrDidNotConverge)
		}
		if math.Abs(fm) < tol || (b-a)/2 < tol {
			return mid, nil
		}
		if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	return mid, fmt.Errorf("bisect: no root within %d iterations: %w", maxIter, ErrDidNotConverge)
}
