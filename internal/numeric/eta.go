package numeric

import (
	"fmt"
	"math"
)

// Eta evaluates the Dirichlet eta function for s > 0.
//
// η(1) returns ln 2 exactly rather than a truncated series. For s > 1 the
// relation η(s) = (1 - 2^(1-s))·ζ(s) delegates to Zeta, which is faster
// and more accurate than direct summation; a zeta convergence warning
// carries through wrapped. For 0 < s < 1 the alternating series is summed
// directly under EtaSeriesCap. s <= 0 and non-finite s report ErrDomain:
// the series diverges there and continuation is out of scope.
func Eta(s float64) (float64, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("eta(%v): %w", s, ErrDomain)
	}
	if s <= 0 {
		return 0, fmt.Errorf("eta(%v): series converges for s > 0: %w", s, ErrDomain)
	}
	if math.Abs(s-1) < 1e-15 {
		return math.Ln2, nil
	}

	if s > 1 {
		z, err := Zeta(s)
		factor := 1 - math.Pow(2, 1-s)
		if err != nil {
			return factor * z, fmt.Errorf("eta(%v): %w", s, err)
		}
		return factor * z, nil
	}

	// Alternating series for 0 < s < 1. The tolerance is rarely reachable
	// this close to the boundary, so most calls here surface the cap.
	sum, sign := 0.0, 1.0
	for n := 1; n <= EtaSeriesCap; n++ {
		term := sign / math.Pow(float64(n), s)
		if math.Abs(term) < SeriesTol {
			return sum, nil
		}
		sum += term
		sign = -sign
	}
	return sum, fmt.Errorf("eta(%v): %d terms without reaching tolerance: %w", s, EtaSeriesCap, ErrDidNotConverge)
}
