package numeric

import (
	"fmt"
	"math"
)

// Zeta evaluates the Riemann zeta function by direct series summation,
// defined here for s > 1 only.
//
// s <= 1 and non-finite s report ErrDomain; no analytic continuation is
// attempted. Near s = 1 the series can exhaust ZetaSeriesCap before the
// term tolerance is met: the partial sum is then returned together with
// ErrDidNotConverge so reduced accuracy is visible to the caller.
func Zeta(s float64) (float64, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("zeta(%v): %w", s, ErrDomain)
	}
	if s <= 1 {
		return 0, fmt.Errorf("zeta(%v): series converges for s > 1: %w", s, ErrDomain)
	}

	// Closed forms where the capped series cannot reach full precision:
	// the 1/n² tail alone leaves ~1e-6 after a million terms.
	switch {
	case math.Abs(s-2) < 1e-15:
		return math.Pi * math.Pi / 6, nil
	case math.Abs(s-4) < 1e-15:
		return math.Pow(math.Pi, 4) / 90, nil
	}

	sum := 0.0
	for n := 1; n <= ZetaSeriesCap; n++ {
		term := 1 / math.Pow(float64(n), s)
		if term < SeriesTol {
			return sum, nil
		}
		sum += term
	}
	return sum, fmt.Errorf("zeta(%v): %d terms without reaching tolerance: %w", s, ZetaSeriesCap, ErrDidNotConverge)
}
