package numeric

import (
	"fmt"
	"math"
)

// Sigma sums every positive divisor of n in O(√n): σ(1) = 1, σ(6) = 12.
//
// n = 0 reports ErrInvalidArgument. A running sum past the uint64 ceiling
// reports ErrOverflow instead of wrapping silently.
func Sigma(n uint64) (uint64, error) {
	if n < 1 {
		return 0, fmt.Errorf("sigma(%d): need n >= 1: %w", n, ErrInvalidArgument)
	}

	var sum uint64
	// i <= n/i bounds the scan by √n in pure integer arithmetic, with no
	// float rounding at large n and no i*i overflow.
	for i := uint64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		var err error
		if sum, err = addChecked(sum, i); err != nil {
			return 0, fmt.Errorf("sigma(%d): %w", n, err)
		}
		// The cofactor pairs with i except at an exact square root.
		if pair := n / i; pair != i {
			if sum, err = addChecked(sum, pair); err != nil {
				return 0, fmt.Errorf("sigma(%d): %w", n, err)
			}
		}
	}
	return sum, nil
}

// IsPerfect reports whether σ(n) = 2n. 0 and 1 are not perfect; a Sigma
// overflow propagates.
func IsPerfect(n uint64) (bool, error) {
	if n <= 1 {
		return false, nil
	}
	s, err := Sigma(n)
	if err != nil {
		return false, err
	}
	// Compare without doubling n, which could wrap near the ceiling.
	return s%2 == 0 && s/2 == n, nil
}

func addChecked(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
