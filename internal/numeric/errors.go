package numeric

import "errors"

// Sentinel errors reported by the evaluation core. Returned errors wrap
// these with argument context; match them with errors.Is.
var (
	// ErrInvalidArgument reports a caller parameter outside the accepted
	// range, such as a non-positive tolerance or iteration budget.
	ErrInvalidArgument = errors.New("numeric: invalid argument")

	// ErrDomain reports an input the chosen algorithm is undefined for.
	ErrDomain = errors.New("numeric: argument outside domain")

	// ErrPole reports an argument that coincides with a singularity.
	ErrPole = errors.New("numeric: pole encountered")

	// ErrDerivativeZero reports a vanished Newton or secant denominator.
	ErrDerivativeZero = errors.New("numeric: derivative vanished")

	// ErrDidNotConverge reports an exhausted iteration or term budget.
	// The value returned alongside it is the best estimate so far.
	ErrDidNotConverge = errors.New("numeric: did not converge")

	// ErrOverflow reports a result beyond the representable range.
	ErrOverflow = errors.New("numeric: value overflow")
)
