package numeric

// Safety bounds for the iterative routines. The caps exist to guarantee
// termination near convergence boundaries, not to set accuracy targets;
// when a cap is hit the partial result comes back with ErrDidNotConverge.
const (
	// SeriesTol is the absolute term tolerance that ends the zeta and eta
	// series summations.
	SeriesTol = 1e-15

	// ZetaSeriesCap bounds the zeta series term count. Just above s = 1
	// the series converges too slowly for any tolerance to be reached.
	ZetaSeriesCap = 1_000_000

	// EtaSeriesCap bounds the eta alternating series. Conditional
	// convergence is slower than the zeta series, so the cap is larger.
	EtaSeriesCap = 2_000_000

	// DerivativeEpsilon is the magnitude below which a Newton or secant
	// denominator counts as vanished.
	DerivativeEpsilon = 1e-12
)
