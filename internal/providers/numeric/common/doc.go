// Package common provides shared helpers for the numeric service provider.
//
// The provider is organized into specialized modules:
//   - special: Special functions (gamma, zeta, eta, erf, erfc, beta, lgamma)
//   - roots: Root finding (newton, bisection, secant)
//   - calculus: Numerical integration
//   - divisor: Divisor sums and perfect number checks
//   - constants: Mathematical constants (pi, e, tau, phi, sqrt2, ln2, epsilon)
//
// Built on the numeric core and gonum.org/v1/gonum:
//   - IEEE 754 floating-point accuracy
//   - NaN and Infinity handling
//   - Tagged non-convergence instead of hard failures
//
// Features:
//   - Input validation for edge cases
//   - Proper error handling for invalid operations
//   - Consistent JSON result format
//
// Example Usage:
//
//	special := &numeric.SpecialOps{Ops: &common.Ops{}}
//	result, err := special.Gamma(ctx, params, appCtx)
package common
