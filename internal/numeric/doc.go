// Package numeric implements the evaluation core: root finding by the
// Newton-Raphson, bisection, and secant methods, the Gamma, Riemann zeta,
// Dirichlet eta, and error functions, divisor sums, and composite Simpson
// integration.
//
// Every operation is pure and reentrant: no state survives a call, and
// concurrent use needs no synchronization. Invalid input is reported
// through sentinel errors matched with errors.Is, never through panics or
// silent NaN/Inf results. Iterative routines run under explicit bounds
// (caller iteration budgets, package series caps), so every call
// terminates in predictable time.
//
// Cancellation is the caller's concern: wrap calls in a wall-clock budget
// if early abort matters. The package performs no I/O and no logging.
package numeric
