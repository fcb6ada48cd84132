/*
Package expr compiles caller-supplied expression text into numeric functions.

# Overview

Expressions are single-variable formulas in x written in JavaScript syntax,
such as "x*x - 2" or "Math.exp(x) - 3". They are compiled once with the goja
engine and then evaluated repeatedly by the root-finding and integration
routines, which may call them thousands of times per request.

# Security

Evaluation runs in an isolated VM with the Node.js globals removed. The
ECMAScript builtins (Math, Number) remain available. Every evaluation carries
a wall-clock budget enforced through the VM interrupt, so a runaway
expression cannot pin a request goroutine.

# Usage

	p, err := expr.Compile("x*x - 2")
	if err != nil {
		return err
	}
	root, err := numeric.FindRoot(1.0, p.Func(), df, 1e-9, 100)

Results follow JavaScript number coercion: an expression that does not
produce a number evaluates to NaN, which the numeric routines already treat
as divergence.
*/
package expr
