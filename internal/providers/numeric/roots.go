package numeric

import (
	"context"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/GriffinCanCode/NumServe/internal/expr"
	core "github.com/GriffinCanCode/NumServe/internal/numeric"
	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// RootOps handles root finding
type RootOps struct {
	*common.Ops
}

// compileExpr builds an evaluator for expression source, probing it once so
// a broken expression fails fast instead of surfacing as divergence.
func compileExpr(src string, probe float64) (core.Func, error) {
	p, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	if _, err := p.Eval(probe); err != nil {
		return nil, err
	}
	return p.Func(), nil
}

// GetTools returns root finding tool definitions
func (r *RootOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.find_root",
			Name:        "Newton-Raphson Root",
			Description: "Find a root of an expression in x with Newton-Raphson iteration",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Expression in x, e.g. 'x*x - 2'", Required: true},
				{Name: "x0", Type: "number", Description: "Initial guess", Required: true},
				{Name: "tol", Type: "number", Description: "Residual tolerance |f(x)|", Required: true},
				{Name: "max_iter", Type: "number", Description: "Iteration budget", Required: true},
				{Name: "derivative", Type: "string", Description: "Derivative expression in x; finite differences when omitted", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "numeric.bisect",
			Name:        "Bisection Root",
			Description: "Find a root of an expression in x by bisecting a sign-changing bracket",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Expression in x", Required: true},
				{Name: "a", Type: "number", Description: "Bracket lower bound", Required: true},
				{Name: "b", Type: "number", Description: "Bracket upper bound", Required: true},
				{Name: "tol", Type: "number", Description: "Residual tolerance |f(x)|", Required: true},
				{Name: "max_iter", Type: "number", Description: "Iteration budget", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "numeric.secant",
			Name:        "Secant Root",
			Description: "Find a root of an expression in x with the secant method",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Expression in x", Required: true},
				{Name: "x0", Type: "number", Description: "First starting point", Required: true},
				{Name: "x1", Type: "number", Description: "Second starting point", Required: true},
				{Name: "tol", Type: "number", Description: "Residual tolerance |f(x)|", Required: true},
				{Name: "max_iter", Type: "number", Description: "Iteration budget", Required: true},
			},
			Returns: "object",
		},
	}
}

// FindRoot runs Newton-Raphson iteration on a compiled expression
func (r *RootOps) FindRoot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, ok := common.GetString(params, "expression")
	if !ok {
		return common.Failure("expression parameter required")
	}

	x0, ok := common.GetNumber(params, "x0")
	if !ok {
		return common.Failure("x0 parameter required")
	}

	tol, ok := common.GetNumber(params, "tol")
	if !ok {
		return common.Failure("tol parameter required")
	}

	maxIter, ok := common.GetInt(params, "max_iter")
	if !ok {
		return common.Failure("max_iter parameter required")
	}

	f, err := compileExpr(src, x0)
	if err != nil {
		return common.Failure(err.Error())
	}

	var df core.Func
	if dsrc, ok := common.GetString(params, "derivative"); ok {
		df, err = compileExpr(dsrc, x0)
		if err != nil {
			return common.Failure(err.Error())
		}
	} else {
		df = func(x float64) float64 {
			return fd.Derivative(f, x, nil)
		}
	}

	root, err := core.FindRoot(x0, f, df, tol, int(maxIter))
	return common.Resolve("root", root, err)
}

// Bisect runs bisection on a compiled expression
func (r *RootOps) Bisect(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, ok := common.GetString(params, "expression")
	if !ok {
		return common.Failure("expression parameter required")
	}

	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}

	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	tol, ok := common.GetNumber(params, "tol")
	if !ok {
		return common.Failure("tol parameter required")
	}

	maxIter, ok := common.GetInt(params, "max_iter")
	if !ok {
		return common.Failure("max_iter parameter required")
	}

	f, err := compileExpr(src, a)
	if err != nil {
		return common.Failure(err.Error())
	}

	root, err := core.Bisect(a, b, f, tol, int(maxIter))
	return common.Resolve("root", root, err)
}

// Secant runs the secant method on a compiled expression
func (r *RootOps) Secant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, ok := common.GetString(params, "expression")
	if !ok {
		return common.Failure("expression parameter required")
	}

	x0, ok := common.GetNumber(params, "x0")
	if !ok {
		return common.Failure("x0 parameter required")
	}

	x1, ok := common.GetNumber(params, "x1")
	if !ok {
		return common.Failure("x1 parameter required")
	}

	tol, ok := common.GetNumber(params, "tol")
	if !ok {
		return common.Failure("tol parameter required")
	}

	maxIter, ok := common.GetInt(params, "max_iter")
	if !ok {
		return common.Failure("max_iter parameter required")
	}

	f, err := compileExpr(src, x0)
	if err != nil {
		return common.Failure(err.Error())
	}

	root, err := core.Secant(x0, x1, f, tol, int(maxIter))
	return common.Resolve("root", root, err)
}
