package numeric

import (
	"context"
	gomath "math"

	"gonum.org/v1/gonum/mathext"

	core "github.com/GriffinCanCode/NumServe/internal/numeric"
	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// SpecialOps handles special mathematical functions
type SpecialOps struct {
	*common.Ops
}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.gamma",
			Name:        "Gamma Function",
			Description: "Calculate gamma function Γ(x) with pole and overflow detection",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.zeta",
			Name:        "Riemann Zeta",
			Description: "Calculate ζ(s) by direct series for s > 1",
			Parameters: []types.Parameter{
				{Name: "s", Type: "number", Description: "Argument, must be greater than 1", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.eta",
			Name:        "Dirichlet Eta",
			Description: "Calculate η(s), exact ln 2 at s = 1",
			Parameters: []types.Parameter{
				{Name: "s", Type: "number", Description: "Argument, must be positive", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.erf",
			Name:        "Error Function",
			Description: "Calculate error function erf(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.erfc",
			Name:        "Complementary Error Function",
			Description: "Calculate complementary error function erfc(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.beta",
			Name:        "Beta Function",
			Description: "Calculate beta function B(a,b)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First parameter", Required: true},
				{Name: "b", Type: "number", Description: "Second parameter", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.lgamma",
			Name:        "Log Gamma",
			Description: "Calculate natural log of gamma function ln(Γ(x))",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
	}
}

// Gamma calculates the gamma function
func (sp *SpecialOps) Gamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	result, err := core.Gamma(x)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Zeta calculates the Riemann zeta function
func (sp *SpecialOps) Zeta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetNumber(params, "s")
	if !ok {
		return common.Failure("s parameter required")
	}

	result, err := core.Zeta(s)
	return common.Resolve("result", result, err)
}

// Eta calculates the Dirichlet eta function
func (sp *SpecialOps) Eta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetNumber(params, "s")
	if !ok {
		return common.Failure("s parameter required")
	}

	result, err := core.Eta(s)
	return common.Resolve("result", result, err)
}

// Erf calculates the error function
func (sp *SpecialOps) Erf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": core.Erf(x)})
}

// Erfc calculates the complementary error function
func (sp *SpecialOps) Erfc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": core.Erfc(x)})
}

// Beta calculates the beta function using gonum
func (sp *SpecialOps) Beta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}

	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	if err := common.ValidateNumber(a, "a"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(b, "b"); err != nil {
		return common.Failure(err.Error())
	}

	result := mathext.Beta(a, b)

	if err := common.ValidateNumber(result, "result"); err != nil {
		return common.Failure("beta function overflow")
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Lgamma calculates the log gamma function
func (sp *SpecialOps) Lgamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	result, _ := gomath.Lgamma(x)

	if err := common.ValidateNumber(result, "result"); err != nil {
		return common.Failure("lgamma function overflow")
	}

	return common.Success(map[string]interface{}{"result": result})
}
