package numeric

import (
	"context"

	core "github.com/GriffinCanCode/NumServe/internal/numeric"
	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// CalculusOps handles numerical integration
type CalculusOps struct {
	*common.Ops
}

// GetTools returns calculus tool definitions
func (c *CalculusOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.integrate",
			Name:        "Definite Integral",
			Description: "Integrate an expression in x over [a, b] with Simpson's rule",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Expression in x", Required: true},
				{Name: "a", Type: "number", Description: "Lower bound", Required: true},
				{Name: "b", Type: "number", Description: "Upper bound", Required: true},
				{Name: "n", Type: "number", Description: "Panel count, at least 2", Required: true},
			},
			Returns: "number",
		},
	}
}

// Integrate evaluates a definite integral of a compiled expression
func (c *CalculusOps) Integrate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
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

	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	f, err := compileExpr(src, a)
	if err != nil {
		return common.Failure(err.Error())
	}

	result, err := core.Integrate(f, a, b, int(n))
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}
