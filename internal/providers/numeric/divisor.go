package numeric

import (
	"context"
	"fmt"

	core "github.com/GriffinCanCode/NumServe/internal/numeric"
	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// DivisorOps handles divisor arithmetic
type DivisorOps struct {
	*common.Ops
}

// GetTools returns divisor tool definitions
func (d *DivisorOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.sigma",
			Name:        "Divisor Sum",
			Description: "Sum all positive divisors of n: σ(6) = 12",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Positive integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.is_perfect",
			Name:        "Perfect Number Check",
			Description: "Report whether σ(n) = 2n, as for 6, 28, 496",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Positive integer", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Sigma computes the divisor sum
func (d *DivisorOps) Sigma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required and must be an integer")
	}
	if n < 0 {
		return common.Failure(fmt.Sprintf("sigma(%d): need n >= 1: %v", n, core.ErrInvalidArgument))
	}

	sum, err := core.Sigma(uint64(n))
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": sum})
}

// IsPerfect checks whether n equals the sum of its proper divisors
func (d *DivisorOps) IsPerfect(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required and must be an integer")
	}
	if n < 0 {
		return common.Success(map[string]interface{}{"result": false})
	}

	perfect, err := core.IsPerfect(uint64(n))
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": perfect})
}
