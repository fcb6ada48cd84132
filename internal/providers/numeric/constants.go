package numeric

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// ConstantsOps provides mathematical constants
type ConstantsOps struct {
	*common.Ops
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.pi",
			Name:        "Pi (π)",
			Description: "Get value of π",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.e",
			Name:        "Euler's Number (e)",
			Description: "Get value of e",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.tau",
			Name:        "Tau (τ)",
			Description: "Get value of τ (2π)",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.phi",
			Name:        "Golden Ratio (φ)",
			Description: "Get value of φ (golden ratio)",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.sqrt2",
			Name:        "Square Root of 2",
			Description: "Get value of √2",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.ln2",
			Name:        "Natural Log of 2",
			Description: "Get value of ln 2",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "numeric.epsilon",
			Name:        "Machine Epsilon",
			Description: "Get the float64 machine epsilon",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
	}
}

// Pi returns π
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Pi})
}

// E returns e
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.E})
}

// Tau returns τ (2π)
func (c *ConstantsOps) Tau(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": 2 * gomath.Pi})
}

// Phi returns φ (golden ratio)
func (c *ConstantsOps) Phi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Phi})
}

// Sqrt2 returns √2
func (c *ConstantsOps) Sqrt2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Sqrt2})
}

// Ln2 returns ln 2
func (c *ConstantsOps) Ln2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Ln2})
}

// Epsilon returns the difference between 1 and the next float64
func (c *ConstantsOps) Epsilon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	eps := gomath.Nextafter(1, 2) - 1
	return common.Success(map[string]interface{}{"result": eps})
}
