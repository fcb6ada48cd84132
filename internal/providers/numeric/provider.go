package numeric

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/NumServe/internal/providers/numeric/common"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// Provider implements numerical evaluation operations
type Provider struct {
	// Module instances
	special   *SpecialOps
	roots     *RootOps
	calculus  *CalculusOps
	divisor   *DivisorOps
	constants *ConstantsOps
}

// NewProvider creates a modular numeric provider
func NewProvider() *Provider {
	ops := &common.Ops{}

	return &Provider{
		special:   &SpecialOps{Ops: ops},
		roots:     &RootOps{Ops: ops},
		calculus:  &CalculusOps{Ops: ops},
		divisor:   &DivisorOps{Ops: ops},
		constants: &ConstantsOps{Ops: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, p.special.GetTools()...)
	tools = append(tools, p.roots.GetTools()...)
	tools = append(tools, p.calculus.GetTools()...)
	tools = append(tools, p.divisor.GetTools()...)
	tools = append(tools, p.constants.GetTools()...)

	return types.Service{
		ID:          "numeric",
		Name:        "Numeric Service",
		Description: "Numerical evaluation (special functions, root finding, integration, divisors)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"special_functions",
			"root_finding",
			"integration",
			"divisors",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Special functions
	case "numeric.gamma":
		return p.special.Gamma(ctx, params, appCtx)
	case "numeric.zeta":
		return p.special.Zeta(ctx, params, appCtx)
	case "numeric.eta":
		return p.special.Eta(ctx, params, appCtx)
	case "numeric.erf":
		return p.special.Erf(ctx, params, appCtx)
	case "numeric.erfc":
		return p.special.Erfc(ctx, params, appCtx)
	case "numeric.beta":
		return p.special.Beta(ctx, params, appCtx)
	case "numeric.lgamma":
		return p.special.Lgamma(ctx, params, appCtx)

	// Root finding
	case "numeric.find_root":
		return p.roots.FindRoot(ctx, params, appCtx)
	case "numeric.bisect":
		return p.roots.Bisect(ctx, params, appCtx)
	case "numeric.secant":
		return p.roots.Secant(ctx, params, appCtx)

	// Calculus
	case "numeric.integrate":
		return p.calculus.Integrate(ctx, params, appCtx)

	// Divisor arithmetic
	case "numeric.sigma":
		return p.divisor.Sigma(ctx, params, appCtx)
	case "numeric.is_perfect":
		return p.divisor.IsPerfect(ctx, params, appCtx)

	// Constants
	case "numeric.pi":
		return p.constants.Pi(ctx, params, appCtx)
	case "numeric.e":
		return p.constants.E(ctx, params, appCtx)
	case "numeric.tau":
		return p.constants.Tau(ctx, params, appCtx)
	case "numeric.phi":
		return p.constants.Phi(ctx, params, appCtx)
	case "numeric.sqrt2":
		return p.constants.Sqrt2(ctx, params, appCtx)
	case "numeric.ln2":
		return p.constants.Ln2(ctx, params, appCtx)
	case "numeric.epsilon":
		return p.constants.Epsilon(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
