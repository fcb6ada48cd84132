package common

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/NumServe/internal/numeric"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// Ops provides common helpers shared by the provider modules
type Ops struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Resolve maps a convergent evaluation to a result envelope. Non-convergence
// is reported as success with converged=false and the partial value, so
// callers still see the best estimate; every other error fails the call.
func Resolve(key string, value float64, err error) (*types.Result, error) {
	if err == nil {
		return Success(map[string]interface{}{key: value, "converged": true})
	}
	if errors.Is(err, numeric.ErrDidNotConverge) {
		return Success(map[string]interface{}{
			key:         value,
			"converged": false,
			"warning":   err.Error(),
		})
	}
	return Failure(err.Error())
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integral value from params. JSON numbers arrive as
// float64, so fractional values are rejected rather than truncated.
func GetInt(params map[string]interface{}, key string) (int64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != gomath.Trunc(v) || gomath.Abs(v) > 1<<62 {
			return 0, false
		}
		return int64(v), true
	case float32:
		f := float64(v)
		if f != gomath.Trunc(f) || gomath.Abs(f) > 1<<62 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if x != x { // NaN check
		return fmt.Errorf("%s is NaN", name)
	}
	if x > 1e308 || x < -1e308 { // Infinity check
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}
