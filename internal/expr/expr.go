package expr

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/NumServe/internal/numeric"
)

// DefaultBudget caps the wall-clock time of a single evaluation.
const DefaultBudget = 100 * time.Millisecond

const interruptMsg = "evaluation budget exceeded"

// Program is a compiled expression in the variable x. The compiled form is
// immutable and safe to share; each Func binds its own VM.
type Program struct {
	prog   *goja.Program
	src    string
	budget time.Duration
}

// Compile parses and compiles expression source. The expression may use the
// variable x, the ECMAScript builtins, and scratch assignments; the value of
// its last statement is the result.
func Compile(src string) (*Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("expr: empty expression")
	}

	prog, err := goja.Compile("expression", src, false)
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}

	return &Program{
		prog:   prog,
		src:    src,
		budget: DefaultBudget,
	}, nil
}

// Source returns the original expression text.
func (p *Program) Source() string {
	return p.src
}

// Func binds the program to a fresh VM and returns it as a numeric function.
// Evaluation errors surface as NaN. The returned function reuses its VM and
// must not be called from multiple goroutines at once.
func (p *Program) Func() numeric.Func {
	vm := newVM()
	return func(x float64) float64 {
		v, err := p.run(vm, x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// Eval evaluates the program once at x with a one-shot VM, reporting
// evaluation errors instead of folding them into NaN.
func (p *Program) Eval(x float64) (float64, error) {
	return p.run(newVM(), x)
}

func (p *Program) run(vm *goja.Runtime, x float64) (float64, error) {
	vm.Set("x", x)

	timer := time.AfterFunc(p.budget, func() {
		vm.Interrupt(interruptMsg)
	})
	v, err := vm.RunProgram(p.prog)
	timer.Stop()
	// A timer that fired after the run returned would poison the next
	// evaluation on this VM.
	vm.ClearInterrupt()

	if err != nil {
		return 0, fmt.Errorf("expr: %w", err)
	}
	return v.ToFloat(), nil
}

// newVM creates an isolated runtime with the Node.js globals removed.
func newVM() *goja.Runtime {
	vm := goja.New()
	vm.SetMaxCallStackSize(1024)

	vm.Set("require", goja.Undefined())
	vm.Set("process", goja.Undefined())
	vm.Set("module", goja.Undefined())
	vm.Set("exports", goja.Undefined())

	return vm
}
