package numeric

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every operation is stateless; hammering them from many goroutines must
// produce bit-identical results with no synchronization.
func TestConcurrentEvaluation(t *testing.T) {
	gammaRef, err := Gamma(5.5)
	require.NoError(t, err)
	zetaRef, err := Zeta(3)
	require.NoError(t, err)
	sigmaRef, err := Sigma(8128)
	require.NoError(t, err)
	erfRef := Erf(1.25)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				gv, err := Gamma(5.5)
				assert.NoError(t, err)
				assert.Equal(t, gammaRef, gv)

				zv, err := Zeta(3)
				assert.NoError(t, err)
				assert.Equal(t, zetaRef, zv)

				sv, err := Sigma(8128)
				assert.NoError(t, err)
				assert.Equal(t, sigmaRef, sv)

				assert.Equal(t, erfRef, Erf(1.25))

				rv, err := FindRoot(1.0, func(x float64) float64 { return x*x - 2 },
					func(x float64) float64 { return 2 * x }, 1e-10, 100)
				assert.NoError(t, err)
				assert.InDelta(t, math.Sqrt2, rv, 1e-9)
			}
		}()
	}
	wg.Wait()
}
