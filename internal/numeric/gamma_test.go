package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaFactorial(t *testing.T) {
	// Γ(n) = (n-1)! for positive integers.
	want := 1.0
	for n := 1; n <= 10; n++ {
		got, err := Gamma(float64(n))
		require.NoError(t, err, "gamma(%d)", n)
		assert.InEpsilon(t, want, got, 1e-9, "gamma(%d)", n)
		want *= float64(n)
	}
}

func TestGammaHalf(t *testing.T) {
	got, err := Gamma(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi), got, 1e-9)
}

func TestGammaReflection(t *testing.T) {
	// Negative non-integers and small positives go through the
	// reflection branch; the standard library is the oracle.
	for _, x := range []float64{-0.5, -1.5, -2.5, -3.7, 0.1, 0.25, 0.49} {
		got, err := Gamma(x)
		require.NoError(t, err, "gamma(%v)", x)
		assert.InEpsilon(t, math.Gamma(x), got, 1e-9, "gamma(%v)", x)
	}
}

func TestGammaAgainstStdlib(t *testing.T) {
	for x := 0.5; x <= 20; x += 0.5 {
		got, err := Gamma(x)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Gamma(x), got, 1e-10, "gamma(%v)", x)
	}
}

func TestGammaPoles(t *testing.T) {
	for _, x := range []float64{0, -1, -2, -5, -100, -1e300} {
		_, err := Gamma(x)
		assert.ErrorIs(t, err, ErrPole, "gamma(%v)", x)
	}
}

func TestGammaDomain(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Gamma(x)
		assert.ErrorIs(t, err, ErrDomain, "gamma(%v)", x)
	}
}

func TestGammaOverflow(t *testing.T) {
	// Γ overflows float64 just past x = 171.6.
	_, err := Gamma(172)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err := Gamma(171)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0))

	// Large but representable values must not trip on intermediate
	// overflow in the power term.
	for _, x := range []float64{150, 160, 170.5} {
		got, err := Gamma(x)
		require.NoError(t, err, "gamma(%v)", x)
		assert.InEpsilon(t, math.Gamma(x), got, 1e-10, "gamma(%v)", x)
	}
}

func TestGammaRecurrence(t *testing.T) {
	// Γ(x) = (x-1)·Γ(x-1) validates the evaluation path across the
	// reflection boundary.
	for _, x := range []float64{1.5, 2.3, 5.75, 10.1} {
		hi, err := Gamma(x)
		require.NoError(t, err)
		lo, err := Gamma(x - 1)
		require.NoError(t, err)
		assert.InEpsilon(t, (x-1)*lo, hi, 1e-12, "recurrence at %v", x)
	}
}
