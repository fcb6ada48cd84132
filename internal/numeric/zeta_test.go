package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"
)

func TestZetaKnownValues(t *testing.T) {
	got, err := Zeta(2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/6, got, 1e-9, "Basel problem")

	got, err = Zeta(4)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(math.Pi, 4)/90, got, 1e-9)
}

func TestZetaAgainstGonum(t *testing.T) {
	// ζ(s) is the Hurwitz zeta at q = 1. Terms under 1/n^s reach the
	// tolerance within the cap for s >= 3, so the series is authoritative.
	for _, s := range []float64{3, 3.5, 5, 7, 10, 25} {
		got, err := Zeta(s)
		require.NoError(t, err, "zeta(%v)", s)
		assert.InDelta(t, mathext.Zeta(s, 1), got, 1e-9, "zeta(%v)", s)
	}
}

func TestZetaDomain(t *testing.T) {
	for _, s := range []float64{1, 0.5, 0, -1, -7.3, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Zeta(s)
		assert.ErrorIs(t, err, ErrDomain, "zeta(%v)", s)
	}
}

func TestZetaSeriesCap(t *testing.T) {
	// Just above s = 1 the tolerance is unreachable inside the cap; the
	// partial sum still comes back as a usable lower estimate.
	got, err := Zeta(1.01)
	assert.ErrorIs(t, err, ErrDidNotConverge)
	assert.Greater(t, got, 1.0)
	assert.Less(t, got, mathext.Zeta(1.01, 1))
}

func TestZetaMonotoneTail(t *testing.T) {
	// ζ decreases toward 1 as s grows.
	a, err := Zeta(3)
	require.NoError(t, err)
	b, err := Zeta(10)
	require.NoError(t, err)
	assert.Greater(t, a, b)
	assert.Greater(t, b, 1.0)
}
