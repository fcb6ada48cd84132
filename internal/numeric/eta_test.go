package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtaOne(t *testing.T) {
	got, err := Eta(1)
	require.NoError(t, err)
	assert.Equal(t, math.Ln2, got, "η(1) is exact, not a truncated series")
}

func TestEtaZetaRelation(t *testing.T) {
	// η(s) = (1 - 2^(1-s))·ζ(s) for s > 1.
	for _, s := range []float64{2, 3, 4} {
		eta, err := Eta(s)
		require.NoError(t, err, "eta(%v)", s)
		zeta, err := Zeta(s)
		require.NoError(t, err, "zeta(%v)", s)
		assert.InDelta(t, (1-math.Pow(2, 1-s))*zeta, eta, 1e-9, "eta(%v)", s)
	}
}

func TestEtaKnownValues(t *testing.T) {
	got, err := Eta(2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/12, got, 1e-9)

	got, err = Eta(4)
	require.NoError(t, err)
	assert.InDelta(t, 7*math.Pow(math.Pi, 4)/720, got, 1e-9)
}

func TestEtaAlternatingSeries(t *testing.T) {
	// Inside (0, 1) the relation is unavailable and the alternating series
	// hits its cap; the partial sum is bounded by the first omitted term.
	got, err := Eta(0.5)
	assert.ErrorIs(t, err, ErrDidNotConverge)
	assert.InDelta(t, 0.6048986434216303, got, 1e-3)
}

func TestEtaDomain(t *testing.T) {
	for _, s := range []float64{0, -1, -10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Eta(s)
		assert.ErrorIs(t, err, ErrDomain, "eta(%v)", s)
	}
}

func TestEtaNearOneWarning(t *testing.T) {
	// Just above 1 the zeta delegate cannot converge; eta reports that
	// instead of hiding it.
	_, err := Eta(1.001)
	assert.ErrorIs(t, err, ErrDidNotConverge)
}
