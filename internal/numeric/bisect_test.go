package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := Bisect(1, 2, f, 1e-12, 200)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

func TestBisectCosine(t *testing.T) {
	root, err := Bisect(1, 2, math.Cos, 1e-12, 200)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-9)
}

func TestBisectEndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x }

	root, err := Bisect(0, 1, f, 1e-10, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, root)
}

func TestBisectInvalidArguments(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	_, err := Bisect(3, 5, f, 1e-10, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument, "no sign change")

	_, err = Bisect(2, 1, f, 1e-10, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument, "reversed bracket")

	_, err = Bisect(1, 2, nil, 1e-10, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument, "nil function")

	_, err = Bisect(1, 2, f, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument, "zero tolerance")

	_, err = Bisect(math.Inf(-1), 2, f, 1e-10, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument, "infinite bracket")
}

func TestBisectDidNotConverge(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := Bisect(1, 2, f, 1e-14, 4)
	assert.ErrorIs(t, err, ErrDidNotConverge)
	assert.InDelta(t, math.Sqrt2, root, 0.1)
}
