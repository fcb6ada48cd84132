package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmaBasic(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{1, 1},
		{2, 3},
		{3, 4},
		{4, 7},
		{6, 12},
		{12, 28},
		{16, 31},
		{10007, 10008}, // prime: 1 + p
		{360, 1170},
	}
	for _, tt := range tests {
		got, err := Sigma(tt.n)
		require.NoError(t, err, "sigma(%d)", tt.n)
		assert.Equal(t, tt.want, got, "sigma(%d)", tt.n)
	}
}

func TestSigmaPerfectNumbers(t *testing.T) {
	// σ(n) = 2n for the first four perfect numbers.
	for _, n := range []uint64{6, 28, 496, 8128} {
		got, err := Sigma(n)
		require.NoError(t, err, "sigma(%d)", n)
		assert.Equal(t, 2*n, got, "sigma(%d)", n)
	}
}

func TestSigmaInvalid(t *testing.T) {
	_, err := Sigma(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSigmaSquare(t *testing.T) {
	// Exact square roots count once: σ(36) = 1+2+3+4+6+9+12+18+36.
	got, err := Sigma(36)
	require.NoError(t, err)
	assert.Equal(t, uint64(91), got)
}

func TestAddChecked(t *testing.T) {
	sum, err := addChecked(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), sum)

	_, err = addChecked(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = addChecked(math.MaxUint64-5, 10)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestIsPerfect(t *testing.T) {
	for _, n := range []uint64{6, 28, 496, 8128} {
		ok, err := IsPerfect(n)
		require.NoError(t, err, "is_perfect(%d)", n)
		assert.True(t, ok, "is_perfect(%d)", n)
	}
	for _, n := range []uint64{0, 1, 2, 12, 100, 8127} {
		ok, err := IsPerfect(n)
		require.NoError(t, err, "is_perfect(%d)", n)
		assert.False(t, ok, "is_perfect(%d)", n)
	}
}
