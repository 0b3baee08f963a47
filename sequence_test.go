package funcalc_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcalc/funcalc"
)

func reciprocal() *funcalc.Sequence {
	return funcalc.NewSequence(func(n int) float64 { return 1 / float64(n) }, "reciprocal")
}

func TestSequence_Term(t *testing.T) {
	s := reciprocal()
	assert.Equal(t, "reciprocal", s.Name())
	assert.Equal(t, 0.25, s.Term(4))
}

func TestSequence_Terms(t *testing.T) {
	got := reciprocal().Terms(1, 4)
	assert.Equal(t, []float64{1, 0.5, 1.0 / 3, 0.25}, got)
}

func TestSequence_PartialSum(t *testing.T) {
	s := funcalc.NewSequence(func(n int) float64 { return float64(n) }, "n")
	assert.Equal(t, 10.0, s.PartialSum(1, 4))
	assert.Equal(t, 0.0, s.PartialSum(5, 4))
}

func TestSequence_Converges(t *testing.T) {
	assert.True(t, reciprocal().Converges(1_000_000, 1e-3))
	diverging := funcalc.NewSequence(func(n int) float64 { return float64(n) }, "n")
	assert.False(t, diverging.Converges(1_000_000, 1e-3))
}

func TestSequence_Limit(t *testing.T) {
	// n/(n+1) -> 1; successive terms settle quickly.
	s := funcalc.NewSequence(func(n int) float64 { return float64(n) / float64(n+1) }, "ratio")
	got, err := s.Limit(10_000, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-2)
}

func TestSequence_Limit_NonConvergence(t *testing.T) {
	alternating := funcalc.NewSequence(func(n int) float64 {
		if n%2 == 0 {
			return 1
		}
		return -1
	}, "alternating")
	_, err := alternating.Limit(100, 1e-6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, funcalc.ErrNonConvergence))
}
