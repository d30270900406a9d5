package ordered_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ordreg/ordered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForward_EmptyInput verifies that a zero-length vector is rejected
// with ErrEmptyVector by every operation.
func TestForward_EmptyInput(t *testing.T) {
	_, err := ordered.Forward(nil)
	assert.ErrorIs(t, err, ordered.ErrEmptyVector, "Forward(nil) must error")

	_, err = ordered.Inverse([]float64{})
	assert.ErrorIs(t, err, ordered.ErrEmptyVector, "Inverse(empty) must error")

	_, err = ordered.LogAbsDetJacobian(nil)
	assert.ErrorIs(t, err, ordered.ErrEmptyVector, "LogAbsDetJacobian(nil) must error")

	_, err = ordered.LogAbsDetJacobianFromOrdered(nil)
	assert.ErrorIs(t, err, ordered.ErrEmptyVector, "LogAbsDetJacobianFromOrdered(nil) must error")
}

// TestForward_ZeroVector checks the worked example u = [0,0,0]:
// exp(0) = 1, so the cumulative sums land exactly on [0,1,2].
func TestForward_ZeroVector(t *testing.T) {
	c, err := ordered.Forward([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, c, "unit increments from zero log-gaps")

	j, err := ordered.LogAbsDetJacobian([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, j, "empty-ish sum: 0 + 0")

	u, err := ordered.Inverse(c)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, u, "round-trip recovers the zero vector")
}

// TestForward_LogGaps checks the second worked example:
// u = [1, log 2, log 3] → c = [1, 3, 6], and Inverse recovers u.
func TestForward_LogGaps(t *testing.T) {
	u := []float64{1, math.Log(2), math.Log(3)}

	c, err := ordered.Forward(u)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3, 6}, c, 1e-12, "gaps of 2 and 3")

	back, err := ordered.Inverse([]float64{1, 3, 6})
	require.NoError(t, err)
	assert.InDeltaSlice(t, u, back, 1e-12, "Inverse([1,3,6]) is [1, log 2, log 3]")
}

// TestForward_Identity verifies the k = 1 degenerate case: Forward is the
// identity and the Jacobian term is an empty sum.
func TestForward_Identity(t *testing.T) {
	c, err := ordered.Forward([]float64{-3.75})
	require.NoError(t, err)
	assert.Equal(t, []float64{-3.75}, c)

	j, err := ordered.LogAbsDetJacobian([]float64{-3.75})
	require.NoError(t, err)
	assert.Equal(t, 0.0, j)

	u, err := ordered.Inverse([]float64{-3.75})
	require.NoError(t, err)
	assert.Equal(t, []float64{-3.75}, u)
}

// TestForward_RoundTripAndOrdering sweeps a grid of unconstrained vectors
// and asserts the two structural properties: Forward output is strictly
// increasing, and Inverse∘Forward is the identity within 1e-9.
func TestForward_RoundTripAndOrdering(t *testing.T) {
	cases := [][]float64{
		{0},
		{-5, 5},
		{2.5, -1, 0.25, 3},
		{-4, -4, -4, -4, -4},
		{0.001, 7.3, -2.2, 0, 1.5, -6},
	}

	for _, u := range cases {
		c, err := ordered.Forward(u)
		require.NoError(t, err)
		assert.True(t, ordered.IsStrictlyIncreasing(c), "Forward(%v) = %v must ascend", u, c)

		back, err := ordered.Inverse(c)
		require.NoError(t, err)
		assert.InDeltaSlice(t, u, back, 1e-9, "round-trip of %v", u)
	}
}

// TestForward_RoundTripLargeDynamicRange exercises alternating ±10
// coordinates: a gap of exp(−10) ≈ 4.5e-5 riding on a base of ≈ 2.2e4.
// Recovering that gap as c[i]−c[i-1] cancels to ~8e-8 relative precision,
// so log(gap) carries a ~3e-8 absolute error — the best float64 allows
// for this bijection. The tolerance reflects that, not a looser contract
// for ordinary magnitudes (those stay under the 1e-9 grid above).
func TestForward_RoundTripLargeDynamicRange(t *testing.T) {
	u := []float64{10, -10, 10, -10}

	c, err := ordered.Forward(u)
	require.NoError(t, err)
	assert.True(t, ordered.IsStrictlyIncreasing(c), "ordering survives the dynamic range")

	back, err := ordered.Inverse(c)
	require.NoError(t, err)
	assert.InDeltaSlice(t, u, back, 1e-7, "round-trip limited by gap cancellation")
}

// TestLogAbsDetJacobian_MatchesTailSum asserts the closed form: the
// Jacobian term equals the exact sum of u[1:], and the constrained-side
// formulation agrees on Forward(u).
func TestLogAbsDetJacobian_MatchesTailSum(t *testing.T) {
	u := []float64{0.5, -1.25, 2, 0.75}

	j, err := ordered.LogAbsDetJacobian(u)
	require.NoError(t, err)
	assert.Equal(t, -1.25+2+0.75, j, "sum over u[1:], exactly")

	c, err := ordered.Forward(u)
	require.NoError(t, err)

	jc, err := ordered.LogAbsDetJacobianFromOrdered(c)
	require.NoError(t, err)
	assert.InDelta(t, j, jc, 1e-9, "both parameterizations agree")
}

// TestInverse_NotAscending verifies the boundary error cases: decreasing,
// tied, and NaN-poisoned inputs all surface ErrNotAscending.
func TestInverse_NotAscending(t *testing.T) {
	_, err := ordered.Inverse([]float64{1.0, 0.5})
	assert.ErrorIs(t, err, ordered.ErrNotAscending, "decreasing pair must error")

	_, err = ordered.Inverse([]float64{2, 2, 3})
	assert.ErrorIs(t, err, ordered.ErrNotAscending, "tied pair must error")

	_, err = ordered.Inverse([]float64{0, math.NaN(), 1})
	assert.ErrorIs(t, err, ordered.ErrNotAscending, "NaN gap must error")

	_, err = ordered.LogAbsDetJacobianFromOrdered([]float64{1.0, 0.5})
	assert.ErrorIs(t, err, ordered.ErrNotAscending, "constrained-side Jacobian shares the check")
}

// TestIsStrictlyIncreasing covers the predicate directly, including the
// trivial lengths the transform itself refuses.
func TestIsStrictlyIncreasing(t *testing.T) {
	assert.True(t, ordered.IsStrictlyIncreasing(nil))
	assert.True(t, ordered.IsStrictlyIncreasing([]float64{4}))
	assert.True(t, ordered.IsStrictlyIncreasing([]float64{-1, 0, 0.5}))
	assert.False(t, ordered.IsStrictlyIncreasing([]float64{0, 0}))
	assert.False(t, ordered.IsStrictlyIncreasing([]float64{3, 1}))
	assert.False(t, ordered.IsStrictlyIncreasing([]float64{math.NaN()}))
}

// TestForward_DoesNotMutateInput guards the purity contract: inputs are
// read-only for all operations.
func TestForward_DoesNotMutateInput(t *testing.T) {
	u := []float64{1, 2, 3}
	_, err := ordered.Forward(u)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, u)

	c := []float64{1, 3, 6}
	_, err = ordered.Inverse(c)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 6}, c)
}
