package lp_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build assembles a basic set from int64 rows.
func build(t *testing.T, space poly.Space, eqs, ineqs [][]int64) *poly.BasicSet {
	t.Helper()
	b := poly.Universe(space)
	for _, e := range eqs {
		require.NoError(t, b.AddEqualityInt64(e...))
	}
	for _, in := range ineqs {
		require.NoError(t, b.AddInequalityInt64(in...))
	}

	return b
}

// obj converts int64 values into an objective row.
func obj(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}

	return out
}

// ratIs asserts an exact rational value.
func ratIs(t *testing.T, r *big.Rat, num, den int64) {
	t.Helper()
	assert.Zero(t, r.Cmp(big.NewRat(num, den)), "want %d/%d, got %s", num, den, r)
}

// TestSolve_Box verifies exact minima and maxima over an interval.
func TestSolve_Box(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{0, 1}, {10, -1}})

	st, opt, err := lp.Solve(b, false, obj(0, 1), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, lp.StatusOK, st)
	ratIs(t, opt, 0, 1)

	st, opt, err = lp.Solve(b, true, obj(0, 1), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, lp.StatusOK, st)
	ratIs(t, opt, 10, 1)

	// affine objective with a denominator: (3 + 2x)/4 at x = 0
	st, opt, err = lp.Solve(b, false, obj(3, 2), big.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, lp.StatusOK, st)
	ratIs(t, opt, 3, 4)
}

// TestSolve_RationalVertex verifies a fractional optimum: the
// intersection of 2x ≥ 1 with x ≤ 1 has its minimum at 1/2.
func TestSolve_RationalVertex(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{-1, 2}, {1, -1}})

	st, opt, err := lp.Solve(b, false, obj(0, 1), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, lp.StatusOK, st)
	ratIs(t, opt, 1, 2)
}

// TestSolve_Unbounded verifies the unbounded outcome is data.
func TestSolve_Unbounded(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{0, 1}}) // x ≥ 0

	st, _, err := lp.Solve(b, true, obj(0, 1), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, lp.StatusUnbounded, st)
}

// TestSolve_Empty verifies infeasibility detection without any
// pre-simplification.
func TestSolve_Empty(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{-1, 1}, {0, -1}}) // x ≥ 1, x ≤ 0

	st, _, err := lp.Solve(b, false, obj(0, 1), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, lp.StatusEmpty, st)
}

// TestSolve_BadInput verifies the malformed-query sentinels.
func TestSolve_BadInput(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, nil)

	_, _, err := lp.Solve(b, false, obj(0, 1, 5), big.NewInt(1))
	assert.ErrorIs(t, err, lp.ErrBadObjective)

	_, _, err = lp.Solve(b, false, obj(0, 1), big.NewInt(0))
	assert.ErrorIs(t, err, lp.ErrBadDenominator)
}

// TestSampleVertex verifies a rational point inside the set.
func TestSampleVertex(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{-2, 1}, {5, -1}}) // 2 ≤ x ≤ 5
	tab, err := lp.FromBasicSet(b)
	require.NoError(t, err)

	st, pt, err := tab.SampleVertex()
	require.NoError(t, err)
	require.Equal(t, lp.StatusOK, st)
	require.Len(t, pt, 1)
	assert.True(t, pt[0].Cmp(big.NewRat(2, 1)) >= 0 && pt[0].Cmp(big.NewRat(5, 1)) <= 0,
		"sample %s outside [2,5]", pt[0])
}

// TestDetectImplicitEqualities verifies the promotion of a pinned pair.
func TestDetectImplicitEqualities(t *testing.T) {
	b := build(t, poly.NewSpace(0, 2), nil, [][]int64{
		{-1, 1, 1}, // x + y ≥ 1
		{1, -1, -1}, // x + y ≤ 1
		{0, 1, 0},  // x ≥ 0
	})
	tab, err := lp.FromBasicSet(b)
	require.NoError(t, err)
	require.NoError(t, tab.DetectImplicitEqualities())

	assert.Equal(t, 2, b.NEq(), "both orientations of the pinned pair promote")
	assert.Equal(t, 1, b.NIneq())
	assert.True(t, b.HasFlag(poly.FlagNoImplicit))
}

// TestDetectRedundant verifies LP-backed redundancy removal.
func TestDetectRedundant(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{
		{0, 1},   // x ≥ 0   (implied by x ≥ 2)
		{10, -1}, // x ≤ 10
		{-2, 1},  // x ≥ 2
	})
	tab, err := lp.FromBasicSet(b)
	require.NoError(t, err)
	require.NoError(t, tab.DetectRedundant())

	assert.Equal(t, 2, b.NIneq())
	assert.True(t, b.HasFlag(poly.FlagNoRedundant))
}

// TestConeIsBounded verifies the recession-cone test on a box and on
// a halfplane.
func TestConeIsBounded(t *testing.T) {
	box := build(t, poly.NewSpace(0, 2), nil, [][]int64{
		{0, 1, 0}, {1, -1, 0}, {0, 0, 1}, {1, 0, -1},
	})
	tab, err := lp.FromRecessionCone(box)
	require.NoError(t, err)
	bounded, err := tab.ConeIsBounded()
	require.NoError(t, err)
	assert.True(t, bounded, "a box recedes to the origin only")

	half := build(t, poly.NewSpace(0, 2), nil, [][]int64{{0, 1, 0}})
	tab, err = lp.FromRecessionCone(half)
	require.NoError(t, err)
	bounded, err = tab.ConeIsBounded()
	require.NoError(t, err)
	assert.False(t, bounded, "a halfplane recedes forever")
}

// TestEmptyFlagShortCircuit verifies that a flagged-empty set answers
// without running the simplex.
func TestEmptyFlagShortCircuit(t *testing.T) {
	b := poly.EmptyBasicSet(poly.NewSpace(0, 3))
	st, _, err := lp.Solve(b, false, obj(0, 1, 0, 0), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, lp.StatusEmpty, st)
}
