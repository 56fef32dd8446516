package poly_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds an exact matrix from int64 rows.
func mustMatrix(t *testing.T, rows [][]int64) *mat.Matrix {
	t.Helper()
	bigRows := make([][]*big.Int, len(rows))
	for i, r := range rows {
		bigRows[i] = make([]*big.Int, len(r))
		for j, v := range r {
			bigRows[i][j] = big.NewInt(v)
		}
	}
	m, err := mat.FromRows(bigRows)
	require.NoError(t, err)

	return m
}

// build assembles a basic set from int64 rows; nil slices are allowed.
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

// hasEq reports whether b holds the equality row (exact match, either
// orientation).
func hasEq(b *poly.BasicSet, want []int64) bool {
	match := func(row []*big.Int, sign int64) bool {
		for j, v := range want {
			if row[j].Int64() != sign*v {
				return false
			}
		}

		return true
	}
	for i := 0; i < b.NEq(); i++ {
		if match(b.Equality(i), 1) || match(b.Equality(i), -1) {
			return true
		}
	}

	return false
}

// hasIneq reports whether b holds the inequality row verbatim.
func hasIneq(b *poly.BasicSet, want []int64) bool {
	for i := 0; i < b.NIneq(); i++ {
		row := b.Inequality(i)
		ok := true
		for j, v := range want {
			if row[j].Int64() != v {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// TestAddConstraint_BadRow verifies the row-length contract.
func TestAddConstraint_BadRow(t *testing.T) {
	b := poly.Universe(poly.NewSpace(0, 2))
	err := b.AddInequalityInt64(1, 2)
	assert.ErrorIs(t, err, poly.ErrBadRow, "2-dim sets need rows of length 3")
}

// TestGauss_Substitution verifies echelon reduction and substitution
// into inequalities.
func TestGauss_Substitution(t *testing.T) {
	b := build(t, poly.NewSpace(0, 2),
		[][]int64{{-2, 1, 1}, {0, 1, -1}}, // x+y=2, x=y
		[][]int64{{0, 1, 0}},              // x ≥ 0
	)
	require.NoError(t, b.Simplify())

	assert.Equal(t, 2, b.NEq())
	assert.True(t, hasEq(b, []int64{-1, 1, 0}), "x = 1 expected")
	assert.True(t, hasEq(b, []int64{-1, 0, 1}), "y = 1 expected")
	assert.Zero(t, b.NIneq(), "x ≥ 0 became trivial after substitution")
}

// TestGauss_Contradiction verifies that 0 = c empties the set.
func TestGauss_Contradiction(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1),
		[][]int64{{0, 1}, {-1, 1}}, // x = 0 and x = 1
		nil,
	)
	require.NoError(t, b.Gauss())
	assert.True(t, b.MarkedEmpty())
}

// TestSimplify_DedupAndPair verifies constraint deduplication and the
// promotion of an opposed inequality pair to an equality.
func TestSimplify_DedupAndPair(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil,
		[][]int64{{0, 1}, {-2, 1}, {10, -1}}, // x≥0, x≥2, x≤10
	)
	require.NoError(t, b.Simplify())
	assert.Equal(t, 2, b.NIneq(), "same-direction rows collapse to the tighter one")
	assert.True(t, hasIneq(b, []int64{-2, 1}))
	assert.True(t, hasIneq(b, []int64{10, -1}))

	pair := build(t, poly.NewSpace(0, 1), nil,
		[][]int64{{-3, 1}, {3, -1}}, // x ≥ 3 and x ≤ 3
	)
	require.NoError(t, pair.Simplify())
	assert.Equal(t, 1, pair.NEq(), "touching opposed pair pins x = 3")
	assert.Zero(t, pair.NIneq())

	contra := build(t, poly.NewSpace(0, 1), nil,
		[][]int64{{-3, 1}, {2, -1}}, // x ≥ 3 and x ≤ 2
	)
	require.NoError(t, contra.Simplify())
	assert.True(t, contra.MarkedEmpty())
}

// TestIntersect verifies conjunction and flag handling.
func TestIntersect(t *testing.T) {
	a := build(t, poly.NewSpace(0, 1), nil, [][]int64{{0, 1}})
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{5, -1}})

	c, err := poly.Intersect(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.NIneq())

	other := poly.Universe(poly.NewSpace(0, 2))
	_, err = poly.Intersect(a, other)
	assert.ErrorIs(t, err, poly.ErrSpaceMismatch)
}

// TestEliminateVars_FM verifies Fourier–Motzkin combination.
func TestEliminateVars_FM(t *testing.T) {
	b := build(t, poly.NewSpace(0, 2), nil, [][]int64{
		{0, 1, 0},  // x ≥ 0
		{2, -1, 0}, // x ≤ 2
		{0, 0, 1},  // y ≥ 0
		{3, 0, -1}, // y ≤ 3
		{0, -1, 1}, // y ≥ x
	})
	require.NoError(t, b.EliminateVars(1, 1)) // drop y

	assert.True(t, hasIneq(b, []int64{3, -1, 0}), "x ≤ 3 from x ≤ y ≤ 3")
	for i := 0; i < b.NIneq(); i++ {
		assert.Zero(t, b.Inequality(i)[2].Sign(), "y must not appear anymore")
	}
}

// TestProjectOutVars verifies column dropping and space shrink.
func TestProjectOutVars(t *testing.T) {
	b := build(t, poly.NewSpace(0, 2), nil, [][]int64{
		{0, 1, 0}, {2, -1, 0}, {0, 0, 1}, {1, 0, -1},
	})
	require.NoError(t, b.ProjectOutVars(1, 1))
	assert.Equal(t, 1, b.Space().Dims)
	assert.True(t, hasIneq(b, []int64{0, 1}))
	assert.True(t, hasIneq(b, []int64{2, -1}))
}

// TestPreimageMatrix verifies the homogeneous transform x = 2y.
func TestPreimageMatrix(t *testing.T) {
	b := build(t, poly.NewSpace(0, 1), nil, [][]int64{{4, -1}}) // x ≤ 4
	m := mustMatrix(t, [][]int64{{1, 0}, {0, 2}})               // x̂ = (1, 2y)

	res, err := b.PreimageMatrix(m)
	require.NoError(t, err)
	assert.True(t, hasIneq(res, []int64{2, -1}), "x ≤ 4 becomes y ≤ 2")
}

// TestSubstituteZero verifies slicing by a coordinate plane.
func TestSubstituteZero(t *testing.T) {
	b := build(t, poly.NewSpace(0, 2), nil, [][]int64{
		{-1, 1, 1}, // x + y ≥ 1
	})
	require.NoError(t, b.SubstituteZero(0, 1)) // x := 0
	assert.Equal(t, 1, b.Space().Dims)
	assert.True(t, hasIneq(b, []int64{-1, 1}), "y ≥ 1 remains")
}

// TestRemoveDivs verifies that the floor relation survives projection
// as its two bounding inequalities.
func TestRemoveDivs(t *testing.T) {
	// q = ⌊x/2⌋ with y = q
	b := poly.Universe(poly.NewSpace(0, 2))
	require.NoError(t, b.AttachDivInt64(2, 0, 1, 0)) // denom 2, numerator x
	require.NoError(t, b.AddEqualityInt64(0, 0, 1, -1))  // y − q = 0

	require.NoError(t, b.RemoveDivs())
	assert.Zero(t, b.NDiv())
	assert.True(t, hasIneq(b, []int64{0, 1, -2}), "x − 2y ≥ 0")
	assert.True(t, hasIneq(b, []int64{1, -1, 2}), "2y − x + 1 ≥ 0")
}

// TestSetNormalize verifies part-level cleanup and deduplication.
func TestSetNormalize(t *testing.T) {
	s := poly.NewSet(poly.NewSpace(0, 1))
	require.NoError(t, s.Add(build(t, poly.NewSpace(0, 1), nil, [][]int64{{0, 1}})))
	require.NoError(t, s.Add(build(t, poly.NewSpace(0, 1), nil, [][]int64{{0, 1}})))
	require.NoError(t, s.Add(build(t, poly.NewSpace(0, 1), nil, [][]int64{{-3, 1}, {2, -1}})))

	require.NoError(t, s.Normalize())
	assert.Equal(t, 1, s.Len(), "duplicate part merged, empty part dropped")
}

// TestUnderlyingSetAndOverlay verifies the flatten/overlay round trip.
func TestUnderlyingSetAndOverlay(t *testing.T) {
	space := poly.NewSpace(1, 1) // one parameter, one dim
	b := build(t, space, nil, [][]int64{{0, -1, 1}}) // x ≥ n
	s := poly.NewSet(space)
	require.NoError(t, s.Add(b.Copy()))

	pure, err := s.UnderlyingSet()
	require.NoError(t, err)
	require.Equal(t, 1, pure.Len())
	assert.Equal(t, poly.NewSpace(0, 2), pure.Space())

	model := b.SchemaModel()
	back, err := poly.OverlayModel(model, pure.Part(0))
	require.NoError(t, err)
	assert.Equal(t, space, back.Space())
	assert.Equal(t, 1, back.NIneq())
}
