package mat_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a matrix from int64 rows, failing the test on bad shapes.
func mk(t *testing.T, rows [][]int64) *mat.Matrix {
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

// cell reads one entry as int64.
func cell(t *testing.T, m *mat.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v.Int64()
}

// TestNew_BadShape verifies that negative dimensions are rejected.
func TestNew_BadShape(t *testing.T) {
	_, err := mat.New(-1, 2)
	assert.ErrorIs(t, err, mat.ErrBadShape, "negative rows must error")
	_, err = mat.New(2, -1)
	assert.ErrorIs(t, err, mat.ErrBadShape, "negative cols must error")
}

// TestAtSet_OutOfRange verifies bounds checking on access.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := mat.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
	err = m.Set(0, 5, big.NewInt(1))
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

// TestProduct verifies an exact 2×2 product and a shape mismatch.
func TestProduct(t *testing.T) {
	a := mk(t, [][]int64{{1, 2}, {3, 4}})
	b := mk(t, [][]int64{{5, 6}, {7, 8}})

	p, err := mat.Product(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(19), cell(t, p, 0, 0))
	assert.Equal(t, int64(22), cell(t, p, 0, 1))
	assert.Equal(t, int64(43), cell(t, p, 1, 0))
	assert.Equal(t, int64(50), cell(t, p, 1, 1))

	c := mk(t, [][]int64{{1, 2, 3}})
	_, err = mat.Product(c, a)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch, "1×3 · 2×2 must mismatch")
}

// TestVecProduct verifies the row-vector product used by preimages.
func TestVecProduct(t *testing.T) {
	m := mk(t, [][]int64{{1, 0, 2}, {0, 1, -1}})
	v := []*big.Int{big.NewInt(3), big.NewInt(4)}

	out, err := mat.VecProduct(v, m)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, int64(3), out[0].Int64())
	assert.Equal(t, int64(4), out[1].Int64())
	assert.Equal(t, int64(2), out[2].Int64())
}

// TestInverse verifies M·Inv = d·I on an integer matrix with a
// non-trivial denominator.
func TestInverse(t *testing.T) {
	m := mk(t, [][]int64{{2, 1}, {1, 1}}) // det = 1
	inv, d, err := mat.Inverse(m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Int64(), "unimodular matrix needs no denominator")
	assert.Equal(t, int64(1), cell(t, inv, 0, 0))
	assert.Equal(t, int64(-1), cell(t, inv, 0, 1))

	m2 := mk(t, [][]int64{{2, 0}, {0, 3}})
	inv2, d2, err := mat.Inverse(m2)
	require.NoError(t, err)
	// 6·I = M·Inv with Inv = diag(3, 2)
	assert.Equal(t, int64(6), d2.Int64())
	assert.Equal(t, int64(3), cell(t, inv2, 0, 0))
	assert.Equal(t, int64(2), cell(t, inv2, 1, 1))

	prod, err := mat.Product(m2, inv2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cell(t, prod, 0, 0))
	assert.Equal(t, int64(0), cell(t, prod, 0, 1))
	assert.Equal(t, int64(6), cell(t, prod, 1, 1))
}

// TestInverse_Singular verifies the singularity sentinel.
func TestInverse_Singular(t *testing.T) {
	m := mk(t, [][]int64{{1, 2}, {2, 4}})
	_, _, err := mat.Inverse(m)
	assert.ErrorIs(t, err, mat.ErrSingular)
}

// TestDropRowsCols verifies structural removal.
func TestDropRowsCols(t *testing.T) {
	m := mk(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	r, err := m.DropRows(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Rows())
	assert.Equal(t, int64(7), cell(t, r, 1, 0))

	c, err := m.DropCols(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Cols())
	assert.Equal(t, int64(3), cell(t, c, 0, 0))
	assert.Equal(t, int64(9), cell(t, c, 2, 0))
}

// TestNullspace verifies an integer kernel basis of a rank-1 matrix.
func TestNullspace(t *testing.T) {
	m := mk(t, [][]int64{{1, 1, -2}})
	ns, err := mat.Nullspace(m)
	require.NoError(t, err)
	require.Equal(t, 2, ns.Rows(), "rank 1 in 3 columns leaves a 2-dim kernel")
	// every basis row must be orthogonal to (1, 1, −2)
	for i := 0; i < ns.Rows(); i++ {
		dot := mat.InnerProduct(m.Row(0), ns.Row(i))
		assert.Zero(t, dot.Sign(), "kernel vector %d not orthogonal", i)
	}

	full := mk(t, [][]int64{{1, 0}, {0, 1}})
	ns2, err := mat.Nullspace(full)
	require.NoError(t, err)
	assert.Equal(t, 0, ns2.Rows(), "full column rank has a trivial kernel")
}

// TestSeqHelpers exercises the row-level helpers the constraint code
// leans on.
func TestSeqHelpers(t *testing.T) {
	s := []*big.Int{big.NewInt(4), big.NewInt(-6), big.NewInt(10)}
	assert.Equal(t, int64(2), mat.GcdSeq(s).Int64())

	mat.NormalizeSeq(s)
	assert.Equal(t, int64(2), s[0].Int64())
	assert.Equal(t, int64(-3), s[1].Int64())

	assert.Equal(t, 0, mat.FirstNonZero(s))
	assert.True(t, mat.IsZeroSeq(mat.NewSeq(3)))

	a := []*big.Int{big.NewInt(1), big.NewInt(2)}
	b := []*big.Int{big.NewInt(3), big.NewInt(-1)}
	dst := mat.NewSeq(2)
	mat.CombineSeq(dst, a, b, big.NewInt(2), big.NewInt(3)) // 2a + 3b
	assert.Equal(t, int64(11), dst[0].Int64())
	assert.Equal(t, int64(1), dst[1].Int64())

	assert.Equal(t, int64(1), mat.InnerProduct(a, b).Int64())
}
