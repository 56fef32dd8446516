package hull_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/hull"
	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimpleHull_Parametric covers the parametric pair
// {0 ≤ x ≤ n} ∪ {0 ≤ x ≤ n+1} → {0 ≤ x ≤ n+1}.
func TestSimpleHull_Parametric(t *testing.T) {
	space := poly.NewSpace(1, 1) // parameter n, dimension x
	s := uset(t, space,
		bset(t, space, nil, [][]int64{{0, 0, 1}, {0, 1, -1}}), // x ≥ 0, x ≤ n
		bset(t, space, nil, [][]int64{{0, 0, 1}, {1, 1, -1}}), // x ≥ 0, x ≤ n+1
	)

	h, err := hull.SimpleHull(s)
	require.NoError(t, err)
	assert.Equal(t, space, h.Space())
	assert.Equal(t, 2, h.NIneq())
	assert.True(t, hasIneq(h, []int64{0, 0, 1}), "x ≥ 0")
	assert.True(t, hasIneq(h, []int64{1, 1, -1}), "x ≤ n + 1")
	assertSubset(t, s, h)
}

// TestSimpleHull_Provenance verifies that every inequality of the
// result shares its coefficient vector (up to scale) with some input
// constraint and is no tighter than the original.
func TestSimpleHull_Provenance(t *testing.T) {
	space := poly.NewSpace(0, 2)
	p1 := bset(t, space, [][]int64{{0, 1, -1}}, [][]int64{{0, 1, 0}, {1, -1, 0}})  // y=x, 0≤x≤1
	p2 := bset(t, space, [][]int64{{0, 1, 1}}, [][]int64{{0, 1, 0}, {1, -1, 0}})   // y=−x, 0≤x≤1
	s := uset(t, space, p1, p2)

	h, err := hull.SimpleHull(s)
	require.NoError(t, err)
	assertSubset(t, s, h)

	// collect the input direction set (both orientations of equalities)
	type dir struct{ a, b int64 }
	dirs := map[dir]bool{}
	addDir := func(x, y int64) {
		g := gcd64(abs64(x), abs64(y))
		if g == 0 {
			return
		}
		dirs[dir{x / g, y / g}] = true
	}
	for i := 0; i < s.Len(); i++ {
		p := s.Part(i)
		for k := 0; k < p.NIneq(); k++ {
			addDir(p.Inequality(k)[1].Int64(), p.Inequality(k)[2].Int64())
		}
		for k := 0; k < p.NEq(); k++ {
			e := p.Equality(k)
			addDir(e[1].Int64(), e[2].Int64())
			addDir(-e[1].Int64(), -e[2].Int64())
		}
	}
	for k := 0; k < h.NIneq(); k++ {
		row := h.Inequality(k)
		x, y := row[1].Int64(), row[2].Int64()
		g := gcd64(abs64(x), abs64(y))
		require.NotZero(t, g)
		assert.True(t, dirs[dir{x / g, y / g}],
			"hull direction (%d,%d) has no input provenance", x, y)
	}
}

// TestSimpleHull_SingleBasicSet verifies the degenerate union.
func TestSimpleHull_SingleBasicSet(t *testing.T) {
	space := poly.NewSpace(0, 1)
	s := uset(t, space, bset(t, space, nil, [][]int64{{0, 1}, {10, -1}, {-2, 1}}))

	h, err := hull.SimpleHull(s)
	require.NoError(t, err)
	assert.Equal(t, 2, h.NIneq())
	assert.True(t, hasIneq(h, []int64{-2, 1}))
	assert.True(t, hasIneq(h, []int64{10, -1}))
}

// TestSimpleHull_RejectsUnboundedDirection verifies that a constraint
// whose direction another part leaves unbounded is rolled back.
func TestSimpleHull_RejectsUnboundedDirection(t *testing.T) {
	space := poly.NewSpace(0, 2)
	s := uset(t, space,
		bset(t, space, [][]int64{{0, 1, 0}}, [][]int64{{0, 0, 1}}),              // x=0, y≥0 (ray)
		bset(t, space, [][]int64{{0, 0, 1}}, [][]int64{{0, 1, 0}, {1, -1, 0}}),  // y=0, 0≤x≤1
	)

	h, err := hull.SimpleHull(s)
	require.NoError(t, err)
	assertSubset(t, s, h)
	assert.True(t, hasIneq(h, []int64{0, 0, 1}), "y ≥ 0 is shared")

	// y must stay unbounded above: no upper bound on y survives
	st, _ := minOverBasicSet(t, h, 0, 0, -1)
	assert.Equal(t, lp.StatusUnbounded, st)
}

// TestSimpleHull_Superset verifies simple_hull ⊇ convex_hull on a
// bounded union (the simple hull may be strictly looser).
func TestSimpleHull_Superset(t *testing.T) {
	space := poly.NewSpace(0, 2)
	s := uset(t, space, point(t, 0, 0), point(t, 1, 0), point(t, 0, 1))

	sh, err := hull.SimpleHull(s)
	require.NoError(t, err)
	ch, err := hull.ConvexHull(s)
	require.NoError(t, err)

	// every point of the exact hull satisfies the simple hull: check by
	// minimizing each simple-hull constraint over the exact hull
	chSet, err := poly.SetFromBasicSet(ch.Copy())
	require.NoError(t, err)
	assertSubset(t, chSet, sh)
}

// TestBoundedSimpleHull covers the dimension-bounding pass: two
// diagonal segments whose simple hull leaves y syntactically unbounded.
func TestBoundedSimpleHull(t *testing.T) {
	space := poly.NewSpace(0, 2)
	s := uset(t, space,
		bset(t, space, [][]int64{{0, 1, -1}}, [][]int64{{0, 1, 0}, {1, -1, 0}}),  // y=x, 0≤x≤1
		bset(t, space, [][]int64{{-1, 1, 1}}, [][]int64{{0, 1, 0}, {1, -1, 0}}),  // y=1−x, 0≤x≤1
	)

	h, err := hull.BoundedSimpleHull(s)
	require.NoError(t, err)
	assertSubset(t, s, h)

	// the projection bounds 0 ≤ y ≤ 1 must hold on the result
	st, min := minOverBasicSet(t, h, 0, 0, 1)
	require.Equal(t, lp.StatusOK, st)
	assert.True(t, min.Sign() >= 0, "min y = %s, want ≥ 0", min)
	st, negMax := minOverBasicSet(t, h, 0, 0, -1)
	require.Equal(t, lp.StatusOK, st)
	assert.True(t, negMax.Cmp(ratInt(-1)) >= 0, "max y = %s, want ≤ 1", new(big.Rat).Neg(negMax))
}

// TestSimpleHullMap verifies the relational wrapper.
func TestSimpleHullMap(t *testing.T) {
	m := poly.NewMap(1, 1, 0)
	b1, err := poly.BasicMapFromBasicSet(
		bset(t, poly.NewSpace(1, 1), nil, [][]int64{{0, 0, 1}, {0, 1, -1}}), 1, 0)
	require.NoError(t, err)
	b2, err := poly.BasicMapFromBasicSet(
		bset(t, poly.NewSpace(1, 1), nil, [][]int64{{0, 0, 1}, {1, 1, -1}}), 1, 0)
	require.NoError(t, err)
	require.NoError(t, m.Add(b1))
	require.NoError(t, m.Add(b2))

	bm, err := hull.SimpleHullMap(m)
	require.NoError(t, err)
	assert.True(t, hasIneq(bm.BasicSet(), []int64{1, 1, -1}), "x ≤ n + 1")
}

// gcd64 and abs64 keep the provenance test free of big.Int noise.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
