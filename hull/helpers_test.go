package hull_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/poly"
	"github.com/stretchr/testify/require"
)

// bset assembles a basic set from int64 rows.
func bset(t *testing.T, space poly.Space, eqs, ineqs [][]int64) *poly.BasicSet {
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

// uset wraps basic sets into a union.
func uset(t *testing.T, space poly.Space, parts ...*poly.BasicSet) *poly.Set {
	t.Helper()
	s := poly.NewSet(space)
	for _, p := range parts {
		require.NoError(t, s.Add(p))
	}

	return s
}

// point builds the basic set {x = coords}.
func point(t *testing.T, coords ...int64) *poly.BasicSet {
	t.Helper()
	b := poly.Universe(poly.NewSpace(0, len(coords)))
	for i, c := range coords {
		row := make([]int64, 1+len(coords))
		row[0] = -c
		row[1+i] = 1
		require.NoError(t, b.AddEqualityInt64(row...))
	}

	return b
}

// hasIneq reports whether h holds the inequality row verbatim
// (rows are compared after the engine's own normalization).
func hasIneq(h *poly.BasicSet, want []int64) bool {
	for i := 0; i < h.NIneq(); i++ {
		row := h.Inequality(i)
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

// hasEq reports whether h holds the equality row in either orientation.
func hasEq(h *poly.BasicSet, want []int64) bool {
	match := func(row []*big.Int, sign int64) bool {
		for j, v := range want {
			if row[j].Int64() != sign*v {
				return false
			}
		}

		return true
	}
	for i := 0; i < h.NEq(); i++ {
		if match(h.Equality(i), 1) || match(h.Equality(i), -1) {
			return true
		}
	}

	return false
}

// minOverBasicSet returns the status and exact minimum of an affine
// objective over a basic set.
func minOverBasicSet(t *testing.T, b *poly.BasicSet, objRow ...int64) (lp.Status, *big.Rat) {
	t.Helper()
	o := make([]*big.Int, len(objRow))
	for i, v := range objRow {
		o[i] = big.NewInt(v)
	}
	st, opt, err := lp.Solve(b, false, o, big.NewInt(1))
	require.NoError(t, err)

	return st, opt
}

// ratInt builds the exact rational n/1.
func ratInt(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// assertSubset checks S ⊆ H with the LP: every constraint of H has a
// non-negative minimum over every part of S.
func assertSubset(t *testing.T, s *poly.Set, h *poly.BasicSet) {
	t.Helper()
	one := big.NewInt(1)
	check := func(row []*big.Int, eq bool) {
		for i := 0; i < s.Len(); i++ {
			tab, err := lp.FromBasicSet(s.Part(i))
			require.NoError(t, err)
			st, opt, err := tab.Min(row, one)
			require.NoError(t, err)
			if st == lp.StatusEmpty {
				continue
			}
			require.Equal(t, lp.StatusOK, st, "part %d unbounded along a hull constraint", i)
			require.True(t, opt.Sign() >= 0,
				"part %d violates hull constraint (min %s)", i, opt)
			if eq {
				require.Zero(t, opt.Sign(), "part %d off the hull equality", i)
			}
		}
	}
	for k := 0; k < h.NEq(); k++ {
		check(h.Equality(k), true)
		neg := make([]*big.Int, len(h.Equality(k)))
		for j, v := range h.Equality(k) {
			neg[j] = new(big.Int).Neg(v)
		}
		check(neg, true)
	}
	for k := 0; k < h.NIneq(); k++ {
		check(h.Inequality(k), false)
	}
}
