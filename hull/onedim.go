// Package hull: the 1-D specialization.
//
// In one dimension the convex hull of a union of intervals is the
// interval from the least lower bound to the greatest upper bound, so
// no LP is needed: fractions c₀/c₁ are compared by cross-multiplication.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// bound1D is one side of an interval: the row that realizes it.
type bound1D struct {
	row []*big.Int
}

// lowerLess reports value(a) < value(b) for two lower-bound rows
// (coefficient > 0), comparing −a₀/a₁ against −b₀/b₁ by cross
// multiplication with positive denominators.
func lowerLess(a, b []*big.Int) bool {
	// value = −c₀/c₁ with c₁ > 0
	l := new(big.Int).Mul(new(big.Int).Neg(a[0]), b[1])
	r := new(big.Int).Mul(new(big.Int).Neg(b[0]), a[1])

	return l.Cmp(r) < 0
}

// upperLess reports value(a) < value(b) for two upper-bound rows
// (coefficient < 0): value = c₀/(−c₁).
func upperLess(a, b []*big.Int) bool {
	na := new(big.Int).Neg(a[1]) // > 0
	nb := new(big.Int).Neg(b[1]) // > 0
	l := new(big.Int).Mul(a[0], nb)
	r := new(big.Int).Mul(b[0], na)

	return l.Cmp(r) < 0
}

// convexHull1D computes the hull of a union of 1-D basic sets.
// Per part, the tightest lower and upper bounds are collected (an
// equality is both); a part lacking a side removes that side from the
// union. Contradictory parts are skipped as empty. The output has 0,
// 1 or 2 inequalities.
func convexHull1D(s *poly.Set) (*poly.BasicSet, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	var lower, upper *bound1D
	haveLower, haveUpper := true, true
	any := false

	for i := 0; i < s.Len(); i++ {
		p := s.Part(i).Copy()
		if err := p.Simplify(); err != nil {
			return nil, err
		}
		if p.MarkedEmpty() {
			continue
		}

		var pl, pu []*big.Int // the part's tightest bounds
		consider := func(row []*big.Int) {
			switch row[1].Sign() {
			case 1:
				if pl == nil || lowerLess(pl, row) {
					pl = row
				}
			case -1:
				if pu == nil || upperLess(row, pu) {
					pu = row
				}
			}
		}
		for k := 0; k < p.NEq(); k++ {
			e := p.Equality(k)
			consider(e)
			neg := mat.CpySeq(e)
			mat.NegSeq(neg)
			consider(neg)
		}
		for k := 0; k < p.NIneq(); k++ {
			consider(p.Inequality(k))
		}

		// a contradictory pair the cheap pass missed means an empty part
		if pl != nil && pu != nil {
			gap := new(big.Int).Mul(new(big.Int).Neg(pl[0]), new(big.Int).Neg(pu[1]))
			gap.Sub(gap, new(big.Int).Mul(pu[0], pl[1]))
			if gap.Sign() > 0 {
				continue // lower > upper: empty part
			}
		}
		any = true

		// fold into the union: the weaker bound on each side wins
		if pl == nil {
			haveLower = false
		} else if haveLower {
			if lower == nil || lowerLess(pl, lower.row) {
				lower = &bound1D{row: mat.CpySeq(pl)}
			}
		}
		if pu == nil {
			haveUpper = false
		} else if haveUpper {
			if upper == nil || upperLess(upper.row, pu) {
				upper = &bound1D{row: mat.CpySeq(pu)}
			}
		}
	}

	if !any {
		return poly.EmptyBasicSet(s.Space()), nil
	}
	res := poly.Universe(s.Space())
	if haveLower && lower != nil {
		mat.NormalizeSeq(lower.row)
		if err := res.AddInequality(lower.row); err != nil {
			return nil, err
		}
	}
	if haveUpper && upper != nil {
		mat.NormalizeSeq(upper.row)
		if err := res.AddInequality(upper.row); err != nil {
			return nil, err
		}
	}
	if err := res.Simplify(); err != nil {
		return nil, err
	}
	res.SetRational()
	res.Finalize()

	return res, nil
}
