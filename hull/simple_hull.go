// Package hull: the simple-hull kernel.
//
// A simple hull is a superset of the union whose every inequality is a
// relaxed translate of a constraint already present in the input: same
// coefficient vector, constant loosened just enough to cover every
// part. It trades the exact hull's tightness for predictable cost —
// one LP probe per (constraint, part) pair at worst.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// SimpleHull computes a constraint-indexed superset of s as a single
// basic set over s's schema. Every inequality of the result shares its
// coefficient vector with some constraint of some part of s and has a
// constant no tighter than the original's.
//
// s is not retained or mutated.
func SimpleHull(s *poly.Set) (*poly.BasicSet, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	w := s.Copy()
	if err := w.AlignDivs(); err != nil {
		return nil, err
	}
	model := modelOf(w)
	pure, err := w.UnderlyingSet()
	if err != nil {
		return nil, err
	}
	hp, err := simpleHullPure(pure)
	if err != nil {
		return nil, err
	}
	res, err := poly.OverlayModel(model, hp)
	if err != nil {
		return nil, err
	}
	res.Finalize()

	return res, nil
}

// SimpleHullMap is SimpleHull on the underlying set of the relation m.
func SimpleHullMap(m *poly.Map) (*poly.BasicMap, error) {
	if m == nil {
		return nil, ErrNilSet
	}
	w := m.Copy()
	if err := w.AlignDivs(); err != nil {
		return nil, err
	}
	var model *poly.BasicSet
	if w.Len() > 0 {
		model = w.Part(0).BasicSet().SchemaModel()
	} else {
		model = poly.NewBasicMap(w.Space().Params, m.NIn(), m.NOut()).BasicSet().SchemaModel()
	}
	pure, err := w.UnderlyingSet()
	if err != nil {
		return nil, err
	}
	hp, err := simpleHullPure(pure)
	if err != nil {
		return nil, err
	}
	res, err := poly.OverlayModel(model, hp)
	if err != nil {
		return nil, err
	}

	return poly.BasicMapFromBasicSet(res, m.NIn(), m.NOut())
}

// simpleHullPure runs the kernel on a flattened union.
func simpleHullPure(pure *poly.Set) (*poly.BasicSet, error) {
	// 1) Normalize the union, drop empty parts.
	for i := 0; i < pure.Len(); i++ {
		if err := pure.Part(i).Simplify(); err != nil {
			return nil, err
		}
	}
	pure.RemoveEmptyParts()
	if err := removeEmptyPartsLP(pure); err != nil {
		return nil, err
	}
	if pure.Len() == 0 {
		return poly.EmptyBasicSet(pure.Space()), nil
	}
	n := pure.Len()

	// 2) H starts as the affine hull; its directions are already covered.
	ah, err := AffineHull(pure)
	if err != nil {
		return nil, err
	}
	hHash := newConstraintIndex()
	for k := 0; k < ah.NEq(); k++ {
		hHash.addEquality(ah.Equality(k))
	}

	// 3) Per-part direction hashes; equalities in both orientations.
	hashes := make([]*constraintIndex, n)
	for i := 0; i < n; i++ {
		hashes[i] = newConstraintIndex()
		p := pure.Part(i)
		for k := 0; k < p.NIneq(); k++ {
			hashes[i].add(p.Inequality(k))
		}
		for k := 0; k < p.NEq(); k++ {
			hashes[i].addEquality(p.Equality(k))
		}
	}

	// 4) Sweep every constraint of every part once.
	one := big.NewInt(1)
	var rows [][]*big.Int
	for i := 0; i < n; i++ {
		p := pure.Part(i)

		process := func(c []*big.Int) error {
			// already in H, or handled when an earlier part owned it
			if hHash.has(c) {
				return nil
			}
			for j := 0; j < i; j++ {
				if hashes[j].has(c) {
					return nil
				}
			}

			cand := mat.CpySeq(c)
			ok := true
			for j := 0; j < n && ok; j++ {
				if j == i {
					continue
				}
				if j > i {
					if e, found := hashes[j].lookup(cand); found {
						// the matching constraint bounds part j; keep the
						// weaker of the two constants, no LP needed
						_, cs, _ := dirKey(cand)
						if weakerOf(e.row[0], e.scale, cand[0], cs) {
							cand = mat.CpySeq(e.row)
						}
						continue
					}
				}
				st, opt, err2 := partMin(pure.Part(j), cand, one)
				if err2 != nil {
					return err2
				}
				switch st {
				case lp.StatusUnbounded:
					ok = false
				case lp.StatusEmpty:
					// an empty part constrains nothing
				default:
					if opt.Sign() < 0 {
						cand = relaxByMin(cand, opt)
					}
				}
			}
			if ok {
				mat.NormalizeSeq(cand)
				rows = append(rows, cand)
				hHash.add(cand)
			}

			return nil
		}

		for k := 0; k < p.NIneq(); k++ {
			if err = process(p.Inequality(k)); err != nil {
				return nil, err
			}
		}
		for k := 0; k < p.NEq(); k++ {
			e := p.Equality(k)
			if err = process(e); err != nil {
				return nil, err
			}
			neg := mat.CpySeq(e)
			mat.NegSeq(neg)
			if err = process(neg); err != nil {
				return nil, err
			}
		}
	}

	// 5) Assemble and canonicalize.
	res := poly.Universe(pure.Space())
	for k := 0; k < ah.NEq(); k++ {
		if err = res.AddEquality(ah.Equality(k)); err != nil {
			return nil, err
		}
	}
	for _, r := range rows {
		if err = res.AddInequality(r); err != nil {
			return nil, err
		}
	}

	return BasicHull(res)
}

// partMin minimizes the affine row over one part.
func partMin(p *poly.BasicSet, row []*big.Int, one *big.Int) (lp.Status, *big.Rat, error) {
	t, err := lp.FromBasicSet(p)
	if err != nil {
		return lp.StatusEmpty, nil, err
	}

	return t.Min(row, one)
}

// relaxByMin loosens the constant of row so that the constraint holds
// wherever its minimum was m < 0: row′ = (den·c₀ − num, den·c̄).
func relaxByMin(row []*big.Int, m *big.Rat) []*big.Int {
	den := m.Denom()
	out := mat.CpySeq(row)
	mat.ScaleSeq(out, den)
	out[0].Sub(out[0], m.Num())
	mat.NormalizeSeq(out)

	return out
}

// BoundedSimpleHull computes a simple hull and then forces every set
// dimension to be bounded in the description: a dimension with no
// syntactic bound in the result gets the projection bounds of the
// input — the convex hull of s with every other set dimension
// eliminated — added to it.
//
// s is not retained or mutated.
func BoundedSimpleHull(s *poly.Set) (*poly.BasicSet, error) {
	h, err := SimpleHull(s)
	if err != nil {
		return nil, err
	}
	if h.MarkedEmpty() {
		return h, nil
	}
	space := s.Space()
	for i := 0; i < space.Dims; i++ {
		if dimIsBounded(h, i) {
			continue
		}

		// project the input onto params × this dimension and hull it
		proj := s.Copy()
		for k := 0; k < proj.Len(); k++ {
			if err = proj.Part(k).RemoveDivs(); err != nil {
				return nil, err
			}
		}
		first := space.Params
		if err = proj.EliminateVars(first, i); err != nil {
			return nil, err
		}
		if err = proj.EliminateVars(first+i+1, space.Dims-i-1); err != nil {
			return nil, err
		}
		bh, err2 := ConvexHull(proj)
		if err2 != nil {
			return nil, err2
		}
		if bh.MarkedEmpty() {
			h.SetEmpty()
			return h, nil
		}

		// inject the projection bounds, padded with zero div columns
		pad := h.NDiv()
		for k := 0; k < bh.NEq(); k++ {
			if err = h.AddEquality(padRow(bh.Equality(k), pad)); err != nil {
				return nil, err
			}
		}
		for k := 0; k < bh.NIneq(); k++ {
			if err = h.AddInequality(padRow(bh.Inequality(k), pad)); err != nil {
				return nil, err
			}
		}
	}

	return BasicHull(h)
}

// padRow appends n zero columns to a copy of row.
func padRow(row []*big.Int, n int) []*big.Int {
	out := mat.CpySeq(row)
	for k := 0; k < n; k++ {
		out = append(out, new(big.Int))
	}

	return out
}

// dimIsBounded reports whether set dimension i is bounded in the
// description of h: an equality pins it in terms of parameters and
// earlier dimensions, or a lower and an upper inequality mention no
// other set dimension (and no div).
func dimIsBounded(h *poly.BasicSet, i int) bool {
	params := h.Space().Params
	dims := h.Space().Dims
	col := 1 + params + i

	cleanRight := func(row []*big.Int) bool {
		for j := i + 1; j < dims; j++ {
			if row[1+params+j].Sign() != 0 {
				return false
			}
		}
		for j := 0; j < h.NDiv(); j++ {
			if row[1+params+dims+j].Sign() != 0 {
				return false
			}
		}

		return true
	}
	cleanOthers := func(row []*big.Int) bool {
		for j := 0; j < dims; j++ {
			if j == i {
				continue
			}
			if row[1+params+j].Sign() != 0 {
				return false
			}
		}
		for j := 0; j < h.NDiv(); j++ {
			if row[1+params+dims+j].Sign() != 0 {
				return false
			}
		}

		return true
	}

	for k := 0; k < h.NEq(); k++ {
		e := h.Equality(k)
		if e[col].Sign() != 0 && cleanRight(e) {
			return true
		}
	}
	hasLower, hasUpper := false, false
	for k := 0; k < h.NIneq(); k++ {
		in := h.Inequality(k)
		if in[col].Sign() == 0 || !cleanOthers(in) {
			continue
		}
		if in[col].Sign() > 0 {
			hasLower = true
		} else {
			hasUpper = true
		}
	}

	return hasLower && hasUpper
}
