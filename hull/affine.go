// Package hull: affine hulls of basic sets and unions.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// BasicSetAffineHull returns the affine hull of b: a basic set holding
// only the equalities every point of b satisfies, found by promoting
// implicit equalities with the LP. An empty b yields the canonical
// empty basic set.
//
// b is not retained or mutated. Divs are treated as plain columns.
func BasicSetAffineHull(b *poly.BasicSet) (*poly.BasicSet, error) {
	if b == nil {
		return nil, ErrNilSet
	}
	w := b.Copy()
	if err := w.Simplify(); err != nil {
		return nil, err
	}
	if !w.MarkedEmpty() {
		t, err := lp.FromBasicSet(w)
		if err != nil {
			return nil, err
		}
		if err = t.DetectImplicitEqualities(); err != nil {
			return nil, err
		}
	}
	if w.MarkedEmpty() {
		return w, nil
	}

	// keep the equalities only
	for w.NIneq() > 0 {
		if err := w.DropInequality(w.NIneq() - 1); err != nil {
			return nil, err
		}
	}
	if err := w.Simplify(); err != nil {
		return nil, err
	}
	w.Finalize()

	return w, nil
}

// AffineHull returns the affine hull of the union s as an equalities-only
// basic set. Per part, the affine hull and a rational sample point are
// computed; the union's hull is the affine span of all of them,
// recovered as the integer nullspace of the homogeneous direction
// matrix. An all-empty union yields the canonical empty basic set.
//
// s is not retained or mutated.
func AffineHull(s *poly.Set) (*poly.BasicSet, error) {
	// 1) Validate
	if s == nil {
		return nil, ErrNilSet
	}
	total := s.Space().Total()

	// 2) Per nonempty part: a sample point and the part's direction space
	type partInfo struct {
		point []*big.Rat   // length total
		dirs  [][]*big.Int // rows of length total
	}
	var infos []partInfo
	for i := 0; i < s.Len(); i++ {
		p := s.Part(i)
		if p.FastIsEmpty() {
			continue
		}
		ah, err := BasicSetAffineHull(p)
		if err != nil {
			return nil, err
		}
		if ah.MarkedEmpty() {
			continue
		}
		t, err := lp.FromBasicSet(p)
		if err != nil {
			return nil, err
		}
		st, pt, err := t.SampleVertex()
		if err != nil {
			return nil, err
		}
		if st == lp.StatusEmpty {
			continue
		}
		// direction space of the part = nullspace of its equality normals
		coeffs := make([][]*big.Int, ah.NEq())
		for k := 0; k < ah.NEq(); k++ {
			coeffs[k] = ah.Equality(k)[1:]
		}
		em, err := mat.FromRows(coeffs)
		if err != nil {
			return nil, err
		}
		if em.Cols() == 0 {
			// equality rows absent entirely: whole space
			em, err = mat.New(0, p.Total())
			if err != nil {
				return nil, err
			}
		}
		ns, err := mat.Nullspace(em)
		if err != nil {
			return nil, err
		}
		info := partInfo{point: pt}
		for k := 0; k < ns.Rows(); k++ {
			info.dirs = append(info.dirs, mat.CpySeq(ns.Row(k)))
		}
		infos = append(infos, info)
	}
	if len(infos) == 0 {
		return poly.EmptyBasicSet(s.Space()), nil
	}

	// 3) Homogeneous span matrix: base point (1, x₀), directions (0, d),
	//    and difference vectors (0, x_k − x₀).
	var rows [][]*big.Int
	rows = append(rows, homogenize(infos[0].point, false))
	for i, info := range infos {
		for _, d := range info.dirs {
			row := make([]*big.Int, 1+total)
			row[0] = new(big.Int)
			for j, v := range d {
				row[1+j] = new(big.Int).Set(v)
			}
			rows = append(rows, row)
		}
		if i > 0 {
			diff := make([]*big.Rat, total)
			for j := range diff {
				diff[j] = new(big.Rat).Sub(info.point[j], infos[0].point[j])
			}
			rows = append(rows, homogenize(diff, true))
		}
	}
	span, err := mat.FromRows(rows)
	if err != nil {
		return nil, err
	}

	// 4) The hull's equality rows are the nullspace of the span.
	ns, err := mat.Nullspace(span)
	if err != nil {
		return nil, err
	}
	res := poly.Universe(s.Space())
	for k := 0; k < ns.Rows(); k++ {
		if err = res.AddEquality(ns.Row(k)); err != nil {
			return nil, err
		}
	}
	if err = res.Simplify(); err != nil {
		return nil, err
	}
	res.Finalize()

	return res, nil
}

// homogenize scales the rational vector to integers with a common
// denominator, prefixed by that denominator — or by zero when the
// vector is a direction rather than a point.
func homogenize(v []*big.Rat, direction bool) []*big.Int {
	d := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		den := x.Denom()
		g.GCD(nil, nil, d, den)
		d.Mul(d, new(big.Int).Quo(den, g))
	}
	row := make([]*big.Int, 1+len(v))
	if direction {
		row[0] = new(big.Int)
	} else {
		row[0] = new(big.Int).Set(d)
	}
	for j, x := range v {
		q := new(big.Int).Quo(d, x.Denom())
		row[1+j] = new(big.Int).Mul(x.Num(), q)
	}

	return row
}
