// Package hull: the strategy dispatcher.
//
// ConvexHull normalizes the input, factors out the affine hull, hands
// the full-dimensional remainder to the kernel that fits it — wrapping
// when bounded, Fourier–Motzkin when not, specializations for 0-D and
// 1-D — and lifts the result back into the caller's schema.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// ConvexHull computes the exact convex hull of the union s as a single
// basic set over s's schema. The hull is taken over the rational
// relaxation; the rational mark is cleared on the result.
//
// s is not retained or mutated.
func ConvexHull(s *poly.Set) (*poly.BasicSet, error) {
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
	hp, err := hullOfPure(pure)
	if err != nil {
		return nil, err
	}
	res, err := poly.OverlayModel(model, hp)
	if err != nil {
		return nil, err
	}
	res.ClearRational()
	res.Finalize()

	return res, nil
}

// ConvexHullMap computes the convex hull of the relation m as a single
// basic map, by flattening to the underlying set.
func ConvexHullMap(m *poly.Map) (*poly.BasicMap, error) {
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
	hp, err := hullOfPure(pure)
	if err != nil {
		return nil, err
	}
	res, err := poly.OverlayModel(model, hp)
	if err != nil {
		return nil, err
	}
	res.ClearRational()
	res.Finalize()

	return poly.BasicMapFromBasicSet(res, m.NIn(), m.NOut())
}

// modelOf captures the schema of the union: the first part when there
// is one (divs already aligned), the bare space otherwise.
func modelOf(s *poly.Set) *poly.BasicSet {
	if s.Len() > 0 {
		return s.Part(0).SchemaModel()
	}

	return poly.Universe(s.Space()).SchemaModel()
}

// hullOfPure prepares a pure union — simplification, LP-backed empty
// removal, rational interpretation — and dispatches to the kernels.
func hullOfPure(pure *poly.Set) (*poly.BasicSet, error) {
	for i := 0; i < pure.Len(); i++ {
		if err := pure.Part(i).Simplify(); err != nil {
			return nil, err
		}
	}
	pure.RemoveEmptyParts()
	if err := removeEmptyPartsLP(pure); err != nil {
		return nil, err
	}
	pure.SetRational()
	if pure.Len() == 0 {
		return poly.EmptyBasicSet(pure.Space()), nil
	}

	return convexHullPure(pure)
}

// removeEmptyPartsLP drops every part the LP proves empty.
func removeEmptyPartsLP(s *poly.Set) error {
	for i := s.Len() - 1; i >= 0; i-- {
		empty, err := lpEmpty(s.Part(i))
		if err != nil {
			return err
		}
		if empty {
			if err = s.DropPart(i); err != nil {
				return err
			}
		}
	}

	return nil
}

// convexHullPure computes the hull of a pure, rational union with no
// empty parts: factor out the affine hull, then 0-D and 1-D specials,
// then wrapping or Fourier–Motzkin by boundedness.
func convexHullPure(s *poly.Set) (*poly.BasicSet, error) {
	d := s.Space().Dims
	if d == 0 {
		// nonempty parts over a point space: the universe
		u := poly.Universe(s.Space())
		u.SetRational()
		return u, nil
	}

	// 1) Affine-hull factoring: remove the equalities by substitution.
	ah, err := AffineHull(s)
	if err != nil {
		return nil, err
	}
	if ah.MarkedEmpty() {
		return poly.EmptyBasicSet(s.Space()), nil
	}
	if ah.NEq() > 0 {
		return hullThroughAffine(s, ah)
	}

	// 2) Full-dimensional: trivial union, 1-D, then the two kernels.
	if s.Len() == 1 {
		return BasicHull(s.Part(0))
	}
	if d == 1 {
		return convexHull1D(s)
	}
	bounded, err := IsBounded(s)
	if err != nil {
		return nil, err
	}
	if bounded {
		return usetConvexHullWrapBounded(s)
	}

	return convexHullElim(s)
}

// hullThroughAffine hulls a lower-dimensional union: compress onto the
// affine hull's free coordinates, hull there, scatter the result back
// and intersect with the affine hull.
func hullThroughAffine(s *poly.Set, ah *poly.BasicSet) (*poly.BasicSet, error) {
	d := s.Space().Dims
	u, free, err := compressionMatrix(ah, d)
	if err != nil {
		return nil, err
	}
	m := len(free)

	// the affine hull pins a single point
	if m == 0 {
		return BasicHull(ah)
	}

	// compress every part onto the free coordinates
	sub := poly.NewSet(poly.NewSpace(0, m))
	for i := 0; i < s.Len(); i++ {
		p, err2 := s.Part(i).PreimageMatrix(u)
		if err2 != nil {
			return nil, err2
		}
		p.SetRational()
		if err2 = sub.Add(p); err2 != nil {
			return nil, err2
		}
	}
	hp, err := convexHullPure(sub)
	if err != nil {
		return nil, err
	}

	// scatter the compressed hull back and re-impose the equalities
	res := poly.Universe(s.Space())
	res.SetRational()
	scatter := func(row []*big.Int) []*big.Int {
		out := mat.NewSeq(1 + d)
		out[0].Set(row[0])
		for j, f := range free {
			out[1+f].Set(row[1+j])
		}

		return out
	}
	if hp.MarkedEmpty() {
		return poly.EmptyBasicSet(s.Space()), nil
	}
	for k := 0; k < hp.NEq(); k++ {
		if err = res.AddEquality(scatter(hp.Equality(k))); err != nil {
			return nil, err
		}
	}
	for k := 0; k < hp.NIneq(); k++ {
		if err = res.AddInequality(scatter(hp.Inequality(k))); err != nil {
			return nil, err
		}
	}
	res, err = poly.Intersect(res, ah)
	if err != nil {
		return nil, err
	}

	return BasicHull(res)
}

// compressionMatrix parametrizes the affine subspace of ah by its free
// coordinates: x̂ = U·ŷ with U integer, U₀₀ the common denominator and
// y the free variables in ascending order. ah must be in reduced
// echelon form with positive pivots (Simplify guarantees it).
func compressionMatrix(ah *poly.BasicSet, d int) (*mat.Matrix, []int, error) {
	nEq := ah.NEq()
	pivotRow := make(map[int]int, nEq) // pivot var → equality row
	for k := 0; k < nEq; k++ {
		pc := mat.FirstNonZero(ah.Equality(k)[1:])
		if pc < 0 {
			return nil, nil, ErrInternal
		}
		pivotRow[pc] = k
	}
	var free []int
	for v := 0; v < d; v++ {
		if _, pivot := pivotRow[v]; !pivot {
			free = append(free, v)
		}
	}

	// common denominator: lcm of the pivot values
	l := big.NewInt(1)
	g := new(big.Int)
	for v, k := range pivotRow {
		p := ah.Equality(k)[1+v]
		g.GCD(nil, nil, l, p)
		l.Mul(l, new(big.Int).Quo(p, g))
	}

	u, err := mat.New(1+d, 1+len(free))
	if err != nil {
		return nil, nil, err
	}
	if err = u.Set(0, 0, l); err != nil {
		return nil, nil, err
	}
	for j, f := range free {
		if err = u.Set(1+f, 1+j, l); err != nil {
			return nil, nil, err
		}
	}
	q := new(big.Int)
	for v, k := range pivotRow {
		e := ah.Equality(k)
		q.Quo(l, e[1+v])
		q.Neg(q)
		// x_v = −(e₀ + Σ_f e_f·y_f) / e_v, scaled by l
		cell := new(big.Int).Mul(q, e[0])
		if err = u.Set(1+v, 0, cell); err != nil {
			return nil, nil, err
		}
		for j, f := range free {
			cell = new(big.Int).Mul(q, e[1+f])
			if err = u.Set(1+v, 1+j, cell); err != nil {
				return nil, nil, err
			}
		}
	}

	return u, free, nil
}
