// Package hull: the ridge-wrapping kernel (Extended Convex Hull).
//
// For a bounded, full-dimensional union the hull is enumerated facet by
// facet: find one facet, then repeatedly wrap each facet about the
// ridges of its own (d−1)-dimensional hull to discover the adjacent
// facets, until the description closes. Facet hulls are computed by
// recursion on the dimension.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// WrapFacet rotates the supporting hyperplane facet about ridge until
// it touches the union again, returning the constraint of the adjacent
// facet: with n/d the minimum of ridge over the scaled union restricted
// to total facet value 1, the result is d·ridge − n·facet.
//
// An unbounded minimum means the hull is unbounded through this ridge;
// the facet row is returned unchanged. Both rows live in the pure
// x-space of s (length 1 + dims); neither argument is retained.
func WrapFacet(s *poly.Set, facet, ridge []*big.Int) ([]*big.Int, error) {
	// 1) Validate
	if s == nil || s.Len() == 0 {
		return nil, ErrNilSet
	}
	d := s.Space().Dims
	if len(facet) != 1+d || len(ridge) != 1+d {
		return nil, poly.ErrBadRow
	}
	n := s.Len()

	// 2) Build the wrapping LP over (a_k, x_k) per part:
	//    hom(B_k) rows, a_k ≥ 0, Σ_k facet(a_k, x_k) = 1;
	//    minimize Σ_k ridge(a_k, x_k).
	per := 1 + d // block width per part: a_k then x_k
	ext := poly.Universe(poly.NewSpace(0, n*per))
	ext.SetRational()
	width := 1 + n*per

	for k := 0; k < n; k++ {
		p := s.Part(k)
		off := k * per
		emit := func(row []*big.Int, eq bool) error {
			r := make([]*big.Int, width)
			for j := range r {
				r[j] = new(big.Int)
			}
			r[1+off].Set(row[0])
			for j := 0; j < d; j++ {
				r[1+off+1+j].Set(row[1+j])
			}
			if eq {
				return ext.AddEquality(r)
			}

			return ext.AddInequality(r)
		}
		for i := 0; i < p.NEq(); i++ {
			if err := emit(p.Equality(i), true); err != nil {
				return nil, err
			}
		}
		for i := 0; i < p.NIneq(); i++ {
			if err := emit(p.Inequality(i), false); err != nil {
				return nil, err
			}
		}
		nn := make([]*big.Int, width)
		for j := range nn {
			nn[j] = new(big.Int)
		}
		nn[1+off].SetInt64(1)
		if err := ext.AddInequality(nn); err != nil {
			return nil, err
		}
	}

	// total facet value pinned to one
	pin := make([]*big.Int, width)
	for j := range pin {
		pin[j] = new(big.Int)
	}
	pin[0].SetInt64(-1)
	for k := 0; k < n; k++ {
		off := k * per
		pin[1+off].Set(facet[0])
		for j := 0; j < d; j++ {
			pin[1+off+1+j].Set(facet[1+j])
		}
	}
	if err := ext.AddEquality(pin); err != nil {
		return nil, err
	}

	obj := make([]*big.Int, width)
	for j := range obj {
		obj[j] = new(big.Int)
	}
	for k := 0; k < n; k++ {
		off := k * per
		obj[1+off].Set(ridge[0])
		for j := 0; j < d; j++ {
			obj[1+off+1+j].Set(ridge[1+j])
		}
	}

	// 3) Solve and assemble the rotated constraint
	st, opt, err := lp.Solve(ext, false, obj, big.NewInt(1))
	if err != nil {
		return nil, err
	}
	switch st {
	case lp.StatusUnbounded:
		return mat.CpySeq(facet), nil
	case lp.StatusEmpty:
		return nil, ErrUnexpectedEmpty
	}
	res := mat.NewSeq(1 + d)
	num, den := opt.Num(), opt.Denom() // den > 0
	tmp := new(big.Int)
	for j := 0; j <= d; j++ {
		res[j].Mul(den, ridge[j])
		tmp.Mul(num, facet[j])
		res[j].Sub(res[j], tmp)
	}
	mat.NormalizeSeq(res)

	return res, nil
}

// facetTransform builds the square homogeneous change of basis T whose
// second row is the facet constraint: y₁ = facet(x). The inverse (with
// its denominator folded into the homogeneous column) maps constraint
// rows of x-space into y-space.
func facetTransform(facet []*big.Int, d int) (t, tInv *mat.Matrix, err error) {
	t, err = mat.New(1+d, 1+d)
	if err != nil {
		return nil, nil, err
	}
	if err = t.SetInt64(0, 0, 1); err != nil {
		return nil, nil, err
	}
	for j := 0; j <= d; j++ {
		if err = t.Set(1, j, facet[j]); err != nil {
			return nil, nil, err
		}
	}
	pivot := mat.FirstNonZero(facet[1:])
	if pivot < 0 {
		return nil, nil, ErrInternal
	}
	row := 2
	for v := 0; v < d; v++ {
		if v == pivot {
			continue
		}
		if err = t.SetInt64(row, 1+v, 1); err != nil {
			return nil, nil, err
		}
		row++
	}
	tInv, _, err = mat.Inverse(t)
	if err != nil {
		return nil, nil, err
	}

	return t, tInv, nil
}

// transformedSlice maps every part of s through tInv and fixes the
// facet coordinate y₁ = 0, yielding the union of facet slices as a
// (d−1)-dimensional pure set. Parts missing the facet plane drop out.
func transformedSlice(s *poly.Set, tInv *mat.Matrix) (*poly.Set, error) {
	d := s.Space().Dims
	res := poly.NewSet(poly.NewSpace(0, d-1))
	for i := 0; i < s.Len(); i++ {
		p, err := s.Part(i).PreimageMatrix(tInv)
		if err != nil {
			return nil, err
		}
		if err = p.SubstituteZero(0, 1); err != nil {
			return nil, err
		}
		if err = p.Simplify(); err != nil {
			return nil, err
		}
		if p.FastIsEmpty() {
			continue
		}
		if empty, err2 := lpEmpty(p); err2 != nil {
			return nil, err2
		} else if empty {
			continue
		}
		p.SetRational()
		if err = res.Add(p); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// liftRow reinserts the fixed facet coordinate and maps a y-space row
// back to x-space through T: row_x = (r₀, 0, r₁…) · T.
func liftRow(row []*big.Int, t *mat.Matrix) ([]*big.Int, error) {
	ins := mat.NewSeq(t.Rows())
	ins[0].Set(row[0])
	for j := 1; j < len(row); j++ {
		ins[1+j].Set(row[j])
	}
	out, err := mat.VecProduct(ins, t)
	if err != nil {
		return nil, err
	}
	mat.NormalizeSeq(out)

	return out, nil
}

// computeFacet returns the full hull of the slice of s by the facet
// hyperplane, as a (d−1)-dimensional basic set in the transformed
// coordinates, together with the transform pair used.
func computeFacet(s *poly.Set, facet []*big.Int) (*poly.BasicSet, *mat.Matrix, *mat.Matrix, error) {
	d := s.Space().Dims
	t, tInv, err := facetTransform(facet, d)
	if err != nil {
		return nil, nil, nil, err
	}
	slice, err := transformedSlice(s, tInv)
	if err != nil {
		return nil, nil, nil, err
	}
	if slice.Len() == 0 {
		return nil, nil, nil, ErrUnexpectedEmpty
	}
	fh, err := usetConvexHullWrapBounded(slice)
	if err != nil {
		return nil, nil, nil, err
	}

	return fh, t, tInv, nil
}

// initialFacet finds one genuine facet of the hull: start from a
// bounding hyperplane and, while the affine hull of its slice still
// has codimension above one, wrap about an extra equality of that
// affine hull to grow the supported face.
func initialFacet(s *poly.Set) ([]*big.Int, error) {
	d := s.Space().Dims
	bounds, err := independentBounds(s)
	if err != nil {
		return nil, err
	}
	h := mat.CpySeq(bounds[0])

	for iter := 0; iter <= d; iter++ {
		// slice of the union by {h = 0}
		slice := s.Copy()
		if err = slice.AddEquality(h); err != nil {
			return nil, err
		}
		if err = slice.Normalize(); err != nil {
			return nil, err
		}
		ah, err2 := AffineHull(slice)
		if err2 != nil {
			return nil, err2
		}
		if ah.MarkedEmpty() {
			return nil, ErrUnexpectedEmpty // h supports the union
		}
		if ah.NEq() <= 1 {
			return h, nil // the face is a facet
		}

		// pick an affine-hull equality independent of h
		ridge := pickIndependent(ah, h)
		if ridge == nil {
			return nil, ErrInternal
		}
		h, err = WrapFacet(s, h, ridge)
		if err != nil {
			return nil, err
		}
		mat.NormalizeSeq(h)
	}

	return nil, ErrInternal
}

// pickIndependent returns an equality of ah whose coefficient vector is
// not a multiple of h's, reduced against h; nil when none exists.
func pickIndependent(ah *poly.BasicSet, h []*big.Int) []*big.Int {
	pc := mat.FirstNonZero(h[1:])
	if pc < 0 {
		return nil
	}
	tmp := new(big.Int)
	for k := 0; k < ah.NEq(); k++ {
		r := mat.CpySeq(ah.Equality(k))
		if r[1+pc].Sign() != 0 {
			// r ← h[pc]·r − r[pc]·h
			a := new(big.Int).Set(r[1+pc])
			for j := range r {
				tmp.Mul(a, h[j])
				r[j].Mul(r[j], h[1+pc])
				r[j].Sub(r[j], tmp)
			}
		}
		if mat.FirstNonZero(r[1:]) >= 0 {
			mat.NormalizeSeq(r)
			return r
		}
	}

	return nil
}

// protoHull sweeps the constraint directions shared by every part,
// weakening constants to the loosest occurrence. When one part's own
// description is exactly the weakened common set, that part already is
// the hull (isHull). The returned rows are valid hull constraints
// either way.
func protoHull(s *poly.Set) (rows [][]*big.Int, isHull bool) {
	// 1) Seed with the part owning the fewest inequalities,
	//    preferring equality-free parts.
	best := 0
	for i := 1; i < s.Len(); i++ {
		p, q := s.Part(i), s.Part(best)
		pe, qe := p.NEq() > 0, q.NEq() > 0
		if (pe == qe && p.NIneq() < q.NIneq()) || (!pe && qe) {
			best = i
		}
	}
	ci := newConstraintIndex()
	seed := s.Part(best)
	for k := 0; k < seed.NIneq(); k++ {
		ci.add(seed.Inequality(k))
	}
	for k := 0; k < seed.NEq(); k++ {
		ci.addEquality(seed.Equality(k))
	}

	// 2) Sweep the other parts: weaken on match, drop on absence.
	for i := 0; i < s.Len() && ci.len() > 0; i++ {
		if i == best {
			continue
		}
		p := s.Part(i)
		ci.clearSeen()
		mark := func(row []*big.Int) {
			if e, ok := ci.lookup(row); ok {
				_, scale, _ := dirKey(row)
				if weakerOf(row[0], scale, e.row[0], e.scale) {
					e.row = mat.CpySeq(row)
					e.scale = scale
				}
				e.seen = true
			}
		}
		for k := 0; k < p.NIneq(); k++ {
			mark(p.Inequality(k))
		}
		for k := 0; k < p.NEq(); k++ {
			e := p.Equality(k)
			mark(e)
			neg := mat.CpySeq(e)
			mat.NegSeq(neg)
			mark(neg)
		}
		ci.dropUnseen()
	}
	for _, e := range ci.entries {
		rows = append(rows, mat.CpySeq(e.row))
	}

	// 3) isHull: a part whose description equals the weakened rows.
	for i := 0; i < s.Len(); i++ {
		p := s.Part(i)
		if p.NEq() != 0 || p.NIneq() != len(rows) || p.NIneq() != ci.len() {
			continue
		}
		match := true
		for k := 0; k < p.NIneq() && match; k++ {
			row := p.Inequality(k)
			e, ok := ci.lookup(row)
			if !ok {
				match = false
				continue
			}
			_, scale, _ := dirKey(row)
			if !sameBound(row[0], scale, e.row[0], e.scale) {
				match = false
			}
		}
		if match {
			return rows, true
		}
	}

	return rows, false
}

// usetConvexHullWrapBounded computes the exact hull of a bounded,
// full-dimensional, rational, pure union by ridge wrapping.
// Recursion on the dimension terminates at the 1-D kernel.
func usetConvexHullWrapBounded(s *poly.Set) (*poly.BasicSet, error) {
	// 0) Trivial shapes first
	if s == nil || s.Len() == 0 {
		return nil, ErrNilSet
	}
	d := s.Space().Dims
	if s.Len() == 1 {
		return BasicHull(s.Part(0))
	}
	if d == 0 {
		u := poly.Universe(s.Space())
		u.SetRational()
		return u, nil
	}
	if d == 1 {
		return convexHull1D(s)
	}

	// 1) Proto-hull: constraints common to every part
	proto, isHull := protoHull(s)
	if isHull {
		res := poly.Universe(s.Space())
		for _, r := range proto {
			if err := res.AddInequality(r); err != nil {
				return nil, err
			}
		}
		res.SetRational()

		return BasicHull(res)
	}

	// 2) One genuine facet to start from
	h, err := initialFacet(s)
	if err != nil {
		return nil, err
	}

	// 3) Facet extension: wrap every facet about each missing ridge
	facets := [][]*big.Int{h}
	known := newConstraintIndex()
	known.add(h)
	for i := 0; i < len(facets); i++ {
		fh, t, tInv, err2 := computeFacet(s, facets[i])
		if err2 != nil {
			return nil, err2
		}

		// the current hull's own view of this facet, for ridge matching
		hullFacet := make(map[string]bool)
		for k, other := range facets {
			if k == i {
				continue
			}
			r, err3 := sliceRowThrough(other, tInv)
			if err3 != nil {
				return nil, err3
			}
			if r != "" {
				hullFacet[r] = true
			}
		}

		for k := 0; k < fh.NIneq(); k++ {
			ridgeY := fh.Inequality(k)
			if hullFacet[rowKey(ridgeY)] {
				continue // the adjacent facet is already known
			}
			ridgeX, err3 := liftRow(ridgeY, t)
			if err3 != nil {
				return nil, err3
			}
			wrapped, err3 := WrapFacet(s, facets[i], ridgeX)
			if err3 != nil {
				return nil, err3
			}
			if known.has(wrapped) {
				continue // arithmetic led back to a facet we hold
			}
			known.add(wrapped)
			facets = append(facets, wrapped)
		}
	}

	// 4) Finalize: facets plus the proto rows, canonicalized
	res := poly.Universe(s.Space())
	for _, r := range facets {
		if err = res.AddInequality(r); err != nil {
			return nil, err
		}
	}
	for _, r := range proto {
		if err = res.AddInequality(r); err != nil {
			return nil, err
		}
	}
	res.SetRational()

	return BasicHull(res)
}

// sliceRowThrough maps a hull constraint into the facet coordinates
// (dropping the facet column) and returns its comparable key, or ""
// when the row degenerates on the slice.
func sliceRowThrough(row []*big.Int, tInv *mat.Matrix) (string, error) {
	y, err := mat.VecProduct(row, tInv)
	if err != nil {
		return "", err
	}
	// fix y₁ = 0: drop the facet coordinate
	out := append(y[:1], y[2:]...)
	if mat.FirstNonZero(out[1:]) < 0 {
		return "", nil
	}
	mat.NormalizeSeq(out)

	return rowKey(out), nil
}

// rowKey serializes a fully normalized row for exact comparison.
func rowKey(row []*big.Int) string {
	out := mat.CpySeq(row)
	mat.NormalizeSeq(out)
	key := ""
	for _, v := range out {
		key += v.String() + ","
	}

	return key
}

// lpEmpty reports LP-certified emptiness of one basic set.
func lpEmpty(b *poly.BasicSet) (bool, error) {
	t, err := lp.FromBasicSet(b)
	if err != nil {
		return false, err
	}
	st, _, err := t.SampleVertex()
	if err != nil {
		return false, err
	}

	return st == lp.StatusEmpty, nil
}
