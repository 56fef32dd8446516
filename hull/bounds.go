// Package hull: boundedness of unions and bounding directions.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// IsBounded reports whether the union is bounded: every part's
// recession cone degenerates to the origin. Parts already known empty
// contribute nothing.
//
// Complexity: O(parts · dims) LP solves.
func IsBounded(s *poly.Set) (bool, error) {
	if s == nil {
		return false, ErrNilSet
	}
	for i := 0; i < s.Len(); i++ {
		p := s.Part(i)
		if p.FastIsEmpty() {
			continue
		}
		t, err := lp.FromRecessionCone(p)
		if err != nil {
			return false, err
		}
		bounded, err := t.ConeIsBounded()
		if err != nil {
			return false, err
		}
		if !bounded {
			return false, nil
		}
	}

	return true, nil
}

// unionMin minimizes the affine objective over every part of the union
// and returns the least of the minima. Any unbounded part makes the
// whole query unbounded; empty parts are skipped. StatusEmpty is
// returned only when every part is empty.
func unionMin(s *poly.Set, obj []*big.Int) (lp.Status, *big.Rat, error) {
	one := big.NewInt(1)
	var best *big.Rat
	for i := 0; i < s.Len(); i++ {
		p := s.Part(i)
		if p.FastIsEmpty() {
			continue
		}
		t, err := lp.FromBasicSet(p)
		if err != nil {
			return lp.StatusEmpty, nil, err
		}
		st, opt, err := t.Min(obj, one)
		if err != nil {
			return lp.StatusEmpty, nil, err
		}
		switch st {
		case lp.StatusUnbounded:
			return lp.StatusUnbounded, nil, nil
		case lp.StatusEmpty:
			continue
		}
		if best == nil || opt.Cmp(best) < 0 {
			best = opt
		}
	}
	if best == nil {
		return lp.StatusEmpty, nil, nil
	}

	return lp.StatusOK, best, nil
}

// independentBounds collects exactly dim linearly independent bounded
// directions of the union, each returned as a supporting inequality
// (the constant is the negated global minimum). Candidates are the
// constraint rows of every part; each is Gaussian-reduced against the
// directions already accepted and kept only when a nonzero remainder
// survives and the union bounds it.
//
// The wrapping precondition (bounded union) makes every direction
// bounded; an unbounded probe reports ErrUnexpectedUnbounded.
func independentBounds(s *poly.Set) ([][]*big.Int, error) {
	d := s.Space().Dims
	var accepted [][]*big.Int // supporting rows, length 1+d
	var pivots []int          // pivot column (1-based) per accepted row

	tryCandidate := func(row []*big.Int) (bool, error) {
		// reduce the coefficient part against the accepted directions
		red := mat.CpySeq(row)
		red[0].SetInt64(0)
		tmp := new(big.Int)
		for k, acc := range accepted {
			pc := pivots[k]
			if red[pc].Sign() == 0 {
				continue
			}
			// red ← acc[pc]·red − red[pc]·acc  (constant ignored)
			a := new(big.Int).Set(red[pc])
			for j := 1; j < len(red); j++ {
				tmp.Mul(a, acc[j])
				red[j].Mul(red[j], acc[pc])
				red[j].Sub(red[j], tmp)
			}
		}
		pc := mat.FirstNonZero(red[1:])
		if pc < 0 {
			return false, nil // dependent on the accepted directions
		}
		mat.NormalizeSeq(red[1:])

		// bound the direction over the whole union
		st, min, err := unionMin(s, red)
		if err != nil {
			return false, err
		}
		switch st {
		case lp.StatusUnbounded:
			return false, ErrUnexpectedUnbounded
		case lp.StatusEmpty:
			return false, ErrUnexpectedEmpty
		}

		// supporting hyperplane: denom·c̄·x − num ≥ 0
		sup := mat.NewSeq(len(red))
		for j := 1; j < len(red); j++ {
			sup[j].Mul(red[j], min.Denom())
		}
		sup[0].Neg(min.Num())
		mat.NormalizeSeq(sup)
		accepted = append(accepted, sup)
		pivots = append(pivots, 1+pc)

		return true, nil
	}

	for i := 0; i < s.Len() && len(accepted) < d; i++ {
		p := s.Part(i)
		for k := 0; k < p.NEq() && len(accepted) < d; k++ {
			if _, err := tryCandidate(p.Equality(k)); err != nil {
				return nil, err
			}
		}
		for k := 0; k < p.NIneq() && len(accepted) < d; k++ {
			if _, err := tryCandidate(p.Inequality(k)); err != nil {
				return nil, err
			}
		}
	}
	if len(accepted) < d {
		return nil, ErrInternal
	}

	return accepted, nil
}
