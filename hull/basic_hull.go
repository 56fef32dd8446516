// Package hull: the redundancy oracle on a single basic set.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/lp"
	"github.com/katalvlaran/polyhedra/poly"
)

// BasicHull returns a description of the same solution set as b with
// implicit equalities promoted and no redundant inequality left.
//
// Operation order: Gaussian elimination on equalities; early return
// when the set is empty, already marked irredundant, or has at most
// one inequality; otherwise LP-backed implicit-equality detection and
// redundancy elimination. After the LP passes the result carries the
// NoImplicit and NoRedundant marks; the early returns leave the flags
// as they were, apart from Final.
//
// b is not retained or mutated.
//
// Complexity: O(nIneq) LP solves.
func BasicHull(b *poly.BasicSet) (*poly.BasicSet, error) {
	// 1) Validate and run the cheap pass
	if b == nil {
		return nil, ErrNilSet
	}
	res := b.Copy()
	if err := res.Simplify(); err != nil {
		return nil, err
	}
	if res.MarkedEmpty() {
		return res, nil
	}
	if res.HasFlag(poly.FlagNoRedundant) || res.NIneq() <= 1 {
		res.Finalize()
		return res, nil
	}

	// 2) Promote implicit equalities, then fold them in
	t, err := lp.FromBasicSet(res)
	if err != nil {
		return nil, err
	}
	if err = t.DetectImplicitEqualities(); err != nil {
		return nil, err
	}
	if res.MarkedEmpty() {
		return res, nil
	}
	if err = res.Simplify(); err != nil {
		return nil, err
	}
	if res.MarkedEmpty() {
		return res, nil
	}

	// 3) Drop redundant inequalities against the rewritten rows
	t, err = lp.FromBasicSet(res)
	if err != nil {
		return nil, err
	}
	if err = t.DetectRedundant(); err != nil {
		return nil, err
	}
	if err = res.NormalizeConstraints(); err != nil {
		return nil, err
	}
	res.Finalize()

	return res, nil
}

// BasicHullMap is BasicHull on the basic set underlying bm.
func BasicHullMap(bm *poly.BasicMap) (*poly.BasicMap, error) {
	if bm == nil {
		return nil, ErrNilSet
	}
	b, err := BasicHull(bm.BasicSet())
	if err != nil {
		return nil, err
	}

	return poly.BasicMapFromBasicSet(b, bm.NIn(), bm.NOut())
}

// RedundancyResult carries the verdict of a single-constraint
// redundancy test together with the possibly-updated basic set: when
// the LP discovers the set is empty, the returned basic set is the
// canonical empty form.
type RedundancyResult struct {
	BasicSet  *poly.BasicSet
	Redundant bool
}

// ConstraintIsRedundant tests whether inequality ineq of b is implied
// by the remaining constraints: the minimum of the constraint over the
// rest is ≥ 0. An unbounded minimum means not redundant; an empty
// remainder empties the returned basic set. A sign test skips the LP
// when the constraint bounds a direction no other constraint bounds.
//
// b is not retained; the result owns a fresh handle.
func ConstraintIsRedundant(b *poly.BasicSet, ineq int) (RedundancyResult, error) {
	if b == nil {
		return RedundancyResult{}, ErrNilSet
	}
	if ineq < 0 || ineq >= b.NIneq() {
		return RedundancyResult{}, lp.ErrOutOfRange
	}
	res := b.Copy()
	row := res.Inequality(ineq)

	if boundsUniqueDirection(res, ineq) {
		return RedundancyResult{BasicSet: res, Redundant: false}, nil
	}

	reduced := res.Copy()
	if err := reduced.DropInequality(ineq); err != nil {
		return RedundancyResult{}, err
	}
	t, err := lp.FromBasicSet(reduced)
	if err != nil {
		return RedundancyResult{}, err
	}
	st, opt, err := t.Min(row, big.NewInt(1))
	if err != nil {
		return RedundancyResult{}, err
	}
	switch st {
	case lp.StatusUnbounded:
		return RedundancyResult{BasicSet: res, Redundant: false}, nil
	case lp.StatusEmpty:
		res.SetEmpty()
		return RedundancyResult{BasicSet: res, Redundant: true}, nil
	}

	return RedundancyResult{BasicSet: res, Redundant: opt.Sign() >= 0}, nil
}

// boundsUniqueDirection reports whether inequality ineq has, in some
// variable, a sign no other constraint of b shares: the remainder
// cannot imply it.
func boundsUniqueDirection(b *poly.BasicSet, ineq int) bool {
	row := b.Inequality(ineq)
	for v := 1; v < len(row); v++ {
		s := row[v].Sign()
		if s == 0 {
			continue
		}
		shared := false
		for k := 0; k < b.NEq() && !shared; k++ {
			if b.Equality(k)[v].Sign() != 0 {
				shared = true
			}
		}
		for k := 0; k < b.NIneq() && !shared; k++ {
			if k != ineq && b.Inequality(k)[v].Sign() == s {
				shared = true
			}
		}
		if !shared {
			return true
		}
	}

	return false
}
