// Package lp: constraint classification passes — implicit equalities,
// redundant inequalities, recession-cone boundedness.
package lp

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
	"github.com/katalvlaran/polyhedra/poly"
)

// DetectImplicitEqualities finds inequalities whose maximum over the
// basic set is zero — the constraint is tight everywhere — and turns
// them into equalities, rewriting the basic set in place. A basic set
// proven empty along the way is emptied in place.
//
// Complexity: one LP per inequality.
func (t *Tableau) DetectImplicitEqualities() error {
	if t == nil || t.bset == nil {
		return ErrNilBasicSet
	}
	b := t.bset
	if b.MarkedEmpty() || b.HasFlag(poly.FlagNoImplicit) {
		return nil
	}
	one := big.NewInt(1)

	// 1) Classify every inequality first; the set is unchanged meanwhile.
	var implicit []int
	neg := make([]*big.Int, 1+b.Total())
	for i := 0; i < b.NIneq(); i++ {
		row := b.Inequality(i)
		// max c = −min(−c); c ≥ 0 holds, so the max is ≥ 0 when feasible
		for j := range neg {
			neg[j] = new(big.Int).Neg(row[j])
		}
		st, opt, err := t.Min(neg, one)
		if err != nil {
			return err
		}
		switch st {
		case StatusEmpty:
			b.SetEmpty()
			return nil
		case StatusUnbounded:
			continue
		}
		if opt.Sign() == 0 {
			implicit = append(implicit, i)
		}
	}

	// 2) Rewrite: promoted rows become equalities.
	for off, i := range implicit {
		row := mat.CpySeq(b.Inequality(i - off))
		if err := b.DropInequality(i - off); err != nil {
			return err
		}
		if err := b.AddEquality(row); err != nil {
			return err
		}
	}
	t.dropped = make([]bool, b.NIneq())
	b.MarkNoImplicit()

	return nil
}

// DetectRedundant drops every inequality that is implied by the rest of
// the basic set: the minimum of the constraint over the others is ≥ 0.
// Constraints are processed in order against the surviving rows, so
// mutually redundant duplicates keep exactly one representative.
// A cheap sign test skips the LP when the constraint bounds a direction
// no other constraint bounds.
//
// Complexity: at most one LP per inequality.
func (t *Tableau) DetectRedundant() error {
	if t == nil || t.bset == nil {
		return ErrNilBasicSet
	}
	b := t.bset
	if b.MarkedEmpty() || b.HasFlag(poly.FlagNoRedundant) {
		return nil
	}
	one := big.NewInt(1)

	for i := 0; i < b.NIneq(); i++ {
		if t.dropped[i] {
			continue
		}
		row := b.Inequality(i)
		if t.uniquelyBounds(i, row) {
			continue // nothing else bounds this direction: kept
		}
		st, opt, err := t.minSkipping(row, one, i)
		if err != nil {
			return err
		}
		switch st {
		case StatusEmpty:
			b.SetEmpty()
			return nil
		case StatusUnbounded:
			continue
		}
		if opt.Sign() >= 0 {
			t.dropped[i] = true
		}
	}

	// rewrite the basic set without the dropped rows
	for i := b.NIneq() - 1; i >= 0; i-- {
		if t.dropped[i] {
			if err := b.DropInequality(i); err != nil {
				return err
			}
		}
	}
	t.dropped = make([]bool, b.NIneq())
	b.MarkNoRedundant()

	return nil
}

// uniquelyBounds reports whether inequality i has, in some variable, a
// sign that no other surviving constraint shares: the remainder of the
// system cannot imply it, so the LP is unnecessary.
func (t *Tableau) uniquelyBounds(i int, row []*big.Int) bool {
	b := t.bset
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
			if k == i || t.dropped[k] {
				continue
			}
			if b.Inequality(k)[v].Sign() == s {
				shared = true
			}
		}
		if !shared {
			return true
		}
	}

	return false
}

// ConeIsBounded reports whether the recession cone held by t (built via
// FromRecessionCone) degenerates to the origin: no coordinate direction
// admits an unbounded ray.
//
// Complexity: at most 2·dim LPs.
func (t *Tableau) ConeIsBounded() (bool, error) {
	if t == nil || t.bset == nil {
		return false, ErrNilBasicSet
	}
	b := t.bset
	one := big.NewInt(1)
	obj := make([]*big.Int, 1+b.Total())
	for j := range obj {
		obj[j] = new(big.Int)
	}
	for v := 0; v < b.Total(); v++ {
		obj[1+v].SetInt64(1)
		st, _, err := t.Min(obj, one)
		if err != nil {
			return false, err
		}
		if st == StatusUnbounded {
			return false, nil
		}
		obj[1+v].SetInt64(-1)
		st, _, err = t.Min(obj, one)
		if err != nil {
			return false, err
		}
		if st == StatusUnbounded {
			return false, nil
		}
		obj[1+v].SetInt64(0)
	}

	return true, nil
}
