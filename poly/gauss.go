// Package poly: Gaussian elimination on the equality constraints of a
// basic set, with substitution into inequalities and div definitions.
package poly

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
)

// Gauss brings the equalities of b into reduced row-echelon form and
// substitutes every pivot variable out of the inequalities and div
// definitions. Degenerate equalities (0 = 0) are dropped; a contradictory
// equality (0 = c, c ≠ 0) empties b in place.
//
// Complexity: O(nEq · total · rows) big.Int operations.
func (b *BasicSet) Gauss() error {
	if b == nil {
		return ErrNilSet
	}
	if b.MarkedEmpty() {
		return nil
	}

	cols := b.rowLen()
	done := 0
	// 1) Forward sweep: pick a pivot per column, eliminate it everywhere.
	for col := 1; col < cols && done < len(b.eqs); col++ {
		// 1.1) Find a pivot row at or below `done`
		pivot := -1
		for k := done; k < len(b.eqs); k++ {
			if b.eqs[k][col].Sign() != 0 {
				pivot = k
				break
			}
		}
		if pivot < 0 {
			continue
		}
		b.eqs[done], b.eqs[pivot] = b.eqs[pivot], b.eqs[done]

		// 1.2) Make the pivot positive and the row primitive
		if b.eqs[done][col].Sign() < 0 {
			mat.NegSeq(b.eqs[done])
		}
		mat.NormalizeSeq(b.eqs[done])

		// 1.3) Substitute the pivot variable out of every other row
		b.eliminateVarUsingEquality(col, done)
		done++
	}

	// 2) Leftover rows have an all-zero coefficient part.
	for k := done; k < len(b.eqs); k++ {
		if b.eqs[k][0].Sign() != 0 {
			b.setEmptyInPlace()
			return nil
		}
	}
	b.eqs = b.eqs[:done]

	return nil
}

// eliminateVarUsingEquality zeroes column col in every constraint row of b
// other than equality eq, combining with the (positive-pivot) equality.
func (b *BasicSet) eliminateVarUsingEquality(col, eq int) {
	p := b.eqs[eq][col] // positive by construction

	for k := range b.eqs {
		if k == eq || b.eqs[k][col].Sign() == 0 {
			continue
		}
		combineOut(b.eqs[k], b.eqs[eq], p, col)
		mat.NormalizeSeq(b.eqs[k])
	}
	for k := range b.ineqs {
		if b.ineqs[k][col].Sign() == 0 {
			continue
		}
		combineOut(b.ineqs[k], b.eqs[eq], p, col)
		mat.NormalizeSeq(b.ineqs[k])
	}
	for k := range b.divs {
		d := b.divs[k]
		if d[0].Sign() == 0 {
			continue // unknown div, nothing to substitute into
		}
		num := d[1:] // numerator part shares the constraint row layout
		if num[col].Sign() == 0 {
			continue
		}
		a := new(big.Int).Set(num[col])
		mat.ScaleSeq(num, p)
		tmp := new(big.Int)
		for j := range num {
			tmp.Mul(a, b.eqs[eq][j])
			num[j].Sub(num[j], tmp)
		}
		d[0].Mul(d[0], p)
		mat.NormalizeSeq(d)
	}
}

// combineOut sets row ← p·row − row[col]·eq, zeroing row[col].
// p must be the (positive) pivot eq[col]; the inequality orientation is
// preserved because p > 0.
func combineOut(row, eq []*big.Int, p *big.Int, col int) {
	a := new(big.Int).Set(row[col])
	mat.CombineSeq(row, row, eq, p, new(big.Int).Neg(a))
}
