// Package poly: existential elimination of variables.
// EliminateVars removes every occurrence of a variable range from the
// constraints — by substitution when an equality defines the variable,
// by Fourier–Motzkin combination otherwise — while keeping the columns
// in place. ProjectOutVars additionally drops the columns and shrinks
// the space.
package poly

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
)

// EliminateVars existentially eliminates the variables [first, first+n)
// (indices over all of Params+Dims+NDiv) from the constraints of b.
// The columns remain, with zero coefficients, so the space is unchanged.
// Divs whose definition mentions an eliminated variable become unknown.
//
// Complexity: worst case O(nIneq²) new rows per variable (Fourier–Motzkin).
func (b *BasicSet) EliminateVars(first, n int) error {
	// Validate range
	if b == nil {
		return ErrNilSet
	}
	if first < 0 || n < 0 || first+n > b.Total() {
		return ErrOutOfRange
	}
	if b.MarkedEmpty() {
		return nil
	}

	for v := first; v < first+n; v++ {
		col := 1 + v

		// 1) Prefer an equality: substitution generates no new rows.
		pivot := -1
		for k, e := range b.eqs {
			if e[col].Sign() != 0 {
				pivot = k
				break
			}
		}
		if pivot >= 0 {
			if b.eqs[pivot][col].Sign() < 0 {
				mat.NegSeq(b.eqs[pivot])
			}
			b.eliminateVarUsingEquality(col, pivot)
			b.eqs = append(b.eqs[:pivot], b.eqs[pivot+1:]...)
			b.invalidateDivsUsing(col)
			continue
		}

		// 2) Fourier–Motzkin: combine every lower bound with every upper.
		var pos, neg, zero [][]*big.Int
		for _, in := range b.ineqs {
			switch in[col].Sign() {
			case 1:
				pos = append(pos, in)
			case -1:
				neg = append(neg, in)
			default:
				zero = append(zero, in)
			}
		}
		out := zero
		for _, p := range pos {
			for _, q := range neg {
				row := mat.NewSeq(b.rowLen())
				a := p[col]                    // > 0
				nb := new(big.Int).Neg(q[col]) // > 0
				mat.CombineSeq(row, p, q, nb, a)
				mat.NormalizeSeq(row)
				if mat.FirstNonZero(row[1:]) < 0 {
					if row[0].Sign() < 0 {
						b.setEmptyInPlace()
						return nil
					}
					continue
				}
				out = append(out, row)
			}
		}
		b.ineqs = out
		b.invalidateDivsUsing(col)
	}
	b.clearComputed()

	return nil
}

// invalidateDivsUsing marks every div whose definition mentions column
// col as unknown; its value is no longer expressible.
func (b *BasicSet) invalidateDivsUsing(col int) {
	for _, d := range b.divs {
		if d[0].Sign() == 0 {
			continue
		}
		if d[1+col].Sign() != 0 {
			for _, v := range d {
				v.SetInt64(0)
			}
		}
	}
}

// ProjectOutVars eliminates the variables [first, first+n) and removes
// their columns, shrinking the space accordingly. Only div-free basic
// sets are supported; divs are projected wholesale via RemoveDivs.
func (b *BasicSet) ProjectOutVars(first, n int) error {
	if b == nil {
		return ErrNilSet
	}
	if b.nDiv != 0 {
		return ErrHasDivs
	}
	if first < 0 || n < 0 || first+n > b.Total() {
		return ErrOutOfRange
	}
	if err := b.EliminateVars(first, n); err != nil {
		return err
	}
	b.dropCols(first, n)

	// shrink the schema: overlap with the param range first, dims after
	fromParams := 0
	if first < b.space.Params {
		fromParams = minInt(n, b.space.Params-first)
	}
	b.space.Params -= fromParams
	b.space.Dims -= n - fromParams

	return nil
}

// RemoveDivs projects out every integer division of b, leaving a basic
// set over Params+Dims only. For known divs this keeps the rational
// shadow of the solution set, which is what the hull engine works on.
func (b *BasicSet) RemoveDivs() error {
	if b == nil {
		return ErrNilSet
	}
	if b.nDiv == 0 {
		return nil
	}
	start := b.space.Total()
	n := b.nDiv
	// keep the floor relation as its two bounding inequalities before
	// the div columns disappear
	b.ineqs = append(b.ineqs, b.divBoundRows()...)
	if err := b.EliminateVars(start, n); err != nil {
		return err
	}
	if b.MarkedEmpty() {
		// setEmptyInPlace already rebuilt b over the div-free space
		return nil
	}
	b.dropCols(start, n)
	b.divs = nil
	b.nDiv = 0

	return nil
}

// SubstituteZero sets the variables [first, first+n) to zero and
// removes their columns — the slice of b by the coordinate subspace,
// not a projection. Pure basic sets only.
func (b *BasicSet) SubstituteZero(first, n int) error {
	if b == nil {
		return ErrNilSet
	}
	if b.space.Params != 0 {
		return ErrHasParams
	}
	if b.nDiv != 0 {
		return ErrHasDivs
	}
	if first < 0 || n < 0 || first+n > b.space.Dims {
		return ErrOutOfRange
	}
	b.dropCols(first, n)
	b.space.Dims -= n

	return nil
}

// dropCols removes variable columns [first, first+n) from every
// constraint row. Div rows must already be gone or unaffected.
func (b *BasicSet) dropCols(first, n int) {
	drop := func(rows [][]*big.Int) {
		for i, r := range rows {
			rows[i] = append(r[:1+first], r[1+first+n:]...)
		}
	}
	drop(b.eqs)
	drop(b.ineqs)
	b.clearComputed()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
