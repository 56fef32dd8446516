// Package poly: BasicSet — a single convex polyhedral piece.
package poly

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/mat"
)

// BasicSet is a conjunction of linear equalities and inequalities over
// 1 + Params + Dims + nDiv columns (constant in column 0).
//
// Each div row has the layout [denom, c₀, c₁, …]: the div value is
// ⌊(c₀ + Σ cᵢ·xᵢ) / denom⌋. A zero denom marks a div with unknown
// definition.
type BasicSet struct {
	space Space
	nDiv  int
	eqs   [][]*big.Int
	ineqs [][]*big.Int
	divs  [][]*big.Int
	flags Flags
}

// Universe returns the basic set with no constraints over the given space.
func Universe(s Space) *BasicSet {
	return &BasicSet{space: s}
}

// EmptyBasicSet returns the canonical empty basic set over the given
// space: the single contradictory equality 1 = 0, flagged empty.
func EmptyBasicSet(s Space) *BasicSet {
	b := Universe(s)
	b.setEmptyInPlace()

	return b
}

// Space returns the parameter/dimension schema of b.
func (b *BasicSet) Space() Space { return b.space }

// NDiv returns the number of integer divisions of b.
func (b *BasicSet) NDiv() int { return b.nDiv }

// Total returns the number of variable columns: Params + Dims + NDiv.
func (b *BasicSet) Total() int { return b.space.Total() + b.nDiv }

// rowLen returns the constraint row length, 1 + Total.
func (b *BasicSet) rowLen() int { return 1 + b.Total() }

// NEq returns the number of equality constraints.
func (b *BasicSet) NEq() int { return len(b.eqs) }

// NIneq returns the number of inequality constraints.
func (b *BasicSet) NIneq() int { return len(b.ineqs) }

// Equality returns the i-th equality row, aliasing internal storage.
// Callers must not mutate it.
func (b *BasicSet) Equality(i int) []*big.Int { return b.eqs[i] }

// Inequality returns the i-th inequality row, aliasing internal storage.
// Callers must not mutate it.
func (b *BasicSet) Inequality(i int) []*big.Int { return b.ineqs[i] }

// Div returns the i-th div row [denom, c₀, c₁, …], aliasing internal storage.
func (b *BasicSet) Div(i int) []*big.Int { return b.divs[i] }

// Copy returns a deep, independent copy of b.
func (b *BasicSet) Copy() *BasicSet {
	if b == nil {
		return nil
	}
	c := &BasicSet{space: b.space, nDiv: b.nDiv, flags: b.flags}
	c.eqs = copyRows(b.eqs)
	c.ineqs = copyRows(b.ineqs)
	c.divs = copyRows(b.divs)

	return c
}

func copyRows(rows [][]*big.Int) [][]*big.Int {
	if rows == nil {
		return nil
	}
	out := make([][]*big.Int, len(rows))
	for i, r := range rows {
		out[i] = mat.CpySeq(r)
	}

	return out
}

// AddEquality appends a copy of row as an equality constraint.
// Returns ErrBadRow when the length does not match 1+Total.
func (b *BasicSet) AddEquality(row []*big.Int) error {
	if b == nil {
		return ErrNilSet
	}
	if len(row) != b.rowLen() {
		return ErrBadRow
	}
	b.eqs = append(b.eqs, mat.CpySeq(row))
	b.clearComputed()

	return nil
}

// AddInequality appends a copy of row as an inequality constraint.
// Returns ErrBadRow when the length does not match 1+Total.
func (b *BasicSet) AddInequality(row []*big.Int) error {
	if b == nil {
		return ErrNilSet
	}
	if len(row) != b.rowLen() {
		return ErrBadRow
	}
	b.ineqs = append(b.ineqs, mat.CpySeq(row))
	b.clearComputed()

	return nil
}

// AddEqualityInt64 appends an equality given as int64 coefficients.
func (b *BasicSet) AddEqualityInt64(row ...int64) error {
	return b.AddEquality(seqFromInt64(row))
}

// AddInequalityInt64 appends an inequality given as int64 coefficients.
func (b *BasicSet) AddInequalityInt64(row ...int64) error {
	return b.AddInequality(seqFromInt64(row))
}

func seqFromInt64(row []int64) []*big.Int {
	s := make([]*big.Int, len(row))
	for i, v := range row {
		s[i] = big.NewInt(v)
	}

	return s
}

// DropEquality removes the i-th equality.
func (b *BasicSet) DropEquality(i int) error {
	if i < 0 || i >= len(b.eqs) {
		return ErrOutOfRange
	}
	b.eqs = append(b.eqs[:i], b.eqs[i+1:]...)

	return nil
}

// DropInequality removes the i-th inequality.
func (b *BasicSet) DropInequality(i int) error {
	if i < 0 || i >= len(b.ineqs) {
		return ErrOutOfRange
	}
	b.ineqs = append(b.ineqs[:i], b.ineqs[i+1:]...)

	return nil
}

// SetEmpty replaces the description of b with the canonical empty form.
func (b *BasicSet) SetEmpty() {
	b.setEmptyInPlace()
}

func (b *BasicSet) setEmptyInPlace() {
	b.nDiv = 0
	b.divs = nil
	row := mat.NewSeq(b.rowLen())
	row[0].SetInt64(1)
	b.eqs = [][]*big.Int{row}
	b.ineqs = nil
	b.flags |= FlagEmpty | FlagNoRedundant | FlagNoImplicit | FlagFinal
}

// MarkedEmpty reports whether b carries the empty flag.
func (b *BasicSet) MarkedEmpty() bool {
	return b != nil && b.flags&FlagEmpty != 0
}

// FastIsEmpty reports emptiness detectable without an LP: the empty flag,
// or a constraint that is contradictory on its face (non-zero constant
// with all-zero coefficients, of the wrong sign).
func (b *BasicSet) FastIsEmpty() bool {
	if b == nil {
		return true
	}
	if b.flags&FlagEmpty != 0 {
		return true
	}
	for _, e := range b.eqs {
		if mat.FirstNonZero(e[1:]) < 0 && e[0].Sign() != 0 {
			return true
		}
	}
	for _, in := range b.ineqs {
		if mat.FirstNonZero(in[1:]) < 0 && in[0].Sign() < 0 {
			return true
		}
	}

	return false
}

// SetRational marks b as interpreted over the rationals.
func (b *BasicSet) SetRational() {
	if b != nil {
		b.flags |= FlagRational
	}
}

// ClearRational drops the rational interpretation mark.
func (b *BasicSet) ClearRational() {
	if b != nil {
		b.flags &^= FlagRational
	}
}

// IsRational reports whether b is interpreted over the rationals.
func (b *BasicSet) IsRational() bool {
	return b != nil && b.flags&FlagRational != 0
}

// HasFlag reports whether all bits of f are set on b.
func (b *BasicSet) HasFlag(f Flags) bool {
	return b != nil && b.flags&f == f
}

// MarkNoImplicit records that no inequality of b is an implicit equality.
// Set by the LP-backed detection pass.
func (b *BasicSet) MarkNoImplicit() {
	if b != nil {
		b.flags |= FlagNoImplicit
	}
}

// MarkNoRedundant records that no inequality of b is redundant.
// Set by the LP-backed detection pass.
func (b *BasicSet) MarkNoRedundant() {
	if b != nil {
		b.flags |= FlagNoRedundant
	}
}

// clearComputed drops every derived fact after a mutation.
func (b *BasicSet) clearComputed() {
	b.flags &^= FlagEmpty | FlagNoRedundant | FlagNoImplicit | FlagFinal
}

// Finalize marks b as simplified and normalized. Idempotent.
func (b *BasicSet) Finalize() {
	if b != nil {
		b.flags |= FlagFinal
	}
}

// Intersect returns the conjunction of a and b over their common space.
// Both operands must be div-free (the engine intersects only after divs
// have been factored out). Neither operand is retained.
func Intersect(a, b *BasicSet) (*BasicSet, error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, ErrNilSet
	}
	if a.space != b.space {
		return nil, ErrSpaceMismatch
	}
	if a.nDiv != 0 || b.nDiv != 0 {
		return nil, ErrHasDivs
	}

	res := a.Copy()
	res.clearComputed()
	for _, e := range b.eqs {
		res.eqs = append(res.eqs, mat.CpySeq(e))
	}
	for _, in := range b.ineqs {
		res.ineqs = append(res.ineqs, mat.CpySeq(in))
	}
	if a.MarkedEmpty() || b.MarkedEmpty() {
		res.setEmptyInPlace()
	}
	if a.IsRational() && b.IsRational() {
		res.SetRational()
	} else {
		res.ClearRational()
	}

	return res, nil
}
