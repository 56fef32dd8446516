// Package poly: integer-division bookkeeping — alignment across the
// parts of a union and flattening into the underlying pure view.
package poly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/polyhedra/mat"
)

// UnderlyingPure returns a parameter- and div-free view of b: every
// column (params, dims, divs) becomes a plain set dimension, and known
// div definitions are materialized as their two bounding inequalities
//
//	f(x) − d·q ≥ 0  and  d·q − f(x) + d − 1 ≥ 0
//
// so no information beyond the floor nonlinearity is lost. The caller
// keeps b itself as the model to overlay the schema back later.
func (b *BasicSet) UnderlyingPure() (*BasicSet, error) {
	if b == nil {
		return nil, ErrNilSet
	}
	total := b.Total()
	res := Universe(NewSpace(0, total))
	res.flags = b.flags &^ (FlagFinal | FlagNoRedundant | FlagNoImplicit)
	res.eqs = copyRows(b.eqs)
	res.ineqs = copyRows(b.ineqs)

	res.ineqs = append(res.ineqs, b.divBoundRows()...)

	return res, nil
}

// divBoundRows materializes the two bounding inequalities of every
// known div as plain constraint rows.
func (b *BasicSet) divBoundRows() [][]*big.Int {
	base := b.space.Total()
	var rows [][]*big.Int
	for j, d := range b.divs {
		if d[0].Sign() == 0 {
			continue // unknown div: stays an unconstrained dimension
		}
		col := 1 + base + j
		denom := d[0]
		f := d[1:] // length 1+total, same layout as a constraint row

		lower := mat.CpySeq(f)
		lower[col].Sub(lower[col], denom)
		mat.NormalizeSeq(lower)
		rows = append(rows, lower)

		upper := mat.CpySeq(f)
		mat.NegSeq(upper)
		upper[col].Add(upper[col], denom)
		upper[0].Add(upper[0], denom)
		upper[0].Sub(upper[0], big.NewInt(1))
		mat.NormalizeSeq(upper)
		rows = append(rows, upper)
	}

	return rows
}

// AttachDiv appends the integer division ⌊(c₀ + Σ cᵢ·xᵢ)/denom⌋ as a
// new trailing variable. def has the layout [denom, c₀, coefficients
// over the current Params+Dims+NDiv columns]; a zero denom attaches an
// unknown div. Existing constraint rows gain a zero column.
func (b *BasicSet) AttachDiv(def []*big.Int) error {
	if b == nil {
		return ErrNilSet
	}
	if len(def) != 1+b.rowLen() {
		return ErrBadRow
	}
	grow := func(rows [][]*big.Int) {
		for i, r := range rows {
			rows[i] = append(r, new(big.Int))
		}
	}
	grow(b.eqs)
	grow(b.ineqs)
	grow(b.divs)
	row := mat.CpySeq(def)
	row = append(row, new(big.Int)) // the div's own (unused) column
	b.divs = append(b.divs, row)
	b.nDiv++
	b.clearComputed()

	return nil
}

// AttachDivInt64 is AttachDiv with int64 values.
func (b *BasicSet) AttachDivInt64(def ...int64) error {
	s := make([]*big.Int, len(def))
	for i, v := range def {
		s[i] = big.NewInt(v)
	}

	return b.AttachDiv(s)
}

// SchemaModel returns a constraint-free basic set carrying only b's
// schema: space, div count and div definitions. Used by the hull
// dispatcher to remember the caller's shape across the pure detour.
func (b *BasicSet) SchemaModel() *BasicSet {
	if b == nil {
		return nil
	}

	return &BasicSet{space: b.space, nDiv: b.nDiv, divs: copyRows(b.divs)}
}

// OverlayModel restores the schema of model onto the pure basic set:
// the result has model's params/dims/divs with pure's constraints.
// pure must be parameter- and div-free with model.Total() dimensions.
func OverlayModel(model, pure *BasicSet) (*BasicSet, error) {
	if model == nil || pure == nil {
		return nil, ErrNilSet
	}
	if pure.space.Params != 0 || pure.nDiv != 0 {
		return nil, ErrSpaceMismatch
	}
	if pure.space.Dims != model.Total() {
		return nil, ErrSpaceMismatch
	}
	res := &BasicSet{space: model.space, nDiv: model.nDiv, flags: pure.flags}
	res.eqs = copyRows(pure.eqs)
	res.ineqs = copyRows(pure.ineqs)
	res.divs = copyRows(model.divs)
	if pure.MarkedEmpty() {
		res.setEmptyInPlace()
	}

	return res, nil
}

// divEntry is one aligned div definition in the target layout:
// the denominator, the coefficients over const+params+dims, and the
// coefficients over earlier target divs.
type divEntry struct {
	denom   *big.Int
	base    []*big.Int       // length 1 + params + dims
	divRefs map[int]*big.Int // target div index → coefficient
	unknown bool
}

func (e *divEntry) key() string {
	var sb strings.Builder
	sb.WriteString(e.denom.String())
	sb.WriteByte('|')
	for _, v := range e.base {
		sb.WriteString(v.String())
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	// deterministic order over referenced target divs
	maxRef := -1
	for i := range e.divRefs {
		if i > maxRef {
			maxRef = i
		}
	}
	for i := 0; i <= maxRef; i++ {
		if v, ok := e.divRefs[i]; ok {
			fmt.Fprintf(&sb, "%d:%s,", i, v)
		}
	}

	return sb.String()
}

// alignDivs rewrites every part so all share one div sequence.
// Definitions are matched exactly (after remapping earlier-div
// references); unmatched and unknown divs are appended. Parts gain
// unconstrained columns for divs they did not have.
func alignDivs(parts []*BasicSet) error {
	if len(parts) == 0 {
		return nil
	}
	base := parts[0].space.Total()
	anyDivs := false
	for _, p := range parts {
		if p.space.Total() != base {
			return ErrSpaceMismatch
		}
		if p.nDiv > 0 {
			anyDivs = true
		}
	}
	if !anyDivs {
		return nil
	}

	// 1) Build the target div list and the per-part mapping.
	var target []*divEntry
	index := make(map[string]int)
	mappings := make([][]int, len(parts))
	for pi, p := range parts {
		mapping := make([]int, p.nDiv)
		for j, d := range p.divs {
			entry := &divEntry{
				denom:   new(big.Int).Set(d[0]),
				base:    mat.CpySeq(d[1 : 2+base]),
				divRefs: map[int]*big.Int{},
				unknown: d[0].Sign() == 0,
			}
			// remap references to this part's earlier divs
			for k := 0; k < p.nDiv; k++ {
				c := d[2+base+k]
				if c.Sign() == 0 {
					continue
				}
				if k >= j {
					// forward reference: definition not expressible yet
					entry.unknown = true
					break
				}
				entry.divRefs[mapping[k]] = new(big.Int).Set(c)
			}
			if entry.unknown {
				mapping[j] = len(target)
				target = append(target, entry)
				continue
			}
			key := entry.key()
			if at, ok := index[key]; ok {
				mapping[j] = at
				continue
			}
			index[key] = len(target)
			mapping[j] = len(target)
			target = append(target, entry)
		}
		mappings[pi] = mapping
	}

	// 2) Rebuild every part over the shared layout.
	t := len(target)
	for pi, p := range parts {
		remap := func(rows [][]*big.Int) [][]*big.Int {
			out := make([][]*big.Int, len(rows))
			for i, r := range rows {
				nr := mat.NewSeq(1 + base + t)
				for k := 0; k <= base; k++ {
					nr[k].Set(r[k])
				}
				for k := 0; k < p.nDiv; k++ {
					nr[1+base+mappings[pi][k]].Set(r[1+base+k])
				}
				out[i] = nr
			}

			return out
		}
		p.eqs = remap(p.eqs)
		p.ineqs = remap(p.ineqs)

		// every part carries the full aligned div list
		divs := make([][]*big.Int, t)
		for ti, e := range target {
			row := mat.NewSeq(2 + base + t)
			if !e.unknown {
				row[0].Set(e.denom)
				for k := 0; k <= base; k++ {
					row[1+k].Set(e.base[k])
				}
				for ref, c := range e.divRefs {
					row[2+base+ref].Set(c)
				}
			}
			divs[ti] = row
		}
		p.divs = divs
		p.nDiv = t
		p.clearComputed()
	}

	return nil
}
