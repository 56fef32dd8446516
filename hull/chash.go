// Package hull: the constraint-direction index.
//
// Several kernels treat constraints with proportional coefficient
// vectors as the same "direction" regardless of the constant: the
// proto-hull sweep, the simple-hull provenance rule, deduplication of
// wrapped facets. The index keys on the gcd-primitive coefficient
// vector — column 0 is deliberately excluded — and keeps, per
// direction, the weakest row seen so far together with its scale.
package hull

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/polyhedra/mat"
)

// dirKey returns the map key of the primitive direction of row and the
// positive scale g with coefficients = g·primitive. A zero coefficient
// vector yields ok == false.
func dirKey(row []*big.Int) (key string, scale *big.Int, ok bool) {
	g := mat.GcdSeq(row[1:])
	if g.Sign() == 0 {
		return "", nil, false
	}
	var sb strings.Builder
	q := new(big.Int)
	for _, v := range row[1:] {
		q.Quo(v, g)
		sb.WriteString(q.String())
		sb.WriteByte(',')
	}

	return sb.String(), g, true
}

// weakerOf reports whether candidate (c₀ᵃ, g·u) is weaker than holder
// (c₀ᵇ, h·u) over the shared primitive direction u: the candidate cuts
// away less, i.e. c₀ᵃ/g > c₀ᵇ/h. Cross-multiplied, no division.
func weakerOf(candConst, candScale, holdConst, holdScale *big.Int) bool {
	l := new(big.Int).Mul(candConst, holdScale)
	r := new(big.Int).Mul(holdConst, candScale)

	return l.Cmp(r) > 0
}

// sameBound reports whether the two rows over one primitive direction
// describe the same halfspace: c₀ᵃ/g == c₀ᵇ/h.
func sameBound(aConst, aScale, bConst, bScale *big.Int) bool {
	l := new(big.Int).Mul(aConst, bScale)
	r := new(big.Int).Mul(bConst, aScale)

	return l.Cmp(r) == 0
}

// centry is one direction held by a constraintIndex.
type centry struct {
	row   []*big.Int // the representative inequality row (owned copy)
	scale *big.Int   // gcd of the row's coefficients
	seen  bool       // sweep scratch: direction present in the current part
}

// constraintIndex maps primitive directions to their entries.
type constraintIndex struct {
	entries map[string]*centry
}

func newConstraintIndex() *constraintIndex {
	return &constraintIndex{entries: make(map[string]*centry)}
}

// add stores a copy of row under its direction. When the direction is
// already present the weaker constant wins. Rows with a zero
// coefficient vector are ignored.
func (ci *constraintIndex) add(row []*big.Int) {
	key, scale, ok := dirKey(row)
	if !ok {
		return
	}
	if e, exists := ci.entries[key]; exists {
		if weakerOf(row[0], scale, e.row[0], e.scale) {
			e.row = mat.CpySeq(row)
			e.scale = scale
		}

		return
	}
	ci.entries[key] = &centry{row: mat.CpySeq(row), scale: scale}
}

// addEquality stores both orientations of an equality row.
func (ci *constraintIndex) addEquality(row []*big.Int) {
	ci.add(row)
	neg := mat.CpySeq(row)
	mat.NegSeq(neg)
	ci.add(neg)
}

// lookup returns the entry for row's direction, if any.
func (ci *constraintIndex) lookup(row []*big.Int) (*centry, bool) {
	key, _, ok := dirKey(row)
	if !ok {
		return nil, false
	}
	e, exists := ci.entries[key]

	return e, exists
}

// has reports whether row's direction is present.
func (ci *constraintIndex) has(row []*big.Int) bool {
	_, ok := ci.lookup(row)

	return ok
}

// len returns the number of held directions.
func (ci *constraintIndex) len() int {
	return len(ci.entries)
}

// clearSeen resets the sweep scratch on every entry.
func (ci *constraintIndex) clearSeen() {
	for _, e := range ci.entries {
		e.seen = false
	}
}

// dropUnseen removes every entry not marked during the current sweep.
func (ci *constraintIndex) dropUnseen() {
	for k, e := range ci.entries {
		if !e.seen {
			delete(ci.entries, k)
		}
	}
}
