// Package poly: homogeneous coordinate transforms of basic sets.
package poly

import (
	"github.com/katalvlaran/polyhedra/mat"
)

// PreimageMatrix returns {y : M·ŷ ∈ b}, the preimage of b under the
// homogeneous transform x̂ = M·ŷ. Every constraint row c of b becomes
// c·M in the result. M must have 1+Dims rows; the result has M.Cols()-1
// dimensions. Only pure basic sets (no params, no divs) are supported —
// the engine transforms only after factoring those out.
//
// Constraint rows are homogeneous, so a transform with a scaled
// homogeneous column (M₀₀ = denom) is applied without division.
//
// Complexity: O(rows · (1+Dims) · M.Cols()).
func (b *BasicSet) PreimageMatrix(m *mat.Matrix) (*BasicSet, error) {
	// 1) Validate operands
	if b == nil {
		return nil, ErrNilSet
	}
	if m == nil {
		return nil, mat.ErrNilMatrix
	}
	if b.space.Params != 0 {
		return nil, ErrHasParams
	}
	if b.nDiv != 0 {
		return nil, ErrHasDivs
	}
	if m.Rows() != b.rowLen() {
		return nil, ErrBadTransform
	}

	// 2) Transform every constraint row
	res := Universe(NewSpace(0, m.Cols()-1))
	res.flags = b.flags &^ FlagFinal
	for _, e := range b.eqs {
		row, err := mat.VecProduct(e, m)
		if err != nil {
			return nil, err
		}
		mat.NormalizeSeq(row)
		res.eqs = append(res.eqs, row)
	}
	for _, in := range b.ineqs {
		row, err := mat.VecProduct(in, m)
		if err != nil {
			return nil, err
		}
		mat.NormalizeSeq(row)
		res.ineqs = append(res.ineqs, row)
	}

	return res, nil
}
