// Package hull: the Fourier–Motzkin kernel.
//
// The convex hull of two basic sets, taken in homogeneous coordinates,
// is the projection of the Minkowski sum of their homogenizations:
//
//	{ x = y + z : y ∈ hom(B₁), z ∈ hom(B₂), a₁ + a₂ = 1, a₁, a₂ ≥ 0 }
//
// where a₁, a₂ are the homogenizing coordinates of the two summands.
// Projecting out (a₁, a₂, y, z) leaves the hull over x. Unions larger
// than a pair fold the binary operator left to right.
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/poly"
)

// convexHullPairElim computes conv(b1 ∪ b2) for two pure, nonempty
// basic sets of dimension d, by eliminating 2+2d variables from a
// (2+3d)-dimensional product. The result is reduced by BasicHull.
func convexHullPairElim(b1, b2 *poly.BasicSet) (*poly.BasicSet, error) {
	// 1) Validate
	if b1 == nil || b2 == nil {
		return nil, ErrNilSet
	}
	if b1.Space() != b2.Space() {
		return nil, poly.ErrSpaceMismatch
	}
	d := b1.Space().Dims

	// variable layout: a₁, a₂, y₁…y_d, z₁…z_d, x₁…x_d
	ext := poly.Universe(poly.NewSpace(0, 2+3*d))
	ext.SetRational()
	width := 1 + 2 + 3*d

	// 2) Homogenized copies of both operands
	addHom := func(b *poly.BasicSet, homVar, varOff int) error {
		emit := func(row []*big.Int, eq bool) error {
			r := make([]*big.Int, width)
			for j := range r {
				r[j] = new(big.Int)
			}
			r[1+homVar].Set(row[0]) // constant rides the homogenizing coord
			for j := 0; j < d; j++ {
				r[1+varOff+j].Set(row[1+j])
			}
			if eq {
				return ext.AddEquality(r)
			}

			return ext.AddInequality(r)
		}
		for k := 0; k < b.NEq(); k++ {
			if err := emit(b.Equality(k), true); err != nil {
				return err
			}
		}
		for k := 0; k < b.NIneq(); k++ {
			if err := emit(b.Inequality(k), false); err != nil {
				return err
			}
		}

		return nil
	}
	if err := addHom(b1, 0, 2); err != nil {
		return nil, err
	}
	if err := addHom(b2, 1, 2+d); err != nil {
		return nil, err
	}

	// 3) Structure rows: a₁, a₂ ≥ 0; a₁ + a₂ = 1; x = y + z
	row := make([]int64, width)
	row[1] = 1
	if err := ext.AddInequalityInt64(row...); err != nil {
		return nil, err
	}
	row[1], row[2] = 0, 1
	if err := ext.AddInequalityInt64(row...); err != nil {
		return nil, err
	}
	row[0], row[1], row[2] = -1, 1, 1
	if err := ext.AddEqualityInt64(row...); err != nil {
		return nil, err
	}
	for j := 0; j < d; j++ {
		r := make([]int64, width)
		r[1+2+2*d+j] = 1
		r[1+2+j] = -1
		r[1+2+d+j] = -1
		if err := ext.AddEqualityInt64(r...); err != nil {
			return nil, err
		}
	}

	// 4) Project down to x and canonicalize
	if err := ext.ProjectOutVars(0, 2+2*d); err != nil {
		return nil, err
	}

	return BasicHull(ext)
}

// convexHullElim folds convexHullPairElim across the union left to
// right. Parts must be pure and nonempty.
func convexHullElim(s *poly.Set) (*poly.BasicSet, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrNilSet
	}
	res, err := BasicHull(s.Part(0))
	if err != nil {
		return nil, err
	}
	for i := 1; i < s.Len(); i++ {
		res, err = convexHullPairElim(res, s.Part(i))
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
