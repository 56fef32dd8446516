// Package poly: constraint normalization and basic-set simplification.
package poly

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/polyhedra/mat"
)

// NormalizeConstraints gcd-reduces every constraint row of b and
// sign-normalizes equalities so their first non-zero coefficient is
// positive. The solution set is unchanged.
func (b *BasicSet) NormalizeConstraints() error {
	if b == nil {
		return ErrNilSet
	}
	for _, e := range b.eqs {
		mat.NormalizeSeq(e)
		if i := mat.FirstNonZero(e[1:]); i >= 0 && e[1+i].Sign() < 0 {
			mat.NegSeq(e)
		}
	}
	for _, in := range b.ineqs {
		mat.NormalizeSeq(in)
	}

	return nil
}

// coeffKey serializes the coefficient part of a row (everything past the
// constant) into a map key. Rows are expected to be gcd-normalized first.
func coeffKey(row []*big.Int) string {
	var sb strings.Builder
	for _, v := range row[1:] {
		sb.WriteString(v.String())
		sb.WriteByte(',')
	}

	return sb.String()
}

// Simplify runs the cheap, LP-free cleanup pass over b:
//
//  1. Gaussian elimination on equalities (substituted everywhere).
//  2. gcd/sign normalization of all rows.
//  3. Dropping trivially true constraints; detecting trivially false ones.
//  4. Deduplicating inequalities with identical coefficient parts
//     (the tighter constant wins) and turning opposed inequality pairs
//     c ≥ 0, −c ≥ 0 with touching constants into an equality.
//
// Redundancy that needs an LP is left to hull.BasicHull.
func (b *BasicSet) Simplify() error {
	// 1) Validate and fast paths
	if b == nil {
		return ErrNilSet
	}
	if b.MarkedEmpty() {
		b.setEmptyInPlace()
		return nil
	}
	if err := b.Gauss(); err != nil {
		return err
	}
	if b.MarkedEmpty() {
		return nil
	}
	if err := b.NormalizeConstraints(); err != nil {
		return err
	}

	// 2) Drop trivial inequalities, detect face contradictions
	kept := b.ineqs[:0]
	for _, in := range b.ineqs {
		if mat.FirstNonZero(in[1:]) < 0 {
			if in[0].Sign() < 0 {
				b.setEmptyInPlace()
				return nil
			}
			continue // 0 ≥ -c with c ≤ 0 always holds
		}
		kept = append(kept, in)
	}
	b.ineqs = kept

	// 3) Deduplicate by coefficient part; fold opposed pairs
	index := make(map[string]int, len(b.ineqs))
	out := b.ineqs[:0]
	for _, in := range b.ineqs {
		key := coeffKey(in)
		if at, ok := index[key]; ok {
			// same direction twice: keep the tighter (smaller) constant
			if in[0].Cmp(out[at][0]) < 0 {
				out[at] = in
			}
			continue
		}
		index[key] = len(out)
		out = append(out, in)
	}
	b.ineqs = out

	// opposed pairs: c ≥ 0 together with −c ≥ 0
	neg := mat.NewSeq(b.rowLen())
	for i := 0; i < len(b.ineqs); i++ {
		row := b.ineqs[i]
		for k := range row {
			neg[k].Neg(row[k])
		}
		at, ok := index[coeffKey(neg)]
		if !ok || at <= i {
			continue
		}
		other := b.ineqs[at]
		sum := new(big.Int).Add(row[0], other[0])
		switch {
		case sum.Sign() < 0:
			b.setEmptyInPlace()
			return nil
		case sum.Sign() == 0:
			// the pair pins a hyperplane: promote to an equality
			b.eqs = append(b.eqs, mat.CpySeq(row))
			b.dropIneqPair(i, at)
			// re-run: the new equality may substitute into everything
			return b.Simplify()
		}
	}

	b.Finalize()

	return nil
}

// dropIneqPair removes inequalities i and j (i < j) in one pass.
func (b *BasicSet) dropIneqPair(i, j int) {
	b.ineqs = append(b.ineqs[:j], b.ineqs[j+1:]...)
	b.ineqs = append(b.ineqs[:i], b.ineqs[i+1:]...)
}
