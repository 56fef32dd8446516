// Package mat: exact right-nullspace computation.
package mat

import "math/big"

// Nullspace returns an integer basis of {v : m·v = 0} as the rows of
// the result, one basis vector per row. The basis is obtained from the
// reduced row-echelon form over exact rationals, parametrizing by the
// free columns, then clearing denominators per vector.
//
// A matrix of full column rank yields a 0×cols result.
//
// Complexity: O(rows·cols·min(rows,cols)) rational operations.
func Nullspace(m *Matrix) (*Matrix, error) {
	// 1) Validate input
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.r, m.c

	// 2) Rational RREF
	a := make([][]*big.Rat, rows)
	for i := 0; i < rows; i++ {
		a[i] = make([]*big.Rat, cols)
		for j := 0; j < cols; j++ {
			a[i][j] = new(big.Rat).SetInt(m.el(i, j))
		}
	}
	pivotOf := make([]int, 0, rows) // column of each pivot row, in order
	isPivot := make([]bool, cols)
	tmp := new(big.Rat)
	r := 0
	for col := 0; col < cols && r < rows; col++ {
		pr := -1
		for i := r; i < rows; i++ {
			if a[i][col].Sign() != 0 {
				pr = i
				break
			}
		}
		if pr < 0 {
			continue
		}
		a[r], a[pr] = a[pr], a[r]
		inv := new(big.Rat).Inv(a[r][col])
		for j := col; j < cols; j++ {
			a[r][j].Mul(a[r][j], inv)
		}
		for i := 0; i < rows; i++ {
			if i == r || a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][col])
			for j := col; j < cols; j++ {
				tmp.Mul(f, a[r][j])
				a[i][j].Sub(a[i][j], tmp)
			}
		}
		pivotOf = append(pivotOf, col)
		isPivot[col] = true
		r++
	}

	// 3) One basis vector per free column
	free := make([]int, 0, cols-r)
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}
	res, err := New(len(free), cols)
	if err != nil {
		return nil, err
	}
	g := new(big.Int)
	for bi, f := range free {
		// v[f] = 1, v[pivot_k] = −a[k][f]; clear denominators with an lcm
		d := big.NewInt(1)
		for k := 0; k < r; k++ {
			den := a[k][f].Denom()
			g.GCD(nil, nil, d, den)
			d.Mul(d, new(big.Int).Quo(den, g))
		}
		res.el(bi, f).Set(d)
		for k := 0; k < r; k++ {
			q := new(big.Int).Quo(d, a[k][f].Denom())
			res.el(bi, pivotOf[k]).Mul(a[k][f].Num(), q)
			res.el(bi, pivotOf[k]).Neg(res.el(bi, pivotOf[k]))
		}
		NormalizeSeq(res.Row(bi))
	}

	return res, nil
}
