// Package lp: the exact simplex core.
//
// The solver works on the standard form
//
//	minimize c·y   subject to  A·y = rhs,  y ≥ 0
//
// over big.Rat. Free polyhedral variables are split into positive and
// negative parts and inequality rows receive slack variables before the
// problem reaches this file. Phase I introduces one artificial variable
// per row; Bland's smallest-index rule makes both phases terminate.
package lp

import "math/big"

// standardForm is a dense standard-form LP.
type standardForm struct {
	m, n int          // rows, structural columns
	a    [][]*big.Rat // m × n
	rhs  []*big.Rat   // length m
	c    []*big.Rat   // length n
}

// simplexResult carries the outcome of a standard-form solve.
type simplexResult struct {
	status Status
	opt    *big.Rat   // valid when status == StatusOK
	y      []*big.Rat // optimal point, length n, valid when StatusOK
}

// solveStandard runs the two-phase simplex on sf.
func solveStandard(sf *standardForm) simplexResult {
	m, n := sf.m, sf.n

	// 1) Build the working tableau with artificial columns appended:
	//    columns 0..n-1 structural, n..n+m-1 artificial.
	//    t[i] = [row | rhs], t[m] = phase objective row.
	width := n + m + 1
	t := make([][]*big.Rat, m+1)
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		t[i] = make([]*big.Rat, width)
		for j := 0; j < n; j++ {
			t[i][j] = new(big.Rat).Set(sf.a[i][j])
		}
		for j := n; j < n+m; j++ {
			t[i][j] = new(big.Rat)
		}
		t[i][width-1] = new(big.Rat).Set(sf.rhs[i])
		// make the right-hand side non-negative
		if t[i][width-1].Sign() < 0 {
			for j := range t[i] {
				t[i][j].Neg(t[i][j])
			}
		}
		t[i][n+i].SetInt64(1)
		basis[i] = n + i
	}

	// 2) Phase I objective: minimize the sum of artificials. The reduced
	//    cost row starts as −Σ constraint rows over structural columns.
	obj := make([]*big.Rat, width)
	for j := range obj {
		obj[j] = new(big.Rat)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			obj[j].Sub(obj[j], t[i][j])
		}
		obj[width-1].Sub(obj[width-1], t[i][width-1])
	}
	t[m] = obj

	if !pivotToOptimum(t, basis, n+m) {
		// Phase I can never be unbounded: the objective is ≥ 0.
		return simplexResult{status: StatusEmpty}
	}
	// −optimum sits in the corner cell; feasible iff it is zero
	if t[m][width-1].Sign() != 0 {
		return simplexResult{status: StatusEmpty}
	}

	// 3) Drive leftover artificials out of the basis, dropping redundant
	//    rows whose structural part vanished.
	rows := make([]int, 0, m)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			rows = append(rows, i)
			continue
		}
		pivoted := false
		for j := 0; j < n; j++ {
			if t[i][j].Sign() != 0 {
				pivot(t, basis, i, j)
				rows = append(rows, i)
				pivoted = true
				break
			}
		}
		if !pivoted {
			continue // redundant constraint row
		}
	}

	// 4) Phase II objective: reduced costs of sf.c over the current basis.
	for j := 0; j < n; j++ {
		t[m][j].Set(sf.c[j])
	}
	for j := n; j < width-1; j++ {
		t[m][j].SetInt64(0)
	}
	t[m][width-1].SetInt64(0)
	tmp := new(big.Rat)
	for _, i := range rows {
		cb := sf.c[basis[i]]
		if cb.Sign() == 0 {
			continue
		}
		for j := 0; j < width; j++ {
			tmp.Mul(cb, t[i][j])
			t[m][j].Sub(t[m][j], tmp)
		}
	}

	// restrict pivoting to the surviving rows and structural columns
	if !pivotToOptimumRows(t, basis, n, rows) {
		return simplexResult{status: StatusUnbounded}
	}

	// 5) Read the solution.
	y := make([]*big.Rat, n)
	for j := range y {
		y[j] = new(big.Rat)
	}
	for _, i := range rows {
		if basis[i] < n {
			y[basis[i]].Set(t[i][width-1])
		}
	}
	opt := new(big.Rat).Neg(t[m][width-1])

	return simplexResult{status: StatusOK, opt: opt, y: y}
}

// pivotToOptimum runs Bland-rule pivoting over all m rows and the first
// nCols columns. Returns false on unboundedness.
func pivotToOptimum(t [][]*big.Rat, basis []int, nCols int) bool {
	rows := make([]int, len(basis))
	for i := range rows {
		rows[i] = i
	}

	return pivotToOptimumRows(t, basis, nCols, rows)
}

// pivotToOptimumRows is pivotToOptimum restricted to a subset of rows.
func pivotToOptimumRows(t [][]*big.Rat, basis []int, nCols int, rows []int) bool {
	m := len(t) - 1
	width := len(t[m])
	ratio := new(big.Rat)
	best := new(big.Rat)
	for {
		// entering column: smallest index with a negative reduced cost
		enter := -1
		for j := 0; j < nCols; j++ {
			if t[m][j].Sign() < 0 {
				enter = j
				break
			}
		}
		if enter < 0 {
			return true // optimal
		}

		// leaving row: minimum ratio, ties by smallest basis index (Bland)
		leave := -1
		for _, i := range rows {
			if t[i][enter].Sign() <= 0 {
				continue
			}
			ratio.Quo(t[i][width-1], t[i][enter])
			if leave < 0 || ratio.Cmp(best) < 0 ||
				(ratio.Cmp(best) == 0 && basis[i] < basis[leave]) {
				leave = i
				best.Set(ratio)
			}
		}
		if leave < 0 {
			return false // unbounded
		}
		pivot(t, basis, leave, enter)
	}
}

// pivot performs a full tableau pivot on (row, col).
func pivot(t [][]*big.Rat, basis []int, row, col int) {
	width := len(t[row])
	inv := new(big.Rat).Inv(t[row][col])
	for j := 0; j < width; j++ {
		t[row][j].Mul(t[row][j], inv)
	}
	tmp := new(big.Rat)
	for i := range t {
		if i == row || t[i][col].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(t[i][col])
		for j := 0; j < width; j++ {
			tmp.Mul(f, t[row][j])
			t[i][j].Sub(t[i][j], tmp)
		}
	}
	basis[row] = col
}
