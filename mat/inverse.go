// Package mat: exact matrix inversion.
// Inverse computes the inverse of a square integer matrix as an integer
// matrix plus a positive common denominator, so that M·Inv = d·I holds
// exactly. The polyhedral transforms built on top of this never see a
// rounded value.
package mat

import "math/big"

// Inverse returns (inv, d) with m·inv = d·I, d > 0, for a square
// non-singular m. The computation runs a Gauss–Jordan elimination over
// exact rationals and then clears denominators with a single lcm.
//
// Errors:
//   - ErrNilMatrix  — m is nil
//   - ErrNonSquare  — m is not square
//   - ErrSingular   — m has no inverse
//
// Complexity: O(n³) rational operations.
func Inverse(m *Matrix) (*Matrix, *big.Int, error) {
	// 1) Validate input
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	if m.r != m.c {
		return nil, nil, ErrNonSquare
	}
	n := m.r
	if n == 0 {
		inv, _ := New(0, 0)
		return inv, big.NewInt(1), nil
	}

	// 2) Build the augmented rational tableau [m | I]
	aug := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).SetInt(m.el(i, j))
		}
		for j := n; j < 2*n; j++ {
			aug[i][j] = new(big.Rat)
		}
		aug[i][n+i].SetInt64(1)
	}

	// 3) Gauss–Jordan with partial (first non-zero) pivoting
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		// 3.1) Find a pivot row
		pivot := -1
		for row := col; row < n; row++ {
			if aug[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, nil, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		// 3.2) Scale the pivot row to make the pivot 1
		inv := new(big.Rat).Inv(aug[col][col])
		for j := col; j < 2*n; j++ {
			aug[col][j].Mul(aug[col][j], inv)
		}

		// 3.3) Eliminate the column from every other row
		for row := 0; row < n; row++ {
			if row == col || aug[row][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[row][col])
			for j := col; j < 2*n; j++ {
				tmp.Mul(f, aug[col][j])
				aug[row][j].Sub(aug[row][j], tmp)
			}
		}
	}

	// 4) Clear denominators: d = lcm of all denominators in the right half
	d := big.NewInt(1)
	g := new(big.Int)
	for i := 0; i < n; i++ {
		for j := n; j < 2*n; j++ {
			den := aug[i][j].Denom()
			g.GCD(nil, nil, d, den)
			d.Mul(d, new(big.Int).Quo(den, g))
		}
	}

	// 5) Materialize the integer inverse
	res, err := New(n, n)
	if err != nil {
		return nil, nil, err
	}
	q := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell := aug[i][n+j]
			q.Quo(d, cell.Denom())
			res.el(i, j).Mul(cell.Num(), q)
		}
	}

	return res, d, nil
}
