// Package mat: dense exact integer matrix.
// Matrix is a row-major matrix of *big.Int values, the shape used for
// homogeneous coordinate transforms of polyhedral descriptions.
package mat

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a dense row-major matrix of big.Int values.
// rows/cols are fixed at construction; Data cells are mutable in place.
type Matrix struct {
	r, c int
	data []*big.Int // flat backing storage, length r*c
}

// New creates an r×c zero matrix. Zero-sized dimensions are allowed
// (empty transforms occur for 0-dimensional spaces); negative ones are not.
// Complexity: O(r*c).
func New(rows, cols int) (*Matrix, error) {
	// Validate shape
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Matrix{r: rows, c: cols, data: NewSeq(rows * cols)}, nil
}

// Identity creates an n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromRows builds a matrix whose rows are deep copies of the given
// sequences. All rows must share a length.
// Complexity: O(r*c).
func FromRows(rows [][]*big.Int) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0)
	}
	c := len(rows[0])
	m, err := New(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.data[i*c+j].Set(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// At returns the element at (row, col), or ErrOutOfRange.
func (m *Matrix) At(row, col int) (*big.Int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, ErrOutOfRange
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Matrix) Set(row, col int, v *big.Int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}
	m.data[row*m.c+col].Set(v)

	return nil
}

// SetInt64 assigns the int64 value v at (row, col).
func (m *Matrix) SetInt64(row, col int, v int64) error {
	return m.Set(row, col, big.NewInt(v))
}

// el returns the cell at (row, col) without bounds checking.
// Internal fast path; callers guarantee validity.
func (m *Matrix) el(row, col int) *big.Int {
	return m.data[row*m.c+col]
}

// Row returns the i-th row as a slice aliasing the backing storage.
// Mutating the returned cells mutates the matrix.
func (m *Matrix) Row(i int) []*big.Int {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of m.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return &Matrix{r: m.r, c: m.c, data: CpySeq(m.data)}
}

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return ErrOutOfRange
	}
	if i == j {
		return nil
	}
	ri, rj := m.Row(i), m.Row(j)
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// Product returns the matrix product a·b.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·n·c) big.Int multiplications.
func Product(a, b *Matrix) (*Matrix, error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	res, err := New(a.r, b.c)
	if err != nil {
		return nil, err
	}
	tmp := new(big.Int)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			cell := res.data[i*res.c+j]
			for k := 0; k < a.c; k++ {
				tmp.Mul(a.el(i, k), b.el(k, j))
				cell.Add(cell, tmp)
			}
		}
	}

	return res, nil
}

// VecProduct returns the row vector v·m (v interpreted as 1×r).
// Returns ErrDimensionMismatch when len(v) != m.Rows().
// Complexity: O(r*c).
func VecProduct(v []*big.Int, m *Matrix) ([]*big.Int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != m.r {
		return nil, ErrDimensionMismatch
	}
	res := NewSeq(m.c)
	tmp := new(big.Int)
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			tmp.Mul(v[i], m.el(i, j))
			res[j].Add(res[j], tmp)
		}
	}

	return res, nil
}

// DropRows returns a copy of m with rows [first, first+n) removed.
func (m *Matrix) DropRows(first, n int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if first < 0 || n < 0 || first+n > m.r {
		return nil, ErrOutOfRange
	}
	res, err := New(m.r-n, m.c)
	if err != nil {
		return nil, err
	}
	ri := 0
	for i := 0; i < m.r; i++ {
		if i >= first && i < first+n {
			continue
		}
		for j := 0; j < m.c; j++ {
			res.data[ri*res.c+j].Set(m.el(i, j))
		}
		ri++
	}

	return res, nil
}

// DropCols returns a copy of m with columns [first, first+n) removed.
func (m *Matrix) DropCols(first, n int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if first < 0 || n < 0 || first+n > m.c {
		return nil, ErrOutOfRange
	}
	res, err := New(m.r, m.c-n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		cj := 0
		for j := 0; j < m.c; j++ {
			if j >= first && j < first+n {
				continue
			}
			res.data[i*res.c+cj].Set(m.el(i, j))
			cj++
		}
	}

	return res, nil
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.el(i, j).String())
		}
		sb.WriteString("]\n")
	}

	return fmt.Sprintf("%d×%d\n%s", m.r, m.c, sb.String())
}
