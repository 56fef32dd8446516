// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// All functions in this package return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ErrX) at outer boundaries); tests match them
// via errors.Is. No function panics on user-triggered conditions.

package mat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or cols < 0).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Product where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrSingular is returned when inversion meets a zero pivot column,
	// i.e. the matrix has no inverse.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("mat: nil matrix")
)
