// SPDX-License-Identifier: MIT
// Package hull: sentinel error set.

package hull

import "errors"

var (
	// ErrNilSet indicates a nil set, basic set, map or basic map argument.
	ErrNilSet = errors.New("hull: nil set")

	// ErrUnexpectedUnbounded indicates an unbounded LP in a context where
	// the boundedness precondition of the wrapping kernel guarantees a
	// finite optimum; the input violated the precondition.
	ErrUnexpectedUnbounded = errors.New("hull: unbounded direction in bounded wrapping")

	// ErrUnexpectedEmpty indicates an LP-empty outcome on a basic set the
	// engine already established to be nonempty.
	ErrUnexpectedEmpty = errors.New("hull: unexpected empty basic set")

	// ErrInternal indicates a violated internal invariant, e.g. a facet
	// slice whose affine hull disagrees with the wrapping state.
	ErrInternal = errors.New("hull: internal invariant violated")
)
