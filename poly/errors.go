// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// All functions return these sentinels (wrapped with fmt.Errorf("ctx: %w")
// only at outer boundaries); tests match them via errors.Is.

package poly

import "errors"

var (
	// ErrNilSet indicates a nil *BasicSet, *Set, *BasicMap or *Map argument.
	ErrNilSet = errors.New("poly: nil set")

	// ErrBadRow indicates a constraint row whose length does not match the
	// space of the basic set it is being added to.
	ErrBadRow = errors.New("poly: constraint row has wrong length")

	// ErrSpaceMismatch indicates two operands whose spaces differ where
	// identical spaces are required (intersection, set union membership).
	ErrSpaceMismatch = errors.New("poly: space mismatch")

	// ErrOutOfRange indicates a constraint or dimension index outside bounds.
	ErrOutOfRange = errors.New("poly: index out of range")

	// ErrHasDivs indicates an operation that requires a div-free basic set
	// was invoked on one that still carries integer divisions.
	ErrHasDivs = errors.New("poly: operation requires a div-free basic set")

	// ErrHasParams indicates an operation that requires a parameter-free
	// basic set was invoked on one with symbolic parameters.
	ErrHasParams = errors.New("poly: operation requires a parameter-free basic set")

	// ErrBadTransform indicates a transform matrix whose shape does not
	// match the space it is applied to.
	ErrBadTransform = errors.New("poly: transform matrix has wrong shape")
)
