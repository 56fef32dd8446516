// Package lp solves exact rational linear programs over basic sets.
//
// 🚀 What is polyhedra/lp?
//
//	The feasibility and optimization oracle of the library. Every hull
//	algorithm reduces its questions — is this piece empty, is this
//	direction bounded, is this constraint redundant — to minimizing an
//	affine objective over one basic set. This package answers those
//	questions exactly, over big.Rat arithmetic, with a two-phase primal
//	simplex using Bland's anti-cycling rule.
//
// ✨ Key features:
//   - Solve: min/max of an affine objective over a basic set
//   - outcome as data: StatusOK, StatusUnbounded, StatusEmpty
//   - Tableau: a reusable query handle bound to one basic set with
//     Min, SampleVertex, DetectImplicitEqualities, DetectRedundant,
//     recession-cone construction and boundedness
//   - no floating point anywhere; termination guaranteed by Bland's rule
//
// ⚙️ Usage:
//
//	t, _ := lp.FromBasicSet(bset)
//	st, opt, err := t.Min(obj, big.NewInt(1))
//	switch st {
//	case lp.StatusOK:        // opt holds the exact minimum
//	case lp.StatusUnbounded: // the objective decreases without bound
//	case lp.StatusEmpty:     // the basic set has no rational point
//	}
//
// Unbounded and empty are answers, not errors (the hull algorithms
// branch on them); errors are reserved for malformed input.
package lp
