// Package polyhedra computes convex hulls of integer-linear polyhedral
// sets with exact rational arithmetic.
//
// 🚀 What is polyhedra?
//
//	A library for reasoning about finite unions of basic sets — each a
//	conjunction of linear equalities and inequalities over rationals
//	and integers with optional symbolic parameters — and for computing
//	their convex hulls:
//
//	  • Exact hull: facet enumeration via ridge wrapping (Fukuda's
//	    Extended Convex Hull) for bounded unions, Minkowski-sum
//	    projection (Fourier–Motzkin) for unbounded ones
//	  • Simple hull: the tightest superset built from relaxed
//	    translates of the input's own constraints
//	  • Redundancy removal, affine hulls, boundedness tests
//
// ✨ Why choose polyhedra?
//
//   - Exact                — big.Int/big.Rat arithmetic, no floats, ever
//   - Deterministic        — LP with Bland's rule, canonical normal forms
//   - Pure Go              — the only dependency is testify, for tests
//
// Everything is organized under four subpackages:
//
//	mat/   — exact integer matrices and row-sequence primitives
//	poly/  — basic sets, sets, maps: the polyhedral data model
//	lp/    — exact rational linear programming over basic sets
//	hull/  — the convex-hull engine itself
//
// Quick ASCII example:
//
//	   y
//	   │   ∙ (0,1)
//	   │   │╲            conv({(0,0),(1,0),(0,1)})
//	   │   │ ╲             = { x ≥ 0, y ≥ 0, x+y ≤ 1 }
//	   └───∙──∙── x
//	     (0,0) (1,0)
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra
