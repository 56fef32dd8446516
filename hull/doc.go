// Package hull computes convex hulls of unions of polyhedral basic sets.
//
// 🚀 What is polyhedra/hull?
//
//	The engine of the library. Given a finite union of integer-linear
//	basic sets, it computes either the exact convex hull as a single
//	basic set, or a simple hull — the tightest superset expressible
//	with relaxed translates of the input's own constraints.
//
// ✨ The algorithmic kernels:
//   - BasicHull: LP-backed redundancy removal on one basic set
//   - a ridge-wrapping facet enumerator (Fukuda's Extended Convex Hull)
//     for bounded, full-dimensional unions
//   - a Fourier–Motzkin kernel (Minkowski sum in homogeneous
//     coordinates, then projection) for unbounded unions
//   - 1-D and 0-D specializations
//   - SimpleHull / BoundedSimpleHull: constraint-indexed supersets
//   - AffineHull and a recession-cone boundedness test
//
// ⚙️ Usage:
//
//	h, err := hull.ConvexHull(s)       // exact hull, one basic set
//	g, err := hull.SimpleHull(s)       // cheap superset
//	b, err := hull.BasicHull(bset)     // drop redundant constraints
//
// The dispatcher normalizes the input, factors out the affine hull,
// picks wrapping or Fourier–Motzkin by boundedness of the recession
// cones, and lifts the result back into the caller's schema.
//
// Everything runs over exact rational arithmetic; hull construction
// drops the integer-lattice restriction (the result is the hull of the
// rational relaxation) and clears that mark on the way out.
package hull
