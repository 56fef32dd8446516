// Package poly defines the polyhedral data model: basic sets, sets,
// basic maps and maps over exact integer constraint rows.
//
// 🚀 What is polyhedra/poly?
//
//	The structural core of the library. A BasicSet is one convex piece —
//	a conjunction of linear equalities and inequalities with optional
//	symbolic parameters and integer divisions; a Set is a finite union
//	of such pieces. Maps are the relational siblings with the dimensions
//	split into input and output.
//
// ✨ Key features:
//   - constraint rows as exact []*big.Int sequences (constant first)
//   - Gaussian elimination on equalities with substitution everywhere
//   - constraint normalization, deduplication and fast emptiness checks
//   - Fourier–Motzkin elimination and dimension dropping
//   - homogeneous matrix preimage for coordinate transforms
//   - div alignment across the pieces of a set or map
//
// Constraint convention: a row (c₀, c₁, …, c_d) means
// c₀ + Σ cᵢ·xᵢ ≥ 0 for an inequality, = 0 for an equality.
//
// Ownership: functions never retain the slices they are given; rows are
// copied on the way in. Handles returned by Copy are deep and independent.
//
// The algorithms that consume this model live in polyhedra/lp and
// polyhedra/hull.
package poly
