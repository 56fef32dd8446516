// Package mat provides exact integer matrices and integer-sequence
// primitives for polyhedral computations.
//
// 🚀 What is polyhedra/mat?
//
//	The arithmetic bedrock of the library: dense matrices of *big.Int
//	values together with the row-level helpers (gcd normalization,
//	scaled combinations, inner products) that constraint manipulation
//	needs. Everything is exact — there is no floating point anywhere.
//
// ✨ Key features:
//   - dense row-major *big.Int matrices with bounds-checked access
//   - exact square inversion with a common denominator (M·Inv = d·I)
//   - structural ops: product, row swap, row/column drops
//   - sequence helpers on []*big.Int rows: Gcd, Normalize, Combine, …
//
// ⚙️ Usage:
//
//	m, _ := mat.New(3, 3)
//	m.SetInt64(0, 0, 2) // …
//	inv, d, err := mat.Inverse(m)
//
// All errors are package-level sentinels checked via errors.Is; no
// function panics on user input.
package mat
