// Package mat: integer sequence helpers.
// A "sequence" is a []*big.Int slice, typically one constraint row of a
// polyhedral description. All helpers operate element-wise and allocate
// fresh big.Ints only where documented; callers own the slices they pass.
package mat

import "math/big"

// NewSeq allocates a zero-initialized sequence of length n.
// Complexity: O(n).
func NewSeq(n int) []*big.Int {
	s := make([]*big.Int, n)
	for i := range s {
		s[i] = new(big.Int)
	}

	return s
}

// CpySeq returns a deep copy of src.
// Complexity: O(n).
func CpySeq(src []*big.Int) []*big.Int {
	dst := make([]*big.Int, len(src))
	for i, v := range src {
		dst[i] = new(big.Int).Set(v)
	}

	return dst
}

// EqSeq reports whether a and b have identical length and elements.
// Complexity: O(n).
func EqSeq(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZeroSeq reports whether every element of s is zero.
// Complexity: O(n).
func IsZeroSeq(s []*big.Int) bool {
	for _, v := range s {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// NegSeq negates s in place.
// Complexity: O(n).
func NegSeq(s []*big.Int) {
	for _, v := range s {
		v.Neg(v)
	}
}

// ScaleSeq multiplies every element of s by f in place.
// Complexity: O(n).
func ScaleSeq(s []*big.Int, f *big.Int) {
	for _, v := range s {
		v.Mul(v, f)
	}
}

// GcdSeq returns the (non-negative) gcd of all elements of s;
// zero if s is empty or all-zero.
// Complexity: O(n) gcd steps.
func GcdSeq(s []*big.Int) *big.Int {
	g := new(big.Int)
	for _, v := range s {
		if v.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(v)
			continue
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
		if g.Cmp(bigOne) == 0 {
			break // gcd can only shrink toward 1
		}
	}

	return g
}

// NormalizeSeq divides all elements of s by their common gcd, in place.
// An all-zero sequence is left untouched.
// Complexity: O(n).
func NormalizeSeq(s []*big.Int) {
	g := GcdSeq(s)
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return
	}
	for _, v := range s {
		v.Quo(v, g)
	}
}

// FirstNonZero returns the index of the first non-zero element of s,
// or -1 if s is all-zero.
func FirstNonZero(s []*big.Int) int {
	for i, v := range s {
		if v.Sign() != 0 {
			return i
		}
	}

	return -1
}

// CombineSeq sets dst[i] = a*r1[i] + b*r2[i] for every i, in place.
// dst may alias r1 or r2. All three must share a length.
// Complexity: O(n).
func CombineSeq(dst, r1, r2 []*big.Int, a, b *big.Int) {
	tmp := new(big.Int)
	t2 := new(big.Int)
	for i := range dst {
		tmp.Mul(a, r1[i])
		t2.Mul(b, r2[i])
		dst[i].Add(tmp, t2)
	}
}

// InnerProduct returns Σ a[i]*b[i] as a fresh big.Int.
// Complexity: O(n).
func InnerProduct(a, b []*big.Int) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for i := range a {
		tmp.Mul(a[i], b[i])
		sum.Add(sum, tmp)
	}

	return sum
}

// shared small constants; treated as read-only throughout the package.
var (
	bigOne = big.NewInt(1)
)
