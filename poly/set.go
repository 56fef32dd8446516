// Package poly: Set — a finite union of basic sets over one space.
package poly

import (
	"math/big"
)

// Set is an ordered collection of basic sets with union semantics.
// A set with no parts denotes the empty set.
type Set struct {
	space Space
	parts []*BasicSet
}

// NewSet returns an empty union over the given space.
func NewSet(s Space) *Set {
	return &Set{space: s}
}

// SetFromBasicSet wraps a single basic set into a union of one.
func SetFromBasicSet(b *BasicSet) (*Set, error) {
	if b == nil {
		return nil, ErrNilSet
	}
	s := NewSet(b.space)
	s.parts = append(s.parts, b)

	return s, nil
}

// Space returns the schema shared by all parts.
func (s *Set) Space() Space { return s.space }

// Len returns the number of basic sets in the union.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.parts)
}

// Part returns the i-th basic set, aliasing internal storage.
func (s *Set) Part(i int) *BasicSet { return s.parts[i] }

// Add appends a basic set to the union. The part must share the space.
// The set takes ownership; callers Copy first to retain the argument.
func (s *Set) Add(b *BasicSet) error {
	if s == nil || b == nil {
		return ErrNilSet
	}
	if b.space != s.space {
		return ErrSpaceMismatch
	}
	s.parts = append(s.parts, b)

	return nil
}

// DropPart removes the i-th basic set from the union.
func (s *Set) DropPart(i int) error {
	if i < 0 || i >= len(s.parts) {
		return ErrOutOfRange
	}
	s.parts = append(s.parts[:i], s.parts[i+1:]...)

	return nil
}

// Copy returns a deep, independent copy of s.
func (s *Set) Copy() *Set {
	if s == nil {
		return nil
	}
	c := NewSet(s.space)
	for _, p := range s.parts {
		c.parts = append(c.parts, p.Copy())
	}

	return c
}

// SetRational marks every part as interpreted over the rationals.
func (s *Set) SetRational() {
	for _, p := range s.parts {
		p.SetRational()
	}
}

// ClearRational drops the rational mark from every part.
func (s *Set) ClearRational() {
	for _, p := range s.parts {
		p.ClearRational()
	}
}

// RemoveEmptyParts drops every part whose emptiness is already
// established (flag or face contradiction). LP-backed emptiness is the
// engine's job; parts it proves empty get flagged and removed here.
func (s *Set) RemoveEmptyParts() {
	if s == nil {
		return
	}
	kept := s.parts[:0]
	for _, p := range s.parts {
		if p.FastIsEmpty() {
			continue
		}
		kept = append(kept, p)
	}
	s.parts = kept
}

// PlainIsEmpty reports whether the union has no possibly-nonempty part.
func (s *Set) PlainIsEmpty() bool {
	if s == nil {
		return true
	}
	for _, p := range s.parts {
		if !p.FastIsEmpty() {
			return false
		}
	}

	return true
}

// AddEquality appends the equality row to every part of s.
func (s *Set) AddEquality(row []*big.Int) error {
	if s == nil {
		return ErrNilSet
	}
	for _, p := range s.parts {
		if err := p.AddEquality(row); err != nil {
			return err
		}
	}

	return nil
}

// EliminateVars existentially eliminates a variable range from every part.
func (s *Set) EliminateVars(first, n int) error {
	if s == nil {
		return ErrNilSet
	}
	for _, p := range s.parts {
		if err := p.EliminateVars(first, n); err != nil {
			return err
		}
	}

	return nil
}

// Normalize simplifies every part, removes the ones that turned out
// empty and deduplicates parts with identical descriptions.
func (s *Set) Normalize() error {
	if s == nil {
		return ErrNilSet
	}
	for _, p := range s.parts {
		if err := p.Simplify(); err != nil {
			return err
		}
	}
	s.RemoveEmptyParts()

	// cheap structural dedup: identical row lists after simplification
	seen := make(map[string]bool, len(s.parts))
	kept := s.parts[:0]
	for _, p := range s.parts {
		key := p.structuralKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, p)
	}
	s.parts = kept

	return nil
}
