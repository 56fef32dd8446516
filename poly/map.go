// Package poly: BasicMap and Map — the relational siblings of
// BasicSet/Set, with the dimensions split into input and output.
// For hull purposes a map is flattened to its underlying set; the split
// is pure bookkeeping restored afterwards.
package poly

// BasicMap is a basic set whose dimensions are interpreted as nIn input
// dimensions followed by nOut output dimensions.
type BasicMap struct {
	bset *BasicSet
	nIn  int
	nOut int
}

// NewBasicMap returns the universe relation with the given schema.
func NewBasicMap(params, nIn, nOut int) *BasicMap {
	return &BasicMap{bset: Universe(NewSpace(params, nIn+nOut)), nIn: nIn, nOut: nOut}
}

// BasicMapFromBasicSet reinterprets b as a relation with the given
// input/output split. b must have exactly nIn+nOut dimensions.
// The basic map takes ownership of b.
func BasicMapFromBasicSet(b *BasicSet, nIn, nOut int) (*BasicMap, error) {
	if b == nil {
		return nil, ErrNilSet
	}
	if b.space.Dims != nIn+nOut {
		return nil, ErrSpaceMismatch
	}

	return &BasicMap{bset: b, nIn: nIn, nOut: nOut}, nil
}

// BasicSet returns the underlying basic set, aliasing internal storage.
func (m *BasicMap) BasicSet() *BasicSet { return m.bset }

// NIn returns the number of input dimensions.
func (m *BasicMap) NIn() int { return m.nIn }

// NOut returns the number of output dimensions.
func (m *BasicMap) NOut() int { return m.nOut }

// Copy returns a deep, independent copy of m.
func (m *BasicMap) Copy() *BasicMap {
	if m == nil {
		return nil
	}

	return &BasicMap{bset: m.bset.Copy(), nIn: m.nIn, nOut: m.nOut}
}

// Map is an ordered union of basic maps sharing one schema.
type Map struct {
	space Space
	nIn   int
	nOut  int
	parts []*BasicMap
}

// NewMap returns an empty union relation with the given schema.
func NewMap(params, nIn, nOut int) *Map {
	return &Map{space: NewSpace(params, nIn+nOut), nIn: nIn, nOut: nOut}
}

// Space returns the parameter/dimension schema shared by all parts.
func (m *Map) Space() Space { return m.space }

// NIn returns the number of input dimensions.
func (m *Map) NIn() int { return m.nIn }

// NOut returns the number of output dimensions.
func (m *Map) NOut() int { return m.nOut }

// Len returns the number of basic maps in the union.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.parts)
}

// Part returns the i-th basic map, aliasing internal storage.
func (m *Map) Part(i int) *BasicMap { return m.parts[i] }

// Add appends a basic map; it must share the schema. Takes ownership.
func (m *Map) Add(bm *BasicMap) error {
	if m == nil || bm == nil {
		return ErrNilSet
	}
	if bm.bset.space != m.space || bm.nIn != m.nIn || bm.nOut != m.nOut {
		return ErrSpaceMismatch
	}
	m.parts = append(m.parts, bm)

	return nil
}

// Copy returns a deep, independent copy of m.
func (m *Map) Copy() *Map {
	if m == nil {
		return nil
	}
	c := NewMap(m.space.Params, m.nIn, m.nOut)
	for _, p := range m.parts {
		c.parts = append(c.parts, p.Copy())
	}

	return c
}

// AlignDivs gives every part an identical div sequence (definitions
// matched exactly, missing divs appended as unconstrained columns).
func (m *Map) AlignDivs() error {
	if m == nil {
		return ErrNilSet
	}
	bsets := make([]*BasicSet, len(m.parts))
	for i, p := range m.parts {
		bsets[i] = p.bset
	}

	return alignDivs(bsets)
}

// UnderlyingSet flattens m to the union of the parts' underlying pure
// sets: params, in, out and divs all become plain set dimensions.
// Divs must be aligned first so every part shares one flat schema.
func (m *Map) UnderlyingSet() (*Set, error) {
	if m == nil {
		return nil, ErrNilSet
	}
	if err := m.AlignDivs(); err != nil {
		return nil, err
	}
	nDiv := 0
	if len(m.parts) > 0 {
		nDiv = m.parts[0].bset.nDiv
	}
	res := NewSet(NewSpace(0, m.space.Total()+nDiv))
	for _, p := range m.parts {
		pure, err := p.bset.UnderlyingPure()
		if err != nil {
			return nil, err
		}
		if err = res.Add(pure); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// AlignDivs gives every part of the set an identical div sequence.
func (s *Set) AlignDivs() error {
	if s == nil {
		return ErrNilSet
	}

	return alignDivs(s.parts)
}

// UnderlyingSet flattens s to the union of the parts' underlying pure
// sets (divs aligned, then turned into plain trailing dimensions).
func (s *Set) UnderlyingSet() (*Set, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	if err := s.AlignDivs(); err != nil {
		return nil, err
	}
	nDiv := 0
	if len(s.parts) > 0 {
		nDiv = s.parts[0].nDiv
	}
	res := NewSet(NewSpace(0, s.space.Total()+nDiv))
	for _, p := range s.parts {
		pure, err := p.UnderlyingPure()
		if err != nil {
			return nil, err
		}
		if err = res.Add(pure); err != nil {
			return nil, err
		}
	}

	return res, nil
}
