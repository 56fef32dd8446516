// Package lp: the Tableau query handle.
//
// A Tableau binds the simplex core to one basic set. The polyhedral
// variables are free, so each is split into a positive and a negative
// part; every inequality row receives one slack variable. The handle is
// reusable across queries and supports excluding inequality rows, which
// is what the redundancy oracle needs.
package lp

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/poly"
)

// Tableau is an LP query handle over one basic set.
// It keeps a reference to the basic set and reads its current rows at
// every query; DetectImplicitEqualities and DetectRedundant rewrite that
// basic set in place.
type Tableau struct {
	bset    *poly.BasicSet
	dropped []bool // inequality rows excluded from queries
}

// FromBasicSet builds a query handle for b.
func FromBasicSet(b *poly.BasicSet) (*Tableau, error) {
	if b == nil {
		return nil, ErrNilBasicSet
	}

	return &Tableau{bset: b, dropped: make([]bool, b.NIneq())}, nil
}

// FromBasicMap builds a query handle for the basic set underlying bm.
func FromBasicMap(bm *poly.BasicMap) (*Tableau, error) {
	if bm == nil {
		return nil, ErrNilBasicSet
	}

	return FromBasicSet(bm.BasicSet())
}

// FromRecessionCone builds a handle for the recession cone of b:
// the homogeneous system with every constant zeroed.
func FromRecessionCone(b *poly.BasicSet) (*Tableau, error) {
	if b == nil {
		return nil, ErrNilBasicSet
	}
	cone := b.Copy()
	for i := 0; i < cone.NEq(); i++ {
		cone.Equality(i)[0].SetInt64(0)
	}
	for i := 0; i < cone.NIneq(); i++ {
		cone.Inequality(i)[0].SetInt64(0)
	}
	cone.SetRational()

	return FromBasicSet(cone)
}

// Solve minimizes (or maximizes) the affine objective obj/denom over
// the basic set b. obj has the constraint-row layout (constant first).
// StatusEmpty and StatusUnbounded are outcomes, not errors.
func Solve(b *poly.BasicSet, maximize bool, obj []*big.Int, denom *big.Int) (Status, *big.Rat, error) {
	t, err := FromBasicSet(b)
	if err != nil {
		return StatusEmpty, nil, err
	}
	if maximize {
		neg := make([]*big.Int, len(obj))
		for i, v := range obj {
			neg[i] = new(big.Int).Neg(v)
		}
		st, opt, err2 := t.Min(neg, denom)
		if st == StatusOK {
			opt.Neg(opt)
		}

		return st, opt, err2
	}

	return t.Min(obj, denom)
}

// Min returns the minimum of (obj·x̂)/denom over the basic set,
// where x̂ = (1, x). Excluded inequality rows are ignored.
func (t *Tableau) Min(obj []*big.Int, denom *big.Int) (Status, *big.Rat, error) {
	return t.minSkipping(obj, denom, -1)
}

// minSkipping is Min with one extra inequality index excluded.
func (t *Tableau) minSkipping(obj []*big.Int, denom *big.Int, skip int) (Status, *big.Rat, error) {
	// 1) Validate the query
	if t == nil || t.bset == nil {
		return StatusEmpty, nil, ErrNilBasicSet
	}
	b := t.bset
	if len(obj) != 1+b.Total() {
		return StatusEmpty, nil, ErrBadObjective
	}
	if denom == nil || denom.Sign() <= 0 {
		return StatusEmpty, nil, ErrBadDenominator
	}
	if b.MarkedEmpty() {
		return StatusEmpty, nil, nil
	}

	// 2) Build the standard form and solve
	sf := t.standardForm(obj, skip)
	res := solveStandard(sf)
	switch res.status {
	case StatusEmpty, StatusUnbounded:
		return res.status, nil, nil
	}

	// 3) Translate the optimum back: value = (obj0 + min)/denom
	val := new(big.Rat).Add(new(big.Rat).SetInt(obj[0]), res.opt)
	val.Quo(val, new(big.Rat).SetInt(denom))

	return StatusOK, val, nil
}

// SampleVertex returns a rational point of the basic set, or
// StatusEmpty when there is none.
func (t *Tableau) SampleVertex() (Status, []*big.Rat, error) {
	if t == nil || t.bset == nil {
		return StatusEmpty, nil, ErrNilBasicSet
	}
	b := t.bset
	if b.MarkedEmpty() {
		return StatusEmpty, nil, nil
	}
	obj := make([]*big.Int, 1+b.Total())
	for i := range obj {
		obj[i] = new(big.Int)
	}
	sf := t.standardForm(obj, -1)
	res := solveStandard(sf)
	if res.status == StatusEmpty {
		return StatusEmpty, nil, nil
	}
	total := b.Total()
	x := make([]*big.Rat, total)
	for i := 0; i < total; i++ {
		x[i] = new(big.Rat).Sub(res.y[i], res.y[total+i])
	}

	return StatusOK, x, nil
}

// standardForm converts the basic set into min c·y, A·y = rhs, y ≥ 0:
// x = u − w with u, w ≥ 0, one slack per active inequality.
func (t *Tableau) standardForm(obj []*big.Int, skip int) *standardForm {
	b := t.bset
	total := b.Total()

	// active inequality rows
	var act []int
	for i := 0; i < b.NIneq(); i++ {
		if i == skip || (i < len(t.dropped) && t.dropped[i]) {
			continue
		}
		act = append(act, i)
	}

	m := b.NEq() + len(act)
	n := 2*total + len(act)
	sf := &standardForm{m: m, n: n}
	sf.a = make([][]*big.Rat, m)
	sf.rhs = make([]*big.Rat, m)
	sf.c = make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		sf.c[j] = new(big.Rat)
	}
	for j := 0; j < total; j++ {
		sf.c[j].SetInt(obj[1+j])
		sf.c[total+j].Neg(sf.c[j])
	}

	fill := func(ri int, row []*big.Int, slack int) {
		sf.a[ri] = make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			sf.a[ri][j] = new(big.Rat)
		}
		for j := 0; j < total; j++ {
			sf.a[ri][j].SetInt(row[1+j])
			sf.a[ri][total+j].Neg(sf.a[ri][j])
		}
		if slack >= 0 {
			sf.a[ri][2*total+slack].SetInt64(-1)
		}
		sf.rhs[ri] = new(big.Rat).Neg(new(big.Rat).SetInt(row[0]))
	}

	ri := 0
	for i := 0; i < b.NEq(); i++ {
		fill(ri, b.Equality(i), -1)
		ri++
	}
	for si, i := range act {
		fill(ri, b.Inequality(i), si)
		ri++
	}

	return sf
}
