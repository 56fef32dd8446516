// Package poly: textual rendering of constraints and handles (debug aid).
package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// constraintString renders "c0 + c1·v0 + c2·v1 + … op 0", skipping zero terms.
func constraintString(row []*big.Int, op string) string {
	var sb strings.Builder
	wrote := false
	if row[0].Sign() != 0 {
		sb.WriteString(row[0].String())
		wrote = true
	}
	for i, v := range row[1:] {
		if v.Sign() == 0 {
			continue
		}
		if wrote {
			if v.Sign() > 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
			a := new(big.Int).Abs(v)
			if a.Cmp(big.NewInt(1)) != 0 {
				sb.WriteString(a.String())
			}
		} else {
			if v.Sign() < 0 {
				sb.WriteString("-")
			}
			a := new(big.Int).Abs(v)
			if a.Cmp(big.NewInt(1)) != 0 {
				sb.WriteString(a.String())
			}
		}
		fmt.Fprintf(&sb, "v%d", i)
		wrote = true
	}
	if !wrote {
		sb.WriteString("0")
	}
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" 0")

	return sb.String()
}

// String renders b in a compact conjunction form.
func (b *BasicSet) String() string {
	if b == nil {
		return "<nil>"
	}
	if b.MarkedEmpty() {
		return "{ empty }"
	}
	parts := make([]string, 0, len(b.eqs)+len(b.ineqs))
	for _, e := range b.eqs {
		parts = append(parts, constraintString(e, "="))
	}
	for _, in := range b.ineqs {
		parts = append(parts, constraintString(in, ">="))
	}
	if len(parts) == 0 {
		return "{ universe }"
	}

	return "{ " + strings.Join(parts, " and ") + " }"
}

// String renders the union, parts joined by "or".
func (s *Set) String() string {
	if s == nil {
		return "<nil>"
	}
	if len(s.parts) == 0 {
		return "{ empty }"
	}
	lines := make([]string, len(s.parts))
	for i, p := range s.parts {
		lines[i] = p.String()
	}

	return strings.Join(lines, " or ")
}

// structuralKey serializes the full description of b for cheap
// part-level deduplication. Two basic sets with equal keys describe the
// same constraint list verbatim.
func (b *BasicSet) structuralKey() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d|%d;", b.space.Params, b.space.Dims, b.nDiv)
	for _, e := range b.eqs {
		sb.WriteString("e")
		for _, v := range e {
			sb.WriteString(v.String())
			sb.WriteByte(',')
		}
	}
	for _, in := range b.ineqs {
		sb.WriteString("i")
		for _, v := range in {
			sb.WriteString(v.String())
			sb.WriteByte(',')
		}
	}
	for _, d := range b.divs {
		sb.WriteString("d")
		for _, v := range d {
			sb.WriteString(v.String())
			sb.WriteByte(',')
		}
	}

	return sb.String()
}
