package hull_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/hull"
	"github.com/katalvlaran/polyhedra/poly"
)

// ExampleConvexHull hulls the union of two overlapping intervals.
func ExampleConvexHull() {
	space := poly.NewSpace(0, 1)

	a := poly.Universe(space)
	_ = a.AddInequalityInt64(0, 1)  // x ≥ 0
	_ = a.AddInequalityInt64(5, -1) // x ≤ 5

	b := poly.Universe(space)
	_ = b.AddInequalityInt64(-3, 1) // x ≥ 3
	_ = b.AddInequalityInt64(10, -1) // x ≤ 10

	s := poly.NewSet(space)
	_ = s.Add(a)
	_ = s.Add(b)

	h, err := hull.ConvexHull(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h)
	// Output: { v0 >= 0 and 10 - v0 >= 0 }
}
