package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/species"
)

// ExampleLattice demonstrates building, doping and querying a tiny lattice.
func ExampleLattice() {
	l := core.NewLattice(core.Box{Width: 4, Height: 4}, 1.0)
	a := l.AddAtom(core.Carbon, core.Vec2{X: 0.5, Y: 2})
	b := l.AddAtom(core.Carbon, core.Vec2{X: 3.5, Y: 2})

	// The two atoms are 3 apart in the plane but only 1 apart across the wrap.
	bond, _ := l.AddBond(a, b, core.WithPeriodic())
	fmt.Printf("length=%.1f periodic=%v\n", bond.Length, bond.Periodic)

	_ = l.SetNitrogen(b, species.Graphitic)
	nb, _ := l.NeighborIDs(a)
	fmt.Println("neighbors of 0:", nb)
	fmt.Println("graphitic N:", l.NitrogenIDs(species.Graphitic))

	// Output:
	// length=1.0 periodic=true
	// neighbors of 0: [1]
	// graphitic N: [1]
}
