package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphene/builder"
)

// ExampleHoneycomb builds a 20×20 Å sheet and inspects it.
func ExampleHoneycomb() {
	l, err := builder.Honeycomb(20, 20, builder.WithBondDistance(1.42))
	if err != nil {
		fmt.Println(err)
		return
	}
	st := l.Stats()
	fmt.Println("atoms:", st.Atoms)
	fmt.Println("bonds:", st.Bonds)
	fmt.Println("periodic bonds:", st.PeriodicBonds)
	nb, _ := l.NeighborIDs(0)
	fmt.Println("neighbors of atom 0:", nb)

	// Output:
	// atoms: 128
	// bonds: 192
	// periodic bonds: 16
	// neighbors of atom 0: [1 15 113]
}
