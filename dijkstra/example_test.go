package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/dijkstra"
)

// ExampleShortestPath measures a path on a pristine sheet.
func ExampleShortestPath() {
	l, _ := builder.HoneycombCells(4, 8, builder.WithBondDistance(1))
	path, length, err := dijkstra.ShortestPath(l, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("hops=%d length=%.2f\n", len(path)-1, length)
	// Output: hops=3 length=3.00
}
