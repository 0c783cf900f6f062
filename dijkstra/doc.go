// Package dijkstra finds minimum bond-length paths on a core.Lattice or an
// induced core.View.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(lat, dijkstra.Source(0), dijkstra.WithReturnPath())
//	path, length, err := dijkstra.ShortestPath(lat, 0, 42)
//	// distance from the nearest of several atoms:
//	dist, _, err := dijkstra.Dijkstra(lat, dijkstra.Sources(cycle...))
//
// Bond lengths are whatever the lattice currently stores, so after a
// geometry relaxation the same query reflects the relaxed geometry.
package dijkstra
