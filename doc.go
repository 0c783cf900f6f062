// Package graphene builds periodic honeycomb sheets and dopes them with
// nitrogen motifs.
//
// What is graphene?
//
//	An in-memory library that brings together:
//		• Core primitives: atoms, bonds and a periodic box, mutated under locks
//		• Builders: honeycomb sheets of any size with full periodic wrap
//		• Topology queries: BFS neighborhoods, Dijkstra paths, minimum cycles
//		• Doping: Graphitic-N and Pyridinic-N 1…4 motifs placed at random
//		• Relaxation: harmonic bond/angle energy minimized with L-BFGS
//
// Packages, leaves first:
//
//	species/  - the five nitrogen species and their target bond lengths/angles
//	core/     - Atom, Bond, Lattice, Box (minimum image) and induced Views
//	builder/  - honeycomb lattice construction
//	bfs/      - depth-limited neighbor search and neighbor paths
//	dijkstra/ - bond-length weighted shortest paths
//	cycle/    - minimum cycle through a set of atoms, cycle ordering
//	relax/    - geometry relaxation
//	doping/   - allocation planner, site validator, motif builder, placement
//	config/   - TOML configuration
//
// Quick ASCII example of one unit cell (4 atoms, 3 internal bonds):
//
//	    1───2
//	   /     \
//	  0       3
//
// Typical use:
//
//	lat, _ := builder.Honeycomb(20, 20)
//	d, _ := doping.New(lat, doping.WithSeed(42))
//	rep, err := d.Apply(doping.Request{TotalPercentage: doping.Percentage(15)})
package graphene
