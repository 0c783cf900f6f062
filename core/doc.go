// Package core is the storage layer of the graphene toolkit: a periodic
// two-dimensional sheet represented as an arena of atoms keyed by stable
// integer ids, plus undirected bonds between them.
//
// What
//
//   - Lattice: thread-safe atom/bond arena with a periodic Box.
//   - Atom: element, position, nitrogen species tag, doping-eligibility flag.
//   - Bond: ordered id pair (A < B), minimum-image length, periodic flag.
//   - View: immutable induced subgraph used by cycle searches and motif records.
//   - Adjacency: the read-only topology interface satisfied by Lattice and View.
//
// Determinism
//
//	Ids are allocated sequentially and never reused. Every enumeration is
//	sorted (ids ascending, bonds by (A, B)), so algorithms that iterate in
//	returned order are reproducible.
//
// Geometry
//
//	Distances and displacements use the minimum-image convention of the
//	lattice Box: a displacement d is folded as d - L*round(d/L) per axis.
//	Bond lengths are stored values; after moving atoms in bulk call
//	UpdateBondLengths.
//
// Complexity (V = atoms, E = bonds)
//
//   - AddAtom, AddBond, HasBond: O(1)
//   - RemoveAtom: O(deg)
//   - AtomIDs, Atoms: O(V log V); Bonds: O(E log E)
//   - Clone, Stats, Connected, UpdateBondLengths: O(V + E)
package core
