// Package bfs provides breadth-first search over a core.Adjacency (a whole
// core.Lattice or an induced core.View), returning hop distances, parent
// links, and visit order, plus depth-limited neighborhood helpers.
//
// What
//
//   - BFS: visit order, Depth and Parent maps, with optional OnVisit hook,
//     MaxDepth limit, neighbor filter and cancellation context.
//   - Neighbors(adj, id, depth, Exact):     atoms exactly depth hops away.
//   - Neighbors(adj, id, depth, Inclusive): atoms 1..depth hops away.
//   - NeighborPaths(adj, id, depth):        bonds of the truncated BFS tree.
//
// Determinism
//
//	core.Adjacency returns neighbors sorted by id and BFS enqueues them in that
//	order, so the visit sequence is reproducible. Query results are sorted.
//
// Properties
//
//   - Neighbors(…, 1, Exact) equals adj.NeighborIDs(id).
//   - Neighbors(…, n, Inclusive) is the union of Exact shells 1..n.
//
// Complexity (V = atoms in the explored ball, E = their bonds)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the adjacency is nil.
//   - ErrStartVertexNotFound  if the start atom does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrBadDepth             for neighborhood queries with depth < 1.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
