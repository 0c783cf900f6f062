// File: neighbors.go
// Role: Depth-limited neighborhood queries built on BFS.
//
// Determinism:
//   - All results are sorted ascending (ids) or by (A, B) (edges).

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphene/core"
)

// Mode selects which shells a neighborhood query returns.
type Mode int

const (
	// Exact returns only atoms exactly depth hops away.
	Exact Mode = iota
	// Inclusive returns every atom 1..depth hops away.
	Inclusive
)

// Neighbors returns the atoms within depth hops of id under the given mode.
// The start atom itself is never included. Hop distances are shortest-path
// edge counts, so an atom reachable in 1 and 3 hops belongs to shell 1 only.
//
// Errors: ErrBadDepth for depth < 1, plus any BFS error.
// Complexity: O(k) where k is the size of the explored ball.
func Neighbors(adj core.Adjacency, id, depth int, mode Mode) ([]int, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}
	res, err := BFS(adj, id, WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}
	if mode == Exact {
		return res.AtDepth(depth), nil
	}
	out := make([]int, 0, len(res.Order)-1)
	for _, v := range res.Order {
		if v != id {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out, nil
}

// NeighborPaths returns the bonds of the BFS tree rooted at id, truncated at
// depth: one (parent, child) edge per atom reached in 1..depth hops, i.e. the
// union of one hop-shortest path to every atom of the ball. Each edge is
// returned with the smaller id first.
func NeighborPaths(adj core.Adjacency, id, depth int) ([][2]int, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}
	res, err := BFS(adj, id, WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}
	edges := make([][2]int, 0, len(res.Parent))
	for child, parent := range res.Parent {
		if parent < child {
			edges = append(edges, [2]int{parent, child})
		} else {
			edges = append(edges, [2]int{child, parent})
		}
	}
	sortEdges(edges)
	return edges, nil
}

func sortEdges(edges [][2]int) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
}
