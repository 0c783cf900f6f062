// File: order.go
// Role: Ring orientation helpers.

package cycle

import (
	"fmt"

	"github.com/katalvlaran/graphene/core"
)

// Canonical rotates ring to start at its smallest id and orients it toward
// the smaller of that atom's two ring neighbors. The input is not modified.
func Canonical(ring []int) []int {
	n := len(ring)
	if n < 3 {
		return append([]int(nil), ring...)
	}
	lo := 0
	for i := range ring {
		if ring[i] < ring[lo] {
			lo = i
		}
	}
	out := make([]int, n)
	next, prev := ring[(lo+1)%n], ring[(lo-1+n)%n]
	for i := 0; i < n; i++ {
		if next < prev {
			out[i] = ring[(lo+i)%n]
		} else {
			out[i] = ring[(lo-i+n)%n]
		}
	}
	return out
}

// Order walks the ring formed by adj, which must be a single simple cycle
// (typically the View induced by a ring's atoms), starting at start. From start
// the walk steps to the smaller-id neighbor; after that the direction is fixed.
//
// Errors: ErrNotSimpleCycle if an atom does not have exactly two neighbors or
// the walk does not cover every atom; core.ErrAtomNotFound for a missing start.
func Order(adj core.Adjacency, start int) ([]int, error) {
	if !adj.HasAtom(start) {
		return nil, fmt.Errorf("cycle: Order start %d: %w", start, core.ErrAtomNotFound)
	}
	total := len(adj.AtomIDs())
	out := make([]int, 0, total)
	visited := make(map[int]bool, total)
	prev, cur := -1, start
	for !visited[cur] {
		visited[cur] = true
		out = append(out, cur)
		nbrs, err := adj.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("cycle: Order: %w", err)
		}
		if len(nbrs) != 2 {
			return nil, fmt.Errorf("%w: atom %d has %d ring neighbors", ErrNotSimpleCycle, cur, len(nbrs))
		}
		next := nbrs[0]
		if next == prev {
			next = nbrs[1]
		}
		prev, cur = cur, next
	}
	if cur != start || len(out) != total {
		return nil, fmt.Errorf("%w: walk from %d covered %d of %d atoms", ErrNotSimpleCycle, start, len(out), total)
	}
	return out, nil
}
