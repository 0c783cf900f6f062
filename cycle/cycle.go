// Package cycle finds and orders rings in a core.Adjacency.
//
// MinimumContaining grows a subgraph outward from a set of seed atoms one hop
// at a time and, after every step, inspects a cycle basis of the subgraph for
// a ring passing through every seed. The search is an explicit frontier loop,
// so it terminates when the subgraph stops growing.
//
// Complexity (per expansion step, S = subgraph size):
//
//   - Time:   O(S · E_S) for the cycle basis
//   - Memory: O(S + E_S)
package cycle

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphene/core"
)

// Sentinel errors for cycle searches.
var (
	// ErrNoSeeds is returned when MinimumContaining receives no seed atoms.
	ErrNoSeeds = errors.New("cycle: no seed atoms")

	// ErrSeedNotFound is returned when a seed atom is absent from the graph.
	ErrSeedNotFound = errors.New("cycle: seed atom not found")

	// ErrNoCycle is returned when no ring passes through every seed, i.e. the
	// expanding subgraph reached its connected component without finding one.
	ErrNoCycle = errors.New("cycle: no cycle contains all seeds")

	// ErrNotSimpleCycle is returned by Order when the graph is not a single ring.
	ErrNotSimpleCycle = errors.New("cycle: graph is not a simple cycle")
)

// MinimumContaining returns the shortest basis ring of the expanding subgraph
// that contains every seed, in canonical order (see Canonical). Among rings
// of equal length the one with the lexicographically smallest sorted id list
// wins. It works on any Adjacency, so it can be confined to a View.
func MinimumContaining(adj core.Adjacency, seeds []int) ([]int, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range seeds {
		if !adj.HasAtom(s) {
			return nil, fmt.Errorf("%w: %d", ErrSeedNotFound, s)
		}
	}

	e := newExpander(adj, seeds)
	if err := e.seed(); err != nil {
		return nil, err
	}
	for {
		if ring := e.bestRing(); ring != nil {
			return Canonical(ring), nil
		}
		grew, err := e.expand()
		if err != nil {
			return nil, err
		}
		if !grew {
			return nil, fmt.Errorf("%w: seeds %v", ErrNoCycle, seeds)
		}
	}
}

// expander owns the growing subgraph of a single search.
type expander struct {
	adj   core.Adjacency
	seeds []int
	sub   *simple.UndirectedGraph
}

func newExpander(adj core.Adjacency, seeds []int) *expander {
	return &expander{adj: adj, seeds: seeds, sub: simple.NewUndirectedGraph()}
}

// seed inserts the seed atoms and the bonds among them.
func (e *expander) seed() error {
	in := make(map[int]bool, len(e.seeds))
	for _, s := range e.seeds {
		in[s] = true
		e.addNode(s)
	}
	for _, s := range e.seeds {
		nbrs, err := e.adj.NeighborIDs(s)
		if err != nil {
			return fmt.Errorf("cycle: neighbors of %d: %w", s, err)
		}
		for _, n := range nbrs {
			if in[n] {
				e.addEdge(s, n)
			}
		}
	}
	return nil
}

// expand adds every bond incident to a current subgraph atom that is not yet
// in the subgraph. It reports whether anything was added.
func (e *expander) expand() (bool, error) {
	ids := nodeIDs(e.sub.Nodes())
	grew := false
	for _, id := range ids {
		nbrs, err := e.adj.NeighborIDs(id)
		if err != nil {
			return false, fmt.Errorf("cycle: neighbors of %d: %w", id, err)
		}
		for _, n := range nbrs {
			if !e.sub.HasEdgeBetween(int64(id), int64(n)) {
				e.addEdge(id, n)
				grew = true
			}
		}
	}
	return grew, nil
}

// bestRing scans the cycle basis for the shortest ring containing all seeds.
func (e *expander) bestRing() []int {
	var best []int
	var bestKey []int
	for _, c := range topo.UndirectedCyclesIn(e.sub) {
		ring := ringIDs(c)
		if !containsAll(ring, e.seeds) {
			continue
		}
		key := append([]int(nil), ring...)
		sort.Ints(key)
		if best == nil || len(ring) < len(best) || (len(ring) == len(best) && lessInts(key, bestKey)) {
			best, bestKey = ring, key
		}
	}
	return best
}

func (e *expander) addNode(id int) {
	if e.sub.Node(int64(id)) == nil {
		e.sub.AddNode(simple.Node(id))
	}
}

func (e *expander) addEdge(a, b int) {
	e.addNode(a)
	e.addNode(b)
	e.sub.SetEdge(e.sub.NewEdge(simple.Node(a), simple.Node(b)))
}

// ringIDs converts a basis cycle to ids; a closing repeat of the first node
// is dropped.
func ringIDs(nodes []graph.Node) []int {
	if n := len(nodes); n > 1 && nodes[0].ID() == nodes[n-1].ID() {
		nodes = nodes[:n-1]
	}
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	return out
}

func nodeIDs(it graph.Nodes) []int {
	var ids []int
	for it.Next() {
		ids = append(ids, int(it.Node().ID()))
	}
	sort.Ints(ids)
	return ids
}

func containsAll(ring, want []int) bool {
	set := make(map[int]bool, len(ring))
	for _, id := range ring {
		set[id] = true
	}
	for _, id := range want {
		if !set[id] {
			return false
		}
	}
	return true
}

func lessInts(a, b []int) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
