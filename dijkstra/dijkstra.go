// Package dijkstra implements Dijkstra's shortest-path algorithm on
// bond-length weighted lattices.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries)
//
// Notes on implementation choices:
//
//   - Bond lengths are read lazily during relaxation; a negative length aborts.
//   - Multiple sources start at distance 0, which yields the distance from the
//     nearest source to every atom.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Ties are broken by atom id, so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest bond-length distances from the configured
// source atom(s) to every reachable atom of g.
//
// Returns:
//
//   - dist: map from atom id to minimum distance; unreachable atoms are absent.
//   - prev: predecessor map if ReturnPath=true (nil otherwise). Sources have no entry.
//   - err:  error if inputs are invalid or a negative bond length is found.
func Dijkstra(g Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Sources) == 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	for _, s := range cfg.Sources {
		if !g.HasAtom(s) {
			return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, s)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64),
		visited: make(map[int]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	return r.dist, r.prev, nil
}

// ShortestPath returns the atom sequence of a minimum bond-length path from
// `from` to `to` together with its length.
func ShortestPath(g Graph, from, to int) ([]int, float64, error) {
	if g != nil && !g.HasAtom(to) {
		return nil, 0, fmt.Errorf("%w: target %d", ErrVertexNotFound, to)
	}
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}
	path := []int{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, d, nil
}

// PathLength returns the minimum bond-length distance between two atoms.
func PathLength(g Graph, from, to int) (float64, error) {
	_, d, err := ShortestPath(g, from, to)
	return d, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

// init seeds every source at distance zero.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process repeatedly extracts the closest unvisited atom and relaxes its bonds.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}
	return nil
}

// relax attempts to improve distances to every neighbor of u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, v := range neighbors {
		w, err := r.g.BondLength(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: bond %d-%d: %w", u, v, err)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: bond %d-%d length=%g", ErrNegativeWeight, u, v, w)
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[v]; ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
	return nil
}

// nodeItem is an atom and its tentative distance from the sources.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
