// Package bfs provides breadth-first search over a core.Adjacency,
// returning hop distances, parent links, and visit order.
//
// BFS explores atoms in increasing hop distance from a start atom,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphene/core"
)

// queueItem pairs an atom id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     core.Adjacency
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on adj starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a wrapped core error on neighbor
// lookup failure, or any user-supplied hook error.
func BFS(adj core.Adjacency, start int, opts ...Option) (*BFSResult, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !adj.HasAtom(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		visited: make(map[int]bool),
		res: &BFSResult{
			Start:  start,
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, start, true)
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id, d, parent int, root bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if !root {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in ascending id order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.adj.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id, false)
		}
	}
	return nil
}
