// File: lattice.go
// Role: Lattice arena declaration and constructor.
//
// Determinism:
//   - Atom ids are assigned sequentially from 0 and never reused.
//   - Every enumeration (AtomIDs, Atoms, NeighborIDs, Bonds) is sorted.
//
// Concurrency:
//   - mu guards atoms, adjacency and nextID.

package core

import "sync"

// Lattice is the in-memory atom/bond graph of a periodic sheet.
//
// Atoms are stored in an arena keyed by stable integer ids; adjacency maps each
// atom to its bonded neighbors and the shared *Bond record of that pair.
type Lattice struct {
	mu sync.RWMutex

	box          Box
	bondDistance float64

	nextID    int
	atoms     map[int]*Atom
	adjacency map[int]map[int]*Bond
}

// NewLattice creates an empty lattice inside box. bondDistance is the
// baseline carbon-carbon distance the sheet was (or will be) built with.
// Complexity: O(1).
func NewLattice(box Box, bondDistance float64) *Lattice {
	return &Lattice{
		box:          box,
		bondDistance: bondDistance,
		atoms:        make(map[int]*Atom),
		adjacency:    make(map[int]map[int]*Bond),
	}
}

// Box returns the periodic box.
func (l *Lattice) Box() Box {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.box
}

// BondDistance returns the baseline bond length.
func (l *Lattice) BondDistance() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bondDistance
}
