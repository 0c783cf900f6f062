// File: view.go
// Role: Non-mutating induced subgraph views.
// Determinism:
//   - AtomIDs/NeighborIDs/Bonds follow the same sorted order as Lattice.
// Concurrency:
//   - Read lock on source while snapshotting; the View is an immutable value.

package core

import (
	"fmt"
	"sort"
)

// View is a read-only snapshot of the subgraph induced by a set of atom ids:
// it holds those atoms and every bond whose endpoints are both kept.
// It implements Adjacency.
type View struct {
	atoms     map[int]Atom
	adjacency map[int]map[int]Bond
}

// Induced returns the subgraph of l induced by keep. Ids absent from l are
// ignored. The lattice is not mutated.
// Complexity: O(|keep| · d).
func (l *Lattice) Induced(keep []int) *View {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v := &View{
		atoms:     make(map[int]Atom, len(keep)),
		adjacency: make(map[int]map[int]Bond, len(keep)),
	}
	for _, id := range keep {
		if a, ok := l.atoms[id]; ok {
			v.atoms[id] = *a
			v.adjacency[id] = make(map[int]Bond)
		}
	}
	for id := range v.atoms {
		for nbr, bond := range l.adjacency[id] {
			if _, ok := v.atoms[nbr]; ok {
				v.adjacency[id][nbr] = *bond
			}
		}
	}
	return v
}

// HasAtom reports whether id belongs to the view.
func (v *View) HasAtom(id int) bool {
	_, ok := v.atoms[id]
	return ok
}

// Atom returns the snapshot of atom id.
func (v *View) Atom(id int) (Atom, error) {
	a, ok := v.atoms[id]
	if !ok {
		return Atom{}, fmt.Errorf("View.Atom(%d): %w", id, ErrAtomNotFound)
	}
	return a, nil
}

// AtomIDs returns the view's atom ids sorted ascending.
func (v *View) AtomIDs() []int {
	ids := make([]int, 0, len(v.atoms))
	for id := range v.atoms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NeighborIDs returns the in-view neighbors of id, sorted ascending.
func (v *View) NeighborIDs(id int) ([]int, error) {
	nbrs, ok := v.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("View.NeighborIDs(%d): %w", id, ErrAtomNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Ints(out)
	return out, nil
}

// BondLength returns the snapshot length of the bond between a and b.
func (v *View) BondLength(a, b int) (float64, error) {
	bond, ok := v.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("View.BondLength(%d,%d): %w", a, b, ErrBondNotFound)
	}
	return bond.Length, nil
}

// Bonds returns the view's bonds sorted by (A, B).
func (v *View) Bonds() []Bond {
	var out []Bond
	for id, nbrs := range v.adjacency {
		for nbr, bond := range nbrs {
			if id < nbr {
				out = append(out, bond)
			}
		}
	}
	sortBonds(out)
	return out
}
