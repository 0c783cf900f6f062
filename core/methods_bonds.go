// File: methods_bonds.go
// Role: Bond lifecycle and adjacency queries.
//
// Determinism:
//   - NeighborIDs() is sorted ascending; Bonds() is sorted by (A, B).
//
// Concurrency:
//   - Writers take mu exclusively; readers share it.

package core

import (
	"fmt"
	"sort"
)

// AddBond connects a and b. The length defaults to the current minimum-image
// distance of the two atoms; options may flag the bond periodic or override the
// length.
// Complexity: O(1).
func (l *Lattice) AddBond(a, b int, opts ...BondOption) (Bond, error) {
	if a == b {
		return Bond{}, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrSelfBond)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	pa, okA := l.atoms[a]
	pb, okB := l.atoms[b]
	if !okA || !okB {
		return Bond{}, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrAtomNotFound)
	}
	if _, exists := l.adjacency[a][b]; exists {
		return Bond{}, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrDuplicateBond)
	}

	lo, hi := orderedPair(a, b)
	bond := &Bond{A: lo, B: hi, Length: l.box.Distance(pa.Position, pb.Position)}
	for _, opt := range opts {
		opt(bond)
	}
	l.adjacency[a][b] = bond
	l.adjacency[b][a] = bond
	return *bond, nil
}

// RemoveBond disconnects a and b.
func (l *Lattice) RemoveBond(a, b int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.adjacency[a][b]; !ok {
		return fmt.Errorf("RemoveBond(%d,%d): %w", a, b, ErrBondNotFound)
	}
	delete(l.adjacency[a], b)
	delete(l.adjacency[b], a)
	return nil
}

// HasBond reports whether a and b are bonded.
func (l *Lattice) HasBond(a, b int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.adjacency[a][b]
	return ok
}

// Bond returns a copy of the bond between a and b.
func (l *Lattice) Bond(a, b int) (Bond, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bond, ok := l.adjacency[a][b]
	if !ok {
		return Bond{}, fmt.Errorf("Bond(%d,%d): %w", a, b, ErrBondNotFound)
	}
	return *bond, nil
}

// BondLength returns the stored length of the bond between a and b.
func (l *Lattice) BondLength(a, b int) (float64, error) {
	bond, err := l.Bond(a, b)
	if err != nil {
		return 0, err
	}
	return bond.Length, nil
}

// NeighborIDs returns the atoms bonded to id, sorted ascending.
// Complexity: O(d log d).
func (l *Lattice) NeighborIDs(id int) ([]int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	nbrs, ok := l.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrAtomNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Ints(out)
	return out, nil
}

// Degree returns the number of bonds incident to id.
func (l *Lattice) Degree(id int) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	nbrs, ok := l.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrAtomNotFound)
	}
	return len(nbrs), nil
}

// BondCount returns the number of bonds.
func (l *Lattice) BondCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, nbrs := range l.adjacency {
		n += len(nbrs)
	}
	return n / 2
}

// Bonds returns copies of all bonds sorted by (A, B).
// Complexity: O(E log E).
func (l *Lattice) Bonds() []Bond {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Bond, 0)
	for id, nbrs := range l.adjacency {
		for nbr, bond := range nbrs {
			if id < nbr {
				out = append(out, *bond)
			}
		}
	}
	sortBonds(out)
	return out
}

// UpdateBondLengths recomputes every bond length from current positions
// using the minimum-image convention.
// Complexity: O(E).
func (l *Lattice) UpdateBondLengths() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, nbrs := range l.adjacency {
		for nbr, bond := range nbrs {
			if id < nbr {
				bond.Length = l.box.Distance(l.atoms[id].Position, l.atoms[nbr].Position)
			}
		}
	}
}

func sortBonds(bs []Bond) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].A != bs[j].A {
			return bs[i].A < bs[j].A
		}
		return bs[i].B < bs[j].B
	})
}
