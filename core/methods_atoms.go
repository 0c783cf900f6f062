// File: methods_atoms.go
// Role: Atom lifecycle, attribute updates and queries.
//
// Determinism:
//   - AtomIDs() and Atoms() are sorted by id ascending.
//
// Concurrency:
//   - Writers take mu exclusively; readers share it.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphene/species"
)

// AddAtom appends a new eligible atom and returns its id.
// Complexity: O(1) amortized.
func (l *Lattice) AddAtom(el Element, pos Vec2) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.atoms[id] = &Atom{ID: id, Element: el, Position: pos, Eligible: true}
	l.adjacency[id] = make(map[int]*Bond)
	return id
}

// RemoveAtom deletes the atom and every bond incident to it.
// Complexity: O(deg(id)).
func (l *Lattice) RemoveAtom(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.atoms[id]; !ok {
		return fmt.Errorf("RemoveAtom(%d): %w", id, ErrAtomNotFound)
	}
	for nbr := range l.adjacency[id] {
		delete(l.adjacency[nbr], id)
	}
	delete(l.adjacency, id)
	delete(l.atoms, id)
	return nil
}

// HasAtom reports whether id exists.
func (l *Lattice) HasAtom(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.atoms[id]
	return ok
}

// Atom returns a copy of the atom record.
func (l *Lattice) Atom(id int) (Atom, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.atoms[id]
	if !ok {
		return Atom{}, fmt.Errorf("Atom(%d): %w", id, ErrAtomNotFound)
	}
	return *a, nil
}

// AtomCount returns the number of atoms.
func (l *Lattice) AtomCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.atoms)
}

// AtomIDs returns all atom ids sorted ascending.
// Complexity: O(V log V).
func (l *Lattice) AtomIDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sortedIDsLocked()
}

func (l *Lattice) sortedIDsLocked() []int {
	ids := make([]int, 0, len(l.atoms))
	for id := range l.atoms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Atoms returns copies of all atoms sorted by id.
func (l *Lattice) Atoms() []Atom {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Atom, 0, len(l.atoms))
	for _, id := range l.sortedIDsLocked() {
		out = append(out, *l.atoms[id])
	}
	return out
}

// SetNitrogen converts the atom to nitrogen of species sp.
func (l *Lattice) SetNitrogen(id int, sp species.Species) error {
	return l.update(id, "SetNitrogen", func(a *Atom) {
		a.Element = Nitrogen
		a.Species = sp
	})
}

// SetEligible sets the doping-eligibility flag.
func (l *Lattice) SetEligible(id int, eligible bool) error {
	return l.update(id, "SetEligible", func(a *Atom) { a.Eligible = eligible })
}

// SetPosition moves the atom. Bond lengths are not refreshed; call
// UpdateBondLengths after a bulk move.
func (l *Lattice) SetPosition(id int, pos Vec2) error {
	return l.update(id, "SetPosition", func(a *Atom) { a.Position = pos })
}

func (l *Lattice) update(id int, method string, fn func(*Atom)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.atoms[id]
	if !ok {
		return fmt.Errorf("%s(%d): %w", method, id, ErrAtomNotFound)
	}
	fn(a)
	return nil
}

// EligibleCarbonIDs returns the ids of carbon atoms still eligible for doping,
// sorted ascending.
func (l *Lattice) EligibleCarbonIDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var ids []int
	for _, id := range l.sortedIDsLocked() {
		a := l.atoms[id]
		if a.Element == Carbon && a.Eligible {
			ids = append(ids, id)
		}
	}
	return ids
}

// NitrogenIDs returns the ids of nitrogen atoms of species sp, sorted ascending.
func (l *Lattice) NitrogenIDs(sp species.Species) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var ids []int
	for _, id := range l.sortedIDsLocked() {
		a := l.atoms[id]
		if a.Element == Nitrogen && a.Species == sp {
			ids = append(ids, id)
		}
	}
	return ids
}

// Positions returns a snapshot of every atom position keyed by id.
func (l *Lattice) Positions() map[int]Vec2 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[int]Vec2, len(l.atoms))
	for id, a := range l.atoms {
		out[id] = a.Position
	}
	return out
}

// Distance returns the minimum-image distance between two atoms.
func (l *Lattice) Distance(a, b int) (float64, error) {
	d, err := l.Displacement(a, b)
	if err != nil {
		return 0, err
	}
	return d.Norm(), nil
}

// Displacement returns the minimum-image vector from atom a to atom b.
func (l *Lattice) Displacement(a, b int) (Vec2, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	pa, ok := l.atoms[a]
	if !ok {
		return Vec2{}, fmt.Errorf("Displacement(%d,%d): %w", a, b, ErrAtomNotFound)
	}
	pb, ok := l.atoms[b]
	if !ok {
		return Vec2{}, fmt.Errorf("Displacement(%d,%d): %w", a, b, ErrAtomNotFound)
	}
	return l.box.Displacement(pa.Position, pb.Position), nil
}

// AtomsWithin returns the ids of atoms whose minimum-image distance from id is
// at most radius, excluding id itself, sorted ascending.
// Complexity: O(V).
func (l *Lattice) AtomsWithin(id int, radius float64) ([]int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	center, ok := l.atoms[id]
	if !ok {
		return nil, fmt.Errorf("AtomsWithin(%d): %w", id, ErrAtomNotFound)
	}
	var out []int
	for _, other := range l.sortedIDsLocked() {
		if other == id {
			continue
		}
		if l.box.Distance(center.Position, l.atoms[other].Position) <= radius {
			out = append(out, other)
		}
	}
	return out, nil
}
