// File: methods_clone.go
// Role: Deep copies and whole-lattice summaries.
// Concurrency:
//   - Read locks on the source; results are fresh values.

package core

import "github.com/katalvlaran/graphene/species"

// Clone returns a deep copy: atoms, bonds, box and the id counter, so ids
// allocated on the clone never collide with ids of the source.
// Complexity: O(V + E).
func (l *Lattice) Clone() *Lattice {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := NewLattice(l.box, l.bondDistance)
	out.nextID = l.nextID
	for id, a := range l.atoms {
		cp := *a
		out.atoms[id] = &cp
		out.adjacency[id] = make(map[int]*Bond, len(l.adjacency[id]))
	}
	for id, nbrs := range l.adjacency {
		for nbr, bond := range nbrs {
			if id < nbr {
				cp := *bond
				out.adjacency[id][nbr] = &cp
				out.adjacency[nbr][id] = &cp
			}
		}
	}
	return out
}

// Connected reports whether every atom is reachable from every other atom.
// An empty lattice is connected.
// Complexity: O(V + E).
func (l *Lattice) Connected() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.atoms) == 0 {
		return true
	}
	var start int
	for id := range l.atoms {
		start = id
		break
	}
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nbr := range l.adjacency[cur] {
			if !seen[nbr] {
				seen[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}
	return len(seen) == len(l.atoms)
}

// Stats summarizes the composition of a lattice.
type Stats struct {
	Atoms         int
	Bonds         int
	PeriodicBonds int
	Carbon        int
	Nitrogen      map[species.Species]int
}

// TotalNitrogen returns the number of nitrogen atoms of all species.
func (s Stats) TotalNitrogen() int {
	n := 0
	for _, c := range s.Nitrogen {
		n += c
	}
	return n
}

// Stats counts atoms, bonds and nitrogen atoms per species.
// Complexity: O(V + E).
func (l *Lattice) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st := Stats{Atoms: len(l.atoms), Nitrogen: make(map[species.Species]int)}
	for _, a := range l.atoms {
		if a.Element == Nitrogen {
			st.Nitrogen[a.Species]++
		} else {
			st.Carbon++
		}
	}
	for id, nbrs := range l.adjacency {
		for nbr, bond := range nbrs {
			if id < nbr {
				st.Bonds++
				if bond.Periodic {
					st.PeriodicBonds++
				}
			}
		}
	}
	return st
}
