// File: motif.go
// Role: Motif Builder. Turns validated Components into a placed Structure.
//
// The ring is searched before the lattice is touched, so a site whose ring
// cannot form leaves no trace. Failures after that wrap ErrInvariantViolation.

package doping

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/cycle"
	"github.com/katalvlaran/graphene/species"
)

type motifBuilder struct {
	lat *core.Lattice
	rng *rand.Rand
	// onCycle reports atoms already on a motif cycle; nil means none are.
	onCycle func(int) bool
}

// build mutates the lattice for c and returns the resulting structure.
func (b *motifBuilder) build(c Components) (Structure, error) {
	if c.Species == species.Graphitic {
		return b.graphitic(c)
	}
	return b.pyridinic(c)
}

// graphitic flips the building atom to nitrogen and retires it together
// with its direct neighbors.
func (b *motifBuilder) graphitic(c Components) (Structure, error) {
	id := c.BuildingAtoms[0]
	if err := b.lat.SetNitrogen(id, species.Graphitic); err != nil {
		return Structure{}, err
	}
	if err := b.retire(append([]int{id}, c.Neighbors...)); err != nil {
		return Structure{}, err
	}
	return Structure{
		Species:       species.Graphitic,
		BuildingAtoms: c.BuildingAtoms,
		Neighbors:     c.Neighbors,
		NitrogenAtoms: []int{id},
	}, nil
}

// pyridinic finds the motif ring first, then removes the building atoms,
// converts neighbors, and orders and retires the ring.
func (b *motifBuilder) pyridinic(c Components) (Structure, error) {
	ring, err := planRing(b.lat, c, b.onCycle)
	if err != nil {
		return Structure{}, err
	}
	for _, id := range c.BuildingAtoms {
		if err := b.lat.RemoveAtom(id); err != nil {
			return Structure{}, err
		}
	}

	nitrogen := b.chooseNitrogen(c)
	for _, id := range nitrogen {
		if err := b.lat.SetNitrogen(id, c.Species); err != nil {
			return Structure{}, err
		}
	}

	props := species.MustLookup(c.Species)
	view := b.lat.Induced(ring)
	start, err := startNode(c, nitrogen, ring, view)
	if err != nil {
		return Structure{}, err
	}
	ordered, err := cycle.Order(view, start)
	if err != nil {
		return Structure{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	if n := countNitrogen(view, ordered); n != props.NitrogenAtoms {
		return Structure{}, fmt.Errorf("%w: %s cycle holds %d nitrogen atoms, want %d",
			ErrInvariantViolation, c.Species, n, props.NitrogenAtoms)
	}

	s := Structure{
		Species:       c.Species,
		BuildingAtoms: c.BuildingAtoms,
		Neighbors:     c.Neighbors,
		NitrogenAtoms: nitrogen,
		Cycle:         ordered,
	}
	if props.HasExtraBond() {
		if s.ExtraBond, err = b.closePentagon(c.Neighbors, start); err != nil {
			return Structure{}, err
		}
	}
	if err := b.retire(ordered); err != nil {
		return Structure{}, err
	}
	if s.NeighboringAtoms, err = neighboringAtoms(b.lat, ordered); err != nil {
		return Structure{}, err
	}
	s.View = b.lat.Induced(ordered)
	return s, nil
}

// planRing returns the ring c would leave behind, searching the lattice as
// if the building atoms were already gone. The ring may not share atoms with
// another motif cycle (onCycle, when set) nor hold nitrogen. The lattice is
// not mutated. Every reason the ring cannot host the motif wraps
// ErrInvariantViolation.
func planRing(lat *core.Lattice, c Components, onCycle func(int) bool) ([]int, error) {
	props, err := species.Lookup(c.Species)
	if err != nil {
		return nil, err
	}
	adj := withoutAtoms{lat: lat, hidden: make(map[int]bool, len(c.BuildingAtoms))}
	for _, id := range c.BuildingAtoms {
		adj.hidden[id] = true
	}
	ring, err := cycle.MinimumContaining(adj, c.Neighbors)
	if err != nil {
		return nil, fmt.Errorf("%w: %s around %v: %w", ErrInvariantViolation, c.Species, c.BuildingAtoms, err)
	}
	if len(ring) != props.CycleSize {
		return nil, fmt.Errorf("%w: %s cycle has %d atoms, want %d",
			ErrInvariantViolation, c.Species, len(ring), props.CycleSize)
	}
	for _, id := range ring {
		a, err := lat.Atom(id)
		if err != nil {
			return nil, err
		}
		if a.IsNitrogen() {
			return nil, fmt.Errorf("%w: %s cycle reaches nitrogen atom %d", ErrInvariantViolation, c.Species, id)
		}
		if onCycle != nil && onCycle(id) {
			return nil, fmt.Errorf("%w: %s cycle shares atom %d with another motif", ErrInvariantViolation, c.Species, id)
		}
	}
	view := lat.Induced(ring)
	if _, err := cycle.Order(view, ring[0]); err != nil {
		return nil, fmt.Errorf("%w: %s around %v: %w", ErrInvariantViolation, c.Species, c.BuildingAtoms, err)
	}
	if props.NitrogenAtoms >= len(c.Neighbors) {
		if _, err := startNode(c, c.Neighbors, ring, view); err != nil {
			return nil, err
		}
	}
	if props.HasExtraBond() {
		for i, p := range c.Neighbors {
			for _, q := range c.Neighbors[i+1:] {
				if lat.HasBond(p, q) {
					return nil, fmt.Errorf("%w: %s neighbors %d and %d already bonded",
						ErrInvariantViolation, c.Species, p, q)
				}
			}
		}
	}
	return ring, nil
}

// withoutAtoms is the lattice adjacency with some atoms hidden.
type withoutAtoms struct {
	lat    *core.Lattice
	hidden map[int]bool
}

func (w withoutAtoms) HasAtom(id int) bool { return !w.hidden[id] && w.lat.HasAtom(id) }

func (w withoutAtoms) AtomIDs() []int { return w.keep(w.lat.AtomIDs()) }

func (w withoutAtoms) NeighborIDs(id int) ([]int, error) {
	if w.hidden[id] {
		return nil, fmt.Errorf("doping: neighbors of hidden atom %d: %w", id, core.ErrAtomNotFound)
	}
	nbrs, err := w.lat.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	return w.keep(nbrs), nil
}

func (w withoutAtoms) keep(ids []int) []int {
	out := ids[:0:0]
	for _, id := range ids {
		if !w.hidden[id] {
			out = append(out, id)
		}
	}
	return out
}

// chooseNitrogen picks which neighbors become nitrogen: one at random for
// Pyridinic-N 1, two for Pyridinic-N 2, all of them otherwise.
func (b *motifBuilder) chooseNitrogen(c Components) []int {
	want := species.MustLookup(c.Species).NitrogenAtoms
	if want >= len(c.Neighbors) {
		return append([]int(nil), c.Neighbors...)
	}
	out := make([]int, 0, want)
	for _, i := range b.rng.Perm(len(c.Neighbors))[:want] {
		out = append(out, c.Neighbors[i])
	}
	sort.Ints(out)
	return out
}

// startNode picks the canonical first atom of the ordered cycle:
//   - Pyridinic-N 1: the nitrogen atom;
//   - Pyridinic-N 2: the neighbor left as carbon;
//   - otherwise: the lowest-id cycle carbon with no nitrogen cycle neighbor.
func startNode(c Components, nitrogen, ring []int, view *core.View) (int, error) {
	isN := make(map[int]bool, len(nitrogen))
	for _, id := range nitrogen {
		isN[id] = true
	}
	switch c.Species {
	case species.Pyridinic1:
		return nitrogen[0], nil
	case species.Pyridinic2:
		for _, id := range c.Neighbors {
			if !isN[id] {
				return id, nil
			}
		}
	default:
		sorted := append([]int(nil), ring...)
		sort.Ints(sorted)
		for _, id := range sorted {
			if isN[id] {
				continue
			}
			nbrs, err := view.NeighborIDs(id)
			if err != nil {
				return 0, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
			}
			if !isN[nbrs[0]] && !isN[nbrs[len(nbrs)-1]] {
				return id, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %w: %s cycle %v", ErrInvariantViolation, ErrNoStartNode, c.Species, ring)
}

// closePentagon bonds the two structure-building neighbors other than start,
// flagging the bond periodic when it crosses the box edge.
func (b *motifBuilder) closePentagon(neighbors []int, start int) (*[2]int, error) {
	var pair []int
	for _, id := range neighbors {
		if id != start {
			pair = append(pair, id)
		}
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: extra bond needs 2 atoms, have %v", ErrInvariantViolation, pair)
	}
	p, err := b.lat.Atom(pair[0])
	if err != nil {
		return nil, err
	}
	q, err := b.lat.Atom(pair[1])
	if err != nil {
		return nil, err
	}
	var opts []core.BondOption
	if b.lat.Box().Wraps(p.Position, q.Position) {
		opts = append(opts, core.WithPeriodic())
	}
	if _, err := b.lat.AddBond(pair[0], pair[1], opts...); err != nil {
		return nil, fmt.Errorf("%w: extra bond: %w", ErrInvariantViolation, err)
	}
	return &[2]int{pair[0], pair[1]}, nil
}

// retire marks ids ineligible.
func (b *motifBuilder) retire(ids []int) error {
	for _, id := range ids {
		if err := b.lat.SetEligible(id, false); err != nil {
			return err
		}
	}
	return nil
}

func countNitrogen(view *core.View, ids []int) int {
	n := 0
	for _, id := range ids {
		if a, err := view.Atom(id); err == nil && a.IsNitrogen() {
			n++
		}
	}
	return n
}

// neighboringAtoms lists atoms bonded to the cycle but outside it, in cycle
// order and then ascending id.
func neighboringAtoms(lat *core.Lattice, ordered []int) ([]int, error) {
	inCycle := make(map[int]bool, len(ordered))
	for _, id := range ordered {
		inCycle[id] = true
	}
	seen := make(map[int]bool)
	var out []int
	for _, id := range ordered {
		nbrs, err := lat.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if !inCycle[n] && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out, nil
}
