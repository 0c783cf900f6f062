// File: validator.go
// Role: Doping Site Validator.
//
// Eligibility is read from the lattice at call time, so a candidate that
// went stale after the pool was filled is simply rejected.

package doping

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphene/bfs"
	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/species"
)

// claimDepth is the hop radius that must be free around pyridinic sites.
const claimDepth = 2

// Sizes of the two-hop balls of an intact honeycomb: around one atom (the
// atom itself excluded) and the union around a bonded pair. Smaller balls
// mean the sheet wraps onto itself within the motif.
const (
	minSiteBall = 9
	minPairBall = 14
)

// Components is the raw material of a motif: the structure-building atoms
// (converted or removed) and their direct neighbors.
type Components struct {
	Species       species.Species
	BuildingAtoms []int
	Neighbors     []int
}

type validator struct {
	lat     *core.Lattice
	rng     *rand.Rand
	onCycle func(int) bool
}

// validate pops one candidate from p and tests it for sp. ok is false when
// the pool is empty or the drawn atom cannot host sp; the caller retries.
func (v *validator) validate(sp species.Species, p *pool) (c Components, ok bool, err error) {
	id, drawn := p.draw()
	if !drawn || !v.open(id) {
		return Components{}, false, nil
	}
	switch sp {
	case species.Graphitic:
		return v.graphitic(id)
	case species.Pyridinic1, species.Pyridinic2, species.Pyridinic3:
		return v.vacancy(sp, id)
	case species.Pyridinic4:
		return v.divacancy(id)
	default:
		return Components{}, false, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(sp))
	}
}

// open reports whether id exists and is an eligible carbon.
func (v *validator) open(id int) bool {
	a, err := v.lat.Atom(id)
	return err == nil && a.Element == core.Carbon && a.Eligible
}

// graphitic accepts id when no direct neighbor is nitrogen.
func (v *validator) graphitic(id int) (Components, bool, error) {
	nbrs, err := v.lat.NeighborIDs(id)
	if err != nil {
		return Components{}, false, err
	}
	for _, n := range nbrs {
		a, err := v.lat.Atom(n)
		if err != nil {
			return Components{}, false, err
		}
		if a.IsNitrogen() {
			return Components{}, false, nil
		}
	}
	return Components{Species: species.Graphitic, BuildingAtoms: []int{id}, Neighbors: nbrs}, true, nil
}

// vacancy accepts id when it has three neighbors, its two-hop ball is
// entirely eligible and removing it leaves a ring of the species' size.
func (v *validator) vacancy(sp species.Species, id int) (Components, bool, error) {
	nbrs, _, free, err := v.freeSite(id)
	if err != nil || !free {
		return Components{}, false, err
	}
	c := Components{Species: sp, BuildingAtoms: []int{id}, Neighbors: nbrs}
	return v.formable(c)
}

// divacancy pairs id with a neighbor, tried in random order, such that the
// union of both two-hop balls is eligible and the removal leaves a ring of
// the right size.
func (v *validator) divacancy(id int) (Components, bool, error) {
	nbrs, ball, free, err := v.freeSite(id)
	if err != nil || !free {
		return Components{}, false, err
	}
	for _, i := range v.rng.Perm(len(nbrs)) {
		second := nbrs[i]
		secondNbrs, secondBall, free, err := v.freeSite(second)
		if err != nil {
			return Components{}, false, err
		}
		if !free || len(unionExcept(ball, secondBall)) < minPairBall {
			continue
		}
		c, ok, err := v.formable(Components{
			Species:       species.Pyridinic4,
			BuildingAtoms: []int{id, second},
			Neighbors:     unionExcept(nbrs, secondNbrs, id, second),
		})
		if err != nil || ok {
			return c, ok, err
		}
	}
	return Components{}, false, nil
}

// freeSite returns the neighbors and the two-hop ball of id, and
// whether id, being threefold coordinated, has a full and entirely eligible
// ball.
func (v *validator) freeSite(id int) (nbrs, ball []int, free bool, err error) {
	if !v.open(id) {
		return nil, nil, false, nil
	}
	if nbrs, err = v.lat.NeighborIDs(id); err != nil {
		return nil, nil, false, err
	}
	if len(nbrs) != 3 {
		return nbrs, nil, false, nil
	}
	if ball, err = bfs.Neighbors(v.lat, id, claimDepth, bfs.Inclusive); err != nil {
		return nil, nil, false, err
	}
	if len(ball) < minSiteBall {
		return nbrs, ball, false, nil
	}
	for _, n := range ball {
		if !v.open(n) {
			return nbrs, ball, false, nil
		}
	}
	return nbrs, ball, true, nil
}

// formable runs the ring search of c without touching the lattice. A ring
// that cannot form rejects the site; any other failure is returned.
func (v *validator) formable(c Components) (Components, bool, error) {
	if _, err := planRing(v.lat, c, v.onCycle); err != nil {
		if errors.Is(err, ErrInvariantViolation) {
			return Components{}, false, nil
		}
		return Components{}, false, err
	}
	return c, true, nil
}

func unionExcept(a, b []int, skip ...int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	for _, s := range skip {
		seen[s] = true
	}
	var out []int
	for _, list := range [][]int{a, b} {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	sort.Ints(out)
	return out
}
