// File: structure.go
// Role: DopingStructure and DopingStructureCollection.

package doping

import (
	"sort"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/relax"
	"github.com/katalvlaran/graphene/species"
)

// Structure is one placed doping motif.
type Structure struct {
	Species species.Species
	// BuildingAtoms are the converted (Graphitic) or removed (pyridinic) atoms.
	BuildingAtoms []int
	// Neighbors are the direct neighbors of BuildingAtoms.
	Neighbors []int
	// NitrogenAtoms are the atoms turned into nitrogen, sorted ascending.
	NitrogenAtoms []int
	// Cycle is the ordered motif boundary, starting at the canonical start
	// atom. Empty for Graphitic.
	Cycle []int
	// ExtraBond is the Pyridinic-N 1 bond closing the five-membered ring.
	ExtraBond *[2]int
	// NeighboringAtoms are the atoms bonded to the cycle but outside it,
	// in cycle order.
	NeighboringAtoms []int
	// View is the subgraph induced by Cycle after the motif was built.
	View *core.View
}

// ClaimedAtoms returns every atom the motif made ineligible or removed,
// sorted ascending.
func (s Structure) ClaimedAtoms() []int {
	var out []int
	if s.Species == species.Graphitic {
		out = append(append(out, s.BuildingAtoms...), s.Neighbors...)
	} else {
		out = append(append(out, s.BuildingAtoms...), s.Cycle...)
	}
	sort.Ints(out)
	return out
}

// Motif returns the relaxation input of a pyridinic structure.
func (s Structure) Motif() relax.Motif {
	return relax.Motif{Species: s.Species, Cycle: s.Cycle, ExtraBond: s.ExtraBond}
}

// Collection is the append-only record of one doping call.
type Collection struct {
	structures []Structure
	nitrogen   map[species.Species][]int
	cycleAtoms map[int]bool
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		nitrogen:   make(map[species.Species][]int),
		cycleAtoms: make(map[int]bool),
	}
}

// Add records s, its nitrogen atoms and its cycle atoms.
func (c *Collection) Add(s Structure) {
	c.structures = append(c.structures, s)
	c.nitrogen[s.Species] = append(c.nitrogen[s.Species], s.NitrogenAtoms...)
	for _, id := range s.Cycle {
		c.cycleAtoms[id] = true
	}
}

// OnCycle reports whether id lies on the cycle of a recorded structure.
func (c *Collection) OnCycle(id int) bool { return c.cycleAtoms[id] }

// Len returns the number of structures.
func (c *Collection) Len() int { return len(c.structures) }

// Structures returns all structures in placement order.
func (c *Collection) Structures() []Structure {
	return append([]Structure(nil), c.structures...)
}

// StructuresFor returns the structures of species sp in placement order.
func (c *Collection) StructuresFor(sp species.Species) []Structure {
	var out []Structure
	for _, s := range c.structures {
		if s.Species == sp {
			out = append(out, s)
		}
	}
	return out
}

// NitrogenAtoms returns the nitrogen atoms recorded for sp, sorted ascending.
func (c *Collection) NitrogenAtoms(sp species.Species) []int {
	out := append([]int(nil), c.nitrogen[sp]...)
	sort.Ints(out)
	return out
}

// NitrogenCount returns the number of nitrogen atoms over all species.
func (c *Collection) NitrogenCount() int {
	n := 0
	for _, ids := range c.nitrogen {
		n += len(ids)
	}
	return n
}

// Motifs returns the relaxation inputs of every pyridinic structure.
func (c *Collection) Motifs() []relax.Motif {
	var out []relax.Motif
	for _, s := range c.structures {
		if s.Species.IsPyridinic() {
			out = append(out, s.Motif())
		}
	}
	return out
}
