// File: report.go
// Role: Per-call doping summary.

package doping

import (
	"math"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/dijkstra"
	"github.com/katalvlaran/graphene/relax"
	"github.com/katalvlaran/graphene/species"
)

// Shortfall records a species whose candidates ran out before its quota.
// Fill marks the Graphitic-N top-up pass rather than a planned quota.
type Shortfall struct {
	Species   species.Species
	Requested int
	Placed    int
	Fill      bool
}

// Report summarizes one Apply call. Percentages are measured against the
// final atom count and rounded to two decimals.
type Report struct {
	Plan         Plan
	InitialAtoms int
	FinalAtoms   int
	AtomsRemoved int

	// Placed is the number of nitrogen atoms placed per species.
	Placed map[species.Species]int
	// Percentages is the achieved percentage per species.
	Percentages map[species.Species]float64
	// TotalPercentage is the achieved total percentage.
	TotalPercentage float64
	// FillPlaced counts the Graphitic-N added by the fill pass; they are
	// included in Placed.
	FillPlaced int

	Shortfalls []Shortfall
	Relaxation relax.Result

	// MinMotifSeparation is the shortest bond-length-weighted path between
	// nitrogen atoms of two different structures; zero with fewer than two
	// structures.
	MinMotifSeparation float64
}

func newReport(plan Plan, initial int) Report {
	return Report{
		Plan:         plan,
		InitialAtoms: initial,
		Placed:       make(map[species.Species]int, len(species.All)),
		Percentages:  make(map[species.Species]float64, len(species.All)),
	}
}

// finish fills the fields that depend on the final lattice.
func (r *Report) finish(lat *core.Lattice, c *Collection) error {
	r.FinalAtoms = lat.AtomCount()
	r.AtomsRemoved = r.InitialAtoms - r.FinalAtoms
	total := 0
	for _, sp := range species.All {
		n := r.Placed[sp]
		total += n
		r.Percentages[sp] = percentOf(n, r.FinalAtoms)
	}
	r.TotalPercentage = percentOf(total, r.FinalAtoms)

	sep, err := minSeparation(lat, c.Structures())
	if err != nil {
		return err
	}
	r.MinMotifSeparation = sep
	return nil
}

func percentOf(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(of)*100*100) / 100
}

// minSeparation runs one multi-source Dijkstra per structure, seeded with its
// nitrogen atoms, and keeps the closest nitrogen of any later structure.
func minSeparation(lat *core.Lattice, structures []Structure) (float64, error) {
	if len(structures) < 2 {
		return 0, nil
	}
	best := math.Inf(1)
	for i, s := range structures[:len(structures)-1] {
		dist, _, err := dijkstra.Dijkstra(lat, dijkstra.Sources(s.NitrogenAtoms...))
		if err != nil {
			return 0, err
		}
		for _, other := range structures[i+1:] {
			for _, id := range other.NitrogenAtoms {
				if d, ok := dist[id]; ok && d < best {
					best = d
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0, nil
	}
	return best, nil
}
