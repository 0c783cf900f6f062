// SPDX-License-Identifier: MIT
// Package: graphene/species
//
// properties.go - static geometric targets per species.
//
// Conventions:
//   - Cycle bond i joins cycle atoms c_i and c_(i+1 mod n).
//   - Cycle angle i is measured at c_(i+1) between c_i and c_(i+2).
//   - Pyridinic1 carries one extra bond target (index n) for the bond that
//     closes the five-membered ring across the vacancy.
//   - Lengths are in Angstrom, angles in degrees.

package species

import "fmt"

// Properties describes the structural footprint and target geometry of a species.
type Properties struct {
	// NitrogenAtoms is the number of carbons converted to nitrogen per motif.
	NitrogenAtoms int
	// RemovedAtoms is the number of carbons deleted per motif.
	RemovedAtoms int
	// CycleSize is the ring size of the motif; 0 for Graphitic.
	CycleSize int
	// BondLengths are the target cycle bond lengths in cycle order.
	BondLengths []float64
	// Angles are the target cycle angles in degrees, in cycle order.
	Angles []float64
}

// HasExtraBond reports whether the motif adds a bond across its vacancy.
func (p Properties) HasExtraBond() bool {
	return p.CycleSize > 0 && len(p.BondLengths) == p.CycleSize+1
}

// ExtraBondLength returns the target of the extra bond, or 0 if there is none.
func (p Properties) ExtraBondLength() float64 {
	if !p.HasExtraBond() {
		return 0
	}
	return p.BondLengths[p.CycleSize]
}

func repeat(pattern []float64, times int) []float64 {
	out := make([]float64, 0, len(pattern)*times)
	for i := 0; i < times; i++ {
		out = append(out, pattern...)
	}
	return out
}

var table = map[Species]Properties{
	Graphitic: {NitrogenAtoms: 1},
	Pyridinic1: {
		NitrogenAtoms: 1,
		RemovedAtoms:  1,
		CycleSize:     12,
		BondLengths:   []float64{1.31, 1.42, 1.45, 1.51, 1.42, 1.40, 1.40, 1.42, 1.51, 1.45, 1.42, 1.31, 1.70},
		Angles:        []float64{115.48, 118.24, 128.28, 109.52, 112.77, 110.35, 112.77, 109.52, 128.28, 118.24, 115.48, 120.92},
	},
	Pyridinic2: {
		NitrogenAtoms: 2,
		RemovedAtoms:  1,
		CycleSize:     12,
		BondLengths:   []float64{1.39, 1.42, 1.42, 1.33, 1.35, 1.44, 1.44, 1.35, 1.33, 1.42, 1.42, 1.39},
		Angles:        []float64{125.51, 118.04, 117.61, 120.59, 121.71, 122.14, 121.71, 120.59, 117.61, 118.04, 125.51, 125.04},
	},
	Pyridinic3: {
		NitrogenAtoms: 3,
		RemovedAtoms:  1,
		CycleSize:     12,
		BondLengths:   repeat([]float64{1.45, 1.33, 1.33, 1.45}, 3),
		Angles:        repeat([]float64{120.00, 122.17, 120.00, 122.21}, 3),
	},
	Pyridinic4: {
		NitrogenAtoms: 4,
		RemovedAtoms:  2,
		CycleSize:     14,
		BondLengths:   repeat([]float64{1.45, 1.34, 1.32, 1.47, 1.32, 1.34, 1.45}, 2),
		Angles:        repeat([]float64{120.26, 121.02, 119.3, 119.3, 121.02, 120.26, 122.91}, 2),
	},
}

// Lookup returns the properties of s. The returned slices are copies.
func Lookup(s Species) (Properties, error) {
	p, ok := table[s]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(s))
	}
	p.BondLengths = append([]float64(nil), p.BondLengths...)
	p.Angles = append([]float64(nil), p.Angles...)
	return p, nil
}

// MustLookup is Lookup for species known to be valid; it panics otherwise.
func MustLookup(s Species) Properties {
	p, err := Lookup(s)
	if err != nil {
		panic(err)
	}
	return p
}
