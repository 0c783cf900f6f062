// SPDX-License-Identifier: MIT
// Package: graphene/species
//
// species.go - nitrogen doping species and their structural properties.
//
// Design:
//   - Species is a closed enum; the zero value is Graphitic.
//   - Properties are static, read-only data; Lookup returns a copy so callers
//     cannot corrupt the table.
//   - InsertionOrder fixes the order in which species are placed on a sheet
//     (largest footprint first).

package species

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSpecies indicates a species value or name outside the known set.
var ErrUnknownSpecies = errors.New("species: unknown species")

// Species identifies one nitrogen doping motif.
type Species int

const (
	// Graphitic replaces a single carbon with nitrogen; no atoms are removed.
	Graphitic Species = iota
	// Pyridinic1 removes one carbon and converts one of its neighbors.
	Pyridinic1
	// Pyridinic2 removes one carbon and converts two of its neighbors.
	Pyridinic2
	// Pyridinic3 removes one carbon and converts all three neighbors.
	Pyridinic3
	// Pyridinic4 removes two bonded carbons and converts their four outer neighbors.
	Pyridinic4
)

// All lists every species in declaration order.
var All = []Species{Graphitic, Pyridinic1, Pyridinic2, Pyridinic3, Pyridinic4}

// InsertionOrder lists the order in which species are placed.
var InsertionOrder = []Species{Pyridinic4, Pyridinic3, Pyridinic2, Pyridinic1, Graphitic}

var names = map[Species]string{
	Graphitic:  "Graphitic-N",
	Pyridinic1: "Pyridinic-N 1",
	Pyridinic2: "Pyridinic-N 2",
	Pyridinic3: "Pyridinic-N 3",
	Pyridinic4: "Pyridinic-N 4",
}

// String returns the display name, e.g. "Pyridinic-N 3".
func (s Species) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

// Valid reports whether s is one of the declared species.
func (s Species) Valid() bool {
	_, ok := names[s]
	return ok
}

// IsPyridinic reports whether s removes carbon atoms and forms a ring motif.
func (s Species) IsPyridinic() bool {
	return s.Valid() && s != Graphitic
}

// Parse resolves a species from its display name or a short alias.
// Matching ignores case, spaces, dashes and underscores, so "Pyridinic-N 4",
// "pyridinic_4" and "p4" all resolve to Pyridinic4.
func Parse(name string) (Species, error) {
	key := normalize(name)
	for _, s := range All {
		if normalize(s.String()) == key {
			return s, nil
		}
	}
	switch key {
	case "graphitic", "g":
		return Graphitic, nil
	case "pyridinic1", "p1":
		return Pyridinic1, nil
	case "pyridinic2", "p2":
		return Pyridinic2, nil
	case "pyridinic3", "p3":
		return Pyridinic3, nil
	case "pyridinic4", "p4":
		return Pyridinic4, nil
	}
	return Graphitic, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
