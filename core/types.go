// Package core defines the Atom, Bond and Lattice types of a periodic
// two-dimensional sheet, and provides thread-safe primitives for building,
// mutating, querying and cloning it.
//
// All core APIs share a single sync.RWMutex, so a Lattice may be read from many
// goroutines while one goroutine mutates it.
//
// This file declares Element, Vec2, Atom, Bond, BondOption and the sentinel
// errors.
//
// Errors:
//
//	ErrAtomNotFound  - requested atom does not exist.
//	ErrBondNotFound  - requested bond does not exist.
//	ErrSelfBond      - a bond from an atom to itself was requested.
//	ErrDuplicateBond - the two atoms are already bonded.
//	ErrBadBox        - a periodic box with a non-positive side.
package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphene/species"
)

// Sentinel errors for core lattice operations.
var (
	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrSelfBond indicates a bond from an atom to itself.
	ErrSelfBond = errors.New("core: self bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same two atoms.
	ErrDuplicateBond = errors.New("core: duplicate bond")

	// ErrBadBox indicates a periodic box with a non-positive width or height.
	ErrBadBox = errors.New("core: box sides must be positive")
)

// Element is the chemical element of an atom.
type Element int

const (
	// Carbon is the default element of a freshly built sheet.
	Carbon Element = iota
	// Nitrogen marks a doped site.
	Nitrogen
)

// String returns the element symbol.
func (e Element) String() string {
	switch e {
	case Carbon:
		return "C"
	case Nitrogen:
		return "N"
	default:
		return "?"
	}
}

// Vec2 is a point or displacement in the sheet plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns s*v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }

// Dot returns the scalar product.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of the cross product v×w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Norm returns the Euclidean length.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Atom is a lattice site.
//
// Species is meaningful only when Element == Nitrogen.
// Eligible reports whether the atom may still be chosen as a doping site.
type Atom struct {
	ID       int
	Element  Element
	Position Vec2
	Species  species.Species
	Eligible bool
}

// IsNitrogen reports whether the atom is a nitrogen site.
func (a Atom) IsNitrogen() bool { return a.Element == Nitrogen }

// Bond is an undirected connection between two atoms, stored with A < B.
//
// Length is the minimum-image distance at the time it was last computed.
// Periodic marks bonds that cross the wrap boundary of the sheet.
type Bond struct {
	A, B     int
	Length   float64
	Periodic bool
}

// Other returns the endpoint of b that is not id.
func (b Bond) Other(id int) int {
	if b.A == id {
		return b.B
	}
	return b.A
}

// BondOption configures properties of individual bonds when added.
type BondOption func(*Bond)

// WithPeriodic flags the bond as crossing the periodic boundary.
func WithPeriodic() BondOption {
	return func(b *Bond) { b.Periodic = true }
}

// WithLength overrides the computed minimum-image length.
func WithLength(length float64) BondOption {
	return func(b *Bond) { b.Length = length }
}

// Adjacency is the read-only topology surface shared by Lattice and View.
// Graph algorithms accept it so they run on whole sheets and on subgraphs alike.
type Adjacency interface {
	// HasAtom reports whether id is present.
	HasAtom(id int) bool
	// AtomIDs returns all atom ids sorted ascending.
	AtomIDs() []int
	// NeighborIDs returns the ids bonded to id, sorted ascending.
	NeighborIDs(id int) ([]int, error)
}

func orderedPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
