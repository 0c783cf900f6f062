package core_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/species"
)

const eps = 1e-9

// triangle builds three atoms in a 10x10 box bonded into a cycle.
func triangle(t *testing.T) *core.Lattice {
	t.Helper()
	l := core.NewLattice(core.Box{Width: 10, Height: 10}, 1)
	a := l.AddAtom(core.Carbon, core.Vec2{X: 1, Y: 1})
	b := l.AddAtom(core.Carbon, core.Vec2{X: 2, Y: 1})
	c := l.AddAtom(core.Carbon, core.Vec2{X: 1, Y: 2})
	for _, p := range [][2]int{{a, b}, {b, c}, {c, a}} {
		if _, err := l.AddBond(p[0], p[1]); err != nil {
			t.Fatalf("AddBond%v: %v", p, err)
		}
	}
	return l
}

func TestAddAtom_SequentialIDs(t *testing.T) {
	l := triangle(t)
	if got, want := l.AtomIDs(), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("AtomIDs = %v; want %v", got, want)
	}
	if err := l.RemoveAtom(1); err != nil {
		t.Fatal(err)
	}
	if id := l.AddAtom(core.Carbon, core.Vec2{}); id != 3 {
		t.Errorf("id after removal = %d; want 3 (ids are never reused)", id)
	}
}

func TestRemoveAtom_DropsIncidentBonds(t *testing.T) {
	l := triangle(t)
	if err := l.RemoveAtom(0); err != nil {
		t.Fatal(err)
	}
	if l.HasBond(0, 1) || l.HasBond(2, 0) {
		t.Error("bonds of removed atom survived")
	}
	if got := l.BondCount(); got != 1 {
		t.Errorf("BondCount = %d; want 1", got)
	}
	if err := l.RemoveAtom(0); !errors.Is(err, core.ErrAtomNotFound) {
		t.Errorf("second RemoveAtom: want ErrAtomNotFound, got %v", err)
	}
}

func TestAddBond_Errors(t *testing.T) {
	l := triangle(t)
	if _, err := l.AddBond(0, 0); !errors.Is(err, core.ErrSelfBond) {
		t.Errorf("self bond: got %v", err)
	}
	if _, err := l.AddBond(1, 0); !errors.Is(err, core.ErrDuplicateBond) {
		t.Errorf("duplicate bond: got %v", err)
	}
	if _, err := l.AddBond(0, 99); !errors.Is(err, core.ErrAtomNotFound) {
		t.Errorf("missing atom: got %v", err)
	}
	if err := l.RemoveBond(0, 99); !errors.Is(err, core.ErrBondNotFound) {
		t.Errorf("RemoveBond missing: got %v", err)
	}
}

func TestBond_OrderedAndMeasured(t *testing.T) {
	l := triangle(t)
	b, err := l.Bond(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b.A != 1 || b.B != 2 {
		t.Errorf("bond endpoints = (%d,%d); want (1,2)", b.A, b.B)
	}
	if math.Abs(b.Length-math.Sqrt2) > eps {
		t.Errorf("length = %v; want sqrt(2)", b.Length)
	}
	if b.Other(1) != 2 || b.Other(2) != 1 {
		t.Error("Other returned wrong endpoint")
	}
}

func TestMinimumImage(t *testing.T) {
	box := core.Box{Width: 10, Height: 4}
	p := core.Vec2{X: 0.5, Y: 0.5}
	q := core.Vec2{X: 9.5, Y: 3.5}
	d := box.Displacement(p, q)
	if math.Abs(d.X+1) > eps || math.Abs(d.Y+1) > eps {
		t.Errorf("Displacement = %+v; want (-1,-1)", d)
	}
	if !box.Wraps(p, q) {
		t.Error("Wraps = false; want true")
	}
	if box.Wraps(p, core.Vec2{X: 1.5, Y: 0.5}) {
		t.Error("Wraps = true for an interior pair")
	}
	if _, err := core.NewBox(0, 1); !errors.Is(err, core.ErrBadBox) {
		t.Errorf("NewBox(0,1): got %v", err)
	}
}

func TestPeriodicBondLength(t *testing.T) {
	l := core.NewLattice(core.Box{Width: 10, Height: 10}, 1)
	a := l.AddAtom(core.Carbon, core.Vec2{X: 0.2, Y: 5})
	b := l.AddAtom(core.Carbon, core.Vec2{X: 9.8, Y: 5})
	bond, err := l.AddBond(a, b, core.WithPeriodic())
	if err != nil {
		t.Fatal(err)
	}
	if !bond.Periodic || math.Abs(bond.Length-0.4) > eps {
		t.Errorf("bond = %+v; want periodic length 0.4", bond)
	}
}

func TestUpdateBondLengths(t *testing.T) {
	l := triangle(t)
	if err := l.SetPosition(1, core.Vec2{X: 4, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if got, _ := l.BondLength(0, 1); math.Abs(got-1) > eps {
		t.Fatalf("length before update = %v; want stale 1", got)
	}
	l.UpdateBondLengths()
	if got, _ := l.BondLength(0, 1); math.Abs(got-3) > eps {
		t.Errorf("length after update = %v; want 3", got)
	}
}

func TestAttributesAndQueries(t *testing.T) {
	l := triangle(t)
	if err := l.SetNitrogen(1, species.Pyridinic2); err != nil {
		t.Fatal(err)
	}
	if err := l.SetEligible(2, false); err != nil {
		t.Fatal(err)
	}
	if got := l.EligibleCarbonIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("EligibleCarbonIDs = %v; want [0]", got)
	}
	if got := l.NitrogenIDs(species.Pyridinic2); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("NitrogenIDs = %v; want [1]", got)
	}
	st := l.Stats()
	if st.Atoms != 3 || st.Bonds != 3 || st.Carbon != 2 || st.TotalNitrogen() != 1 {
		t.Errorf("Stats = %+v", st)
	}
	if err := l.SetEligible(42, true); !errors.Is(err, core.ErrAtomNotFound) {
		t.Errorf("SetEligible missing: got %v", err)
	}
	a, _ := l.Atom(1)
	if !a.IsNitrogen() || a.Element.String() != "N" {
		t.Errorf("atom 1 = %+v; want nitrogen", a)
	}
}

func TestAtomsWithin(t *testing.T) {
	l := core.NewLattice(core.Box{Width: 10, Height: 10}, 1)
	l.AddAtom(core.Carbon, core.Vec2{X: 0.5, Y: 0.5})
	l.AddAtom(core.Carbon, core.Vec2{X: 9.5, Y: 0.5}) // 1.0 across the boundary
	l.AddAtom(core.Carbon, core.Vec2{X: 5, Y: 5})
	got, err := l.AtomsWithin(0, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("AtomsWithin = %v; want [1]", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := triangle(t)
	c := l.Clone()
	if err := c.RemoveAtom(0); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPosition(1, core.Vec2{X: 7, Y: 7}); err != nil {
		t.Fatal(err)
	}
	c.UpdateBondLengths()
	if l.AtomCount() != 3 || !l.HasBond(0, 1) {
		t.Error("mutating the clone changed the source")
	}
	if got, _ := l.BondLength(1, 2); math.Abs(got-math.Sqrt2) > eps {
		t.Errorf("source bond length changed to %v", got)
	}
	if id := c.AddAtom(core.Carbon, core.Vec2{}); id != 3 {
		t.Errorf("clone allocated id %d; want 3", id)
	}
}

func TestConnected(t *testing.T) {
	l := triangle(t)
	if !l.Connected() {
		t.Fatal("triangle should be connected")
	}
	l.AddAtom(core.Carbon, core.Vec2{X: 5, Y: 5})
	if l.Connected() {
		t.Error("isolated atom should disconnect the lattice")
	}
}

func TestInducedView(t *testing.T) {
	l := triangle(t)
	v := l.Induced([]int{0, 1, 77})
	if got := v.AtomIDs(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("view atoms = %v", got)
	}
	nb, err := v.NeighborIDs(0)
	if err != nil || !reflect.DeepEqual(nb, []int{1}) {
		t.Errorf("view neighbors of 0 = %v, %v; want [1]", nb, err)
	}
	if bs := v.Bonds(); len(bs) != 1 || bs[0].A != 0 || bs[0].B != 1 {
		t.Errorf("view bonds = %+v", bs)
	}
	if _, err := v.NeighborIDs(2); !errors.Is(err, core.ErrAtomNotFound) {
		t.Errorf("out-of-view neighbor query: got %v", err)
	}
	// the view is a snapshot
	_ = l.RemoveAtom(1)
	if !v.HasAtom(1) {
		t.Error("view changed after lattice mutation")
	}
}

var (
	_ core.Adjacency = (*core.Lattice)(nil)
	_ core.Adjacency = (*core.View)(nil)
)
