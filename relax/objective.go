// File: objective.go
// Role: Declarative energy over a flattened position vector.
//
// Layout: x[2s], x[2s+1] hold the position of the atom in slot s; slots
// follow ascending atom id.

package relax

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/species"
)

// Objective is the total bond + angle energy of a lattice geometry.
// Bonds and Angles are exported so the term list can be inspected and
// tested independently of the optimizer.
type Objective struct {
	Bonds  []BondTerm
	Angles []AngleTerm

	box   core.Box
	ids   []int
	index map[int]int
}

// NewObjective builds the term list for l and its motifs:
//   - motif cycle bonds (and the extra bond) with species targets and inner stiffness;
//   - consecutive cycle triplets with species angle targets and inner stiffness;
//   - every other lattice bond against l.BondDistance() with outer stiffness.
func NewObjective(l *core.Lattice, motifs []Motif, inner, outer float64) (*Objective, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	ids := l.AtomIDs()
	o := &Objective{box: l.Box(), ids: ids, index: make(map[int]int, len(ids))}
	for s, id := range ids {
		o.index[id] = s
	}

	inMotif := make(map[[2]int]bool)
	for mi, m := range motifs {
		props, err := species.Lookup(m.Species)
		if err != nil {
			return nil, fmt.Errorf("%w: motif %d: %v", ErrTargetMismatch, mi, err)
		}
		n := len(m.Cycle)
		if n != props.CycleSize || len(props.Angles) != n {
			return nil, fmt.Errorf("%w: motif %d (%s) has cycle length %d, want %d",
				ErrTargetMismatch, mi, m.Species, n, props.CycleSize)
		}
		for _, id := range m.Cycle {
			if _, ok := o.index[id]; !ok {
				return nil, fmt.Errorf("%w: motif %d references missing atom %d", ErrTargetMismatch, mi, id)
			}
		}
		for i := 0; i < n; i++ {
			a, b := m.Cycle[i], m.Cycle[(i+1)%n]
			o.Bonds = append(o.Bonds, BondTerm{I: a, J: b, Target: props.BondLengths[i], Stiffness: inner})
			inMotif[key(a, b)] = true
			o.Angles = append(o.Angles, AngleTerm{
				I: m.Cycle[i], J: m.Cycle[(i+1)%n], K: m.Cycle[(i+2)%n],
				Target:    props.Angles[i] * math.Pi / 180,
				Stiffness: inner,
			})
		}
		if m.ExtraBond != nil {
			if !props.HasExtraBond() {
				return nil, fmt.Errorf("%w: motif %d (%s) carries an unexpected extra bond", ErrTargetMismatch, mi, m.Species)
			}
			a, b := m.ExtraBond[0], m.ExtraBond[1]
			o.Bonds = append(o.Bonds, BondTerm{I: a, J: b, Target: props.ExtraBondLength(), Stiffness: inner})
			inMotif[key(a, b)] = true
		}
	}

	base := l.BondDistance()
	for _, b := range l.Bonds() {
		if !inMotif[key(b.A, b.B)] {
			o.Bonds = append(o.Bonds, BondTerm{I: b.A, J: b.B, Target: base, Stiffness: outer})
		}
	}
	return o, nil
}

func key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Dim returns the length of the flattened position vector.
func (o *Objective) Dim() int { return 2 * len(o.ids) }

// Pack flattens the current positions of l.
func (o *Objective) Pack(l *core.Lattice) []float64 {
	pos := l.Positions()
	x := make([]float64, o.Dim())
	for s, id := range o.ids {
		p := pos[id]
		x[2*s], x[2*s+1] = p.X, p.Y
	}
	return x
}

// Unpack writes x back onto the atoms of l.
func (o *Objective) Unpack(l *core.Lattice, x []float64) error {
	for s, id := range o.ids {
		if err := l.SetPosition(id, core.Vec2{X: x[2*s], Y: x[2*s+1]}); err != nil {
			return err
		}
	}
	return nil
}

func (o *Objective) at(x []float64, id int) core.Vec2 {
	s := o.index[id]
	return core.Vec2{X: x[2*s], Y: x[2*s+1]}
}

func (o *Objective) add(grad []float64, id int, g core.Vec2) {
	s := o.index[id]
	grad[2*s] += g.X
	grad[2*s+1] += g.Y
}

// Energy evaluates the objective at x.
func (o *Objective) Energy(x []float64) float64 {
	var e float64
	for _, t := range o.Bonds {
		r := o.box.Displacement(o.at(x, t.I), o.at(x, t.J)).Norm()
		d := r - t.Target
		e += 0.5 * t.Stiffness * d * d
	}
	for _, t := range o.Angles {
		theta, ok := o.angle(x, t)
		if !ok {
			continue
		}
		d := theta - t.Target
		e += 0.5 * t.Stiffness * d * d
	}
	return e
}

func (o *Objective) angle(x []float64, t AngleTerm) (float64, bool) {
	c := o.at(x, t.J)
	v1 := o.box.Displacement(c, o.at(x, t.I))
	v2 := o.box.Displacement(c, o.at(x, t.K))
	cross, dot := v1.Cross(v2), v1.Dot(v2)
	if cross == 0 && dot == 0 {
		return 0, false
	}
	return math.Atan2(math.Abs(cross), dot), true
}

// Gradient writes ∂E/∂x into grad, which must have length Dim().
func (o *Objective) Gradient(grad, x []float64) {
	for i := range grad {
		grad[i] = 0
	}
	for _, t := range o.Bonds {
		d := o.box.Displacement(o.at(x, t.I), o.at(x, t.J))
		r := d.Norm()
		if r == 0 {
			continue
		}
		g := d.Scale(t.Stiffness * (r - t.Target) / r)
		o.add(grad, t.J, g)
		o.add(grad, t.I, g.Scale(-1))
	}
	for _, t := range o.Angles {
		c := o.at(x, t.J)
		v1 := o.box.Displacement(c, o.at(x, t.I))
		v2 := o.box.Displacement(c, o.at(x, t.K))
		cross, dot := v1.Cross(v2), v1.Dot(v2)
		den := cross*cross + dot*dot
		if den == 0 {
			continue
		}
		absCross := math.Abs(cross)
		sign := 0.0
		switch {
		case cross > 0:
			sign = 1
		case cross < 0:
			sign = -1
		}
		theta := math.Atan2(absCross, dot)
		f := t.Stiffness * (theta - t.Target) / den

		// dθ/dv = (dot·∂|cross|/∂v − |cross|·∂dot/∂v) / den
		g1 := core.Vec2{X: dot*sign*v2.Y - absCross*v2.X, Y: -dot*sign*v2.X - absCross*v2.Y}.Scale(f)
		g2 := core.Vec2{X: -dot*sign*v1.Y - absCross*v1.X, Y: dot*sign*v1.X - absCross*v1.Y}.Scale(f)
		o.add(grad, t.I, g1)
		o.add(grad, t.K, g2)
		o.add(grad, t.J, g1.Add(g2).Scale(-1))
	}
}
