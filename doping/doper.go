// File: doper.go
// Role: Placement Controller and the Apply orchestration.
//
// Flow:
//   NewPlan → for each species in Plan.Order: place → Graphitic fill
//   → relax (once) → Report.
//
// Concurrency:
//   - A Doper owns its lattice for the duration of Apply; it is not safe for
//     concurrent use.

package doping

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/relax"
	"github.com/katalvlaran/graphene/species"
)

// Doper embeds nitrogen motifs into a lattice.
type Doper struct {
	lat        *core.Lattice
	cfg        dopingConfig
	validator  *validator
	builder    *motifBuilder
	collection *Collection
}

// New returns a Doper working on lat.
func New(lat *core.Lattice, opts ...Option) (*Doper, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	cfg := newDopingConfig(opts...)
	d := &Doper{lat: lat, cfg: cfg, collection: NewCollection()}
	d.validator = &validator{lat: lat, rng: cfg.rng, onCycle: d.onCycle}
	d.builder = &motifBuilder{lat: lat, rng: cfg.rng, onCycle: d.onCycle}
	return d, nil
}

// onCycle reads the current collection, which Apply replaces on every call.
func (d *Doper) onCycle(id int) bool { return d.collection.OnCycle(id) }

// Lattice returns the lattice being doped.
func (d *Doper) Lattice() *core.Lattice { return d.lat }

// Collection returns the structures placed by the most recent Apply.
func (d *Doper) Collection() *Collection { return d.collection }

// Apply plans req against the current atom count, places every species in
// order of decreasing disruption, relaxes the geometry once and reports the
// outcome. A request with a total only is topped up with Graphitic-N when
// the fill is enabled; explicit per-species maps are never topped up.
//
// Usage errors (ErrInvalidPercentage, ErrUnknownSpecies,
// ErrPercentagesExceedTotal, ErrNoEligibleAtoms) are returned before the
// lattice is touched. Quota shortfalls are not errors; they are logged and
// listed in Report.Shortfalls. An ErrInvariantViolation aborts the call and
// leaves the lattice as mutated so far.
func (d *Doper) Apply(req Request) (Report, error) {
	initial := d.lat.AtomCount()
	plan, err := NewPlan(req, initial)
	if err != nil {
		return Report{}, err
	}
	if len(d.lat.EligibleCarbonIDs()) == 0 {
		return Report{}, ErrNoEligibleAtoms
	}

	d.collection = NewCollection()
	log := d.cfg.logger
	log.Info("doping plan",
		zap.Float64("total_percentage", plan.Total),
		zap.Int("atoms", initial),
		zap.Int("nitrogen_target", plan.TotalTarget()),
	)

	rep := newReport(plan, initial)
	for _, sp := range plan.Order {
		quota := plan.Targets[sp]
		if quota == 0 {
			continue
		}
		placed, err := d.place(sp, quota)
		if err != nil {
			return Report{}, err
		}
		rep.Placed[sp] += placed
		if placed < quota {
			rep.Shortfalls = append(rep.Shortfalls, Shortfall{Species: sp, Requested: quota, Placed: placed})
			log.Warn("nitrogen quota not met",
				zap.Stringer("species", sp),
				zap.Int("requested", quota),
				zap.Int("placed", placed),
			)
		}
	}

	if d.cfg.graphiticFill && len(req.Percentages) == 0 {
		want := int(math.Round(plan.Total * float64(d.lat.AtomCount()) / 100))
		if gap := want - d.collection.NitrogenCount(); gap > 0 {
			placed, err := d.place(species.Graphitic, gap)
			if err != nil {
				return Report{}, err
			}
			rep.Placed[species.Graphitic] += placed
			rep.FillPlaced = placed
			log.Debug("graphitic fill", zap.Int("gap", gap), zap.Int("placed", placed))
			if placed < gap {
				rep.Shortfalls = append(rep.Shortfalls, Shortfall{
					Species: species.Graphitic, Requested: gap, Placed: placed, Fill: true,
				})
				log.Warn("graphitic fill incomplete",
					zap.Int("requested", gap),
					zap.Int("placed", placed),
					zap.Float64("total_percentage", plan.Total),
				)
			}
		}
	}

	if d.cfg.relax {
		res, err := d.cfg.relaxer.Relax(d.lat, d.collection.Motifs())
		if errors.Is(err, relax.ErrTargetMismatch) {
			return Report{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		if err != nil {
			return Report{}, err
		}
		rep.Relaxation = res
	} else {
		rep.Relaxation = relax.Result{Skipped: true}
	}

	if err := rep.finish(d.lat, d.collection); err != nil {
		return Report{}, err
	}
	log.Info("doping finished",
		zap.Float64("total_percentage", rep.TotalPercentage),
		zap.Int("structures", d.collection.Len()),
		zap.Int("atoms_removed", rep.AtomsRemoved),
		zap.Int("shortfalls", len(rep.Shortfalls)),
	)
	return rep, nil
}

// place draws candidates for sp from a fresh pool of eligible carbons until
// quota nitrogen atoms are placed or the pool runs dry. Motifs are atomic,
// so the last one may overshoot quota.
func (d *Doper) place(sp species.Species, quota int) (int, error) {
	p := newPool(d.lat.EligibleCarbonIDs(), d.cfg.rng)
	placed := 0
	for placed < quota && p.Len() > 0 {
		c, ok, err := d.validator.validate(sp, p)
		if err != nil {
			return placed, err
		}
		if !ok {
			continue
		}
		s, err := d.builder.build(c)
		if err != nil {
			return placed, err
		}
		d.collection.Add(s)
		p.discard(s.ClaimedAtoms()...)
		placed += len(s.NitrogenAtoms)
		d.cfg.logger.Debug("motif placed",
			zap.Stringer("species", sp),
			zap.Ints("building_atoms", s.BuildingAtoms),
			zap.Ints("nitrogen_atoms", s.NitrogenAtoms),
		)
	}
	return placed, nil
}
