package doping

import (
	"errors"

	"github.com/katalvlaran/graphene/species"
)

// Sentinel errors for doping.
var (
	// ErrNilLattice is returned by New for a nil lattice.
	ErrNilLattice = errors.New("doping: lattice is nil")

	// ErrPercentagesExceedTotal is returned when explicit per-species
	// percentages add up to more than the requested total.
	ErrPercentagesExceedTotal = errors.New("doping: species percentages exceed total percentage")

	// ErrInvalidPercentage is returned for a negative, non-finite or
	// above-100 percentage.
	ErrInvalidPercentage = errors.New("doping: percentage out of range")

	// ErrNoEligibleAtoms is returned when doping is requested on a lattice
	// without a single eligible carbon atom.
	ErrNoEligibleAtoms = errors.New("doping: no eligible carbon atoms")

	// ErrUnknownSpecies is returned for a species outside the closed set.
	ErrUnknownSpecies = species.ErrUnknownSpecies

	// ErrInvariantViolation marks a defect: a state that validated input
	// can never produce. The concrete cause is wrapped alongside it.
	ErrInvariantViolation = errors.New("doping: invariant violation")

	// ErrNoStartNode is returned when no canonical start atom exists on a
	// motif cycle.
	ErrNoStartNode = errors.New("doping: no valid cycle start node")
)
