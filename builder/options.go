// SPDX-License-Identifier: MIT
// Package: graphene/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes lattice construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithBondDistance sets the baseline bond length b. Panics unless b is a
// positive finite number.
func WithBondDistance(b float64) BuilderOption {
	if !(b > 0) || math.IsInf(b, 1) {
		panic(fmt.Sprintf("builder: WithBondDistance(%v)", b))
	}
	return func(c *builderConfig) {
		c.bondDistance = b
	}
}

// WithRand provides an explicit RNG for stochastic knobs. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces every atom by a uniform random offset in
// [-amplitude, amplitude] per axis. Bond lengths reflect the displaced
// positions. Panics on negative amplitude.
func WithJitter(amplitude float64) BuilderOption {
	if amplitude < 0 || math.IsNaN(amplitude) {
		panic(fmt.Sprintf("builder: WithJitter(%v)", amplitude))
	}
	return func(c *builderConfig) {
		c.jitter = amplitude
	}
}
