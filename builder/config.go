// SPDX-License-Identifier: MIT
// Package: graphene/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • bondDistance = DefaultBondDistance (1.42)
//   • rng          = nil (no randomness)
//   • jitter       = 0   (ideal positions)

package builder

import "math/rand"

// DefaultBondDistance is the carbon-carbon distance of pristine graphene in Angstrom.
const DefaultBondDistance = 1.42

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Baseline bond length b; sets both positions and cell pitch.
	bondDistance float64
	// RNG for position jitter; nil means "no randomness".
	rng *rand.Rand
	// Max absolute per-axis displacement added to every atom (needs rng).
	jitter float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		bondDistance: DefaultBondDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Jitter without a source would silently be ignored; seed it deterministically.
	if cfg.jitter > 0 && cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(0))
	}
	return cfg
}
