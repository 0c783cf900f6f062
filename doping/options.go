// File: options.go
// Role: Functional options for Doper.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Defaults are deterministic: seed 0, no-op logger, relaxation on,
//     Graphitic fill on.

package doping

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphene/relax"
)

// Option customizes a Doper.
type Option func(*dopingConfig)

// dopingConfig aggregates every knob of a Doper.
type dopingConfig struct {
	rng           *rand.Rand
	logger        *zap.Logger
	relaxer       *relax.Relaxer
	relax         bool
	graphiticFill bool
}

func newDopingConfig(opts ...Option) dopingConfig {
	cfg := dopingConfig{
		rng:           rand.New(rand.NewSource(0)),
		logger:        zap.NewNop(),
		relax:         true,
		graphiticFill: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.relaxer == nil {
		cfg.relaxer = relax.New(relax.WithLogger(cfg.logger))
	}
	return cfg
}

// WithRand sets the random source used for candidate draws and for choosing
// which neighbors become nitrogen. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("doping: WithRand(nil)")
	}
	return func(c *dopingConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *dopingConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("doping: WithLogger(nil)")
	}
	return func(c *dopingConfig) { c.logger = l }
}

// WithRelaxer replaces the default geometry relaxer. Panics on nil.
func WithRelaxer(r *relax.Relaxer) Option {
	if r == nil {
		panic("doping: WithRelaxer(nil)")
	}
	return func(c *dopingConfig) {
		c.relaxer = r
		c.relax = true
	}
}

// WithoutRelaxation leaves atom positions untouched after placement.
func WithoutRelaxation() Option {
	return func(c *dopingConfig) { c.relax = false }
}

// WithGraphiticFill toggles the final pass that places extra Graphitic-N
// while the total nitrogen count is below the requested total percentage.
// The pass only runs for requests without per-species percentages.
func WithGraphiticFill(on bool) Option {
	return func(c *dopingConfig) { c.graphiticFill = on }
}
