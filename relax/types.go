package relax

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphene/species"
)

// Sentinel errors for relaxation.
var (
	// ErrNilLattice is returned when Relax receives a nil lattice.
	ErrNilLattice = errors.New("relax: lattice is nil")

	// ErrTargetMismatch is returned when a motif's cycle does not match the
	// target tables of its species, or references a missing atom.
	ErrTargetMismatch = errors.New("relax: motif does not match species targets")

	// ErrMinimize is returned when the optimizer fails without producing an
	// improved geometry.
	ErrMinimize = errors.New("relax: minimization failed")
)

// Default stiffness constants and solver limits.
const (
	DefaultInnerStiffness    = 10.0
	DefaultOuterStiffness    = 0.1
	DefaultMaxIterations     = 10000
	DefaultGradientThreshold = 1e-6
)

// Motif is the relaxation view of one placed doping structure.
//
// Cycle is ordered from the canonical start atom; bond i joins Cycle[i] and
// Cycle[i+1 mod n]; angle i is centered at Cycle[i+1]. ExtraBond, when set,
// receives the species' extra bond target.
type Motif struct {
	Species   species.Species
	Cycle     []int
	ExtraBond *[2]int
}

// BondTerm penalizes ½·K·(|x_J − x_I| − Target)² under minimum image.
type BondTerm struct {
	I, J      int
	Target    float64
	Stiffness float64
}

// AngleTerm penalizes ½·K·(θ − Target)², θ being the unsigned angle at J
// between the bonds J→I and J→K, in radians.
type AngleTerm struct {
	I, J, K   int
	Target    float64
	Stiffness float64
}

// Options configures a Relaxer.
type Options struct {
	InnerStiffness    float64
	OuterStiffness    float64
	MaxIterations     int
	GradientThreshold float64
	Logger            *zap.Logger
}

// Option represents a functional option for configuring a Relaxer.
type Option func(*Options)

// DefaultOptions returns the default stiffness constants and solver limits
// with a no-op logger.
func DefaultOptions() Options {
	return Options{
		InnerStiffness:    DefaultInnerStiffness,
		OuterStiffness:    DefaultOuterStiffness,
		MaxIterations:     DefaultMaxIterations,
		GradientThreshold: DefaultGradientThreshold,
		Logger:            zap.NewNop(),
	}
}

// WithStiffness sets the inner (motif) and outer (rest of the sheet)
// stiffness constants. Panics unless both are positive.
func WithStiffness(inner, outer float64) Option {
	if !(inner > 0) || !(outer > 0) {
		panic(fmt.Sprintf("relax: WithStiffness(%v, %v)", inner, outer))
	}
	return func(o *Options) {
		o.InnerStiffness = inner
		o.OuterStiffness = outer
	}
}

// WithMaxIterations caps the optimizer's major iterations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("relax: WithMaxIterations(%d)", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithGradientThreshold sets the infinity-norm gradient convergence
// threshold. Panics unless positive.
func WithGradientThreshold(g float64) Option {
	if !(g > 0) {
		panic(fmt.Sprintf("relax: WithGradientThreshold(%v)", g))
	}
	return func(o *Options) { o.GradientThreshold = g }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("relax: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
