// File: relax.go
// Role: L-BFGS minimization of the Objective and write-back onto the lattice.

package relax

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/graphene/core"
)

// Result summarizes one relaxation run.
type Result struct {
	Skipped         bool
	Iterations      int
	FuncEvaluations int
	InitialEnergy   float64
	FinalEnergy     float64
	MaxGradient     float64
	Status          string
	// Converged is false when the run stopped on the iteration cap or an
	// optimizer error instead of meeting a convergence criterion.
	Converged bool
}

// Relaxer minimizes the bond + angle energy of a doped sheet.
type Relaxer struct {
	opts Options
}

// New returns a Relaxer configured by opts.
func New(opts ...Option) *Relaxer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Relaxer{opts: o}
}

// Options returns the effective configuration.
func (r *Relaxer) Options() Options { return r.opts }

// Relax moves every atom of l to minimize the objective built from motifs,
// then refreshes stored bond lengths. With no motifs the lattice is left
// untouched and Result.Skipped is set.
//
// Positions are written back unwrapped; every geometric query goes through
// the minimum image, so atoms that drift past the box edge stay consistent.
func (r *Relaxer) Relax(l *core.Lattice, motifs []Motif) (Result, error) {
	if l == nil {
		return Result{}, ErrNilLattice
	}
	log := r.opts.Logger
	if len(motifs) == 0 {
		log.Debug("relaxation skipped: no motifs")
		return Result{Skipped: true}, nil
	}

	obj, err := NewObjective(l, motifs, r.opts.InnerStiffness, r.opts.OuterStiffness)
	if err != nil {
		return Result{}, err
	}
	x0 := obj.Pack(l)
	e0 := obj.Energy(x0)

	problem := optimize.Problem{
		Func: obj.Energy,
		Grad: obj.Gradient,
	}
	settings := &optimize.Settings{
		GradientThreshold: r.opts.GradientThreshold,
		MajorIterations:   r.opts.MaxIterations,
	}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if res == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMinimize, err)
	}
	if err != nil {
		if !(res.F <= e0) {
			return Result{}, fmt.Errorf("%w: %v", ErrMinimize, err)
		}
		log.Warn("relaxation stopped early, keeping improved geometry",
			zap.Error(err),
			zap.Float64("initial_energy", e0),
			zap.Float64("final_energy", res.F),
		)
	}

	if err := obj.Unpack(l, res.X); err != nil {
		return Result{}, err
	}
	l.UpdateBondLengths()

	out := Result{
		Iterations:      res.Stats.MajorIterations,
		FuncEvaluations: res.Stats.FuncEvaluations,
		InitialEnergy:   e0,
		FinalEnergy:     res.F,
		Status:          res.Status.String(),
		Converged:       err == nil && res.Status != optimize.IterationLimit,
	}
	if len(res.Gradient) > 0 {
		out.MaxGradient = floats.Norm(res.Gradient, math.Inf(1))
	}
	if res.Status == optimize.IterationLimit {
		log.Warn("relaxation hit the iteration limit",
			zap.Int("max_iterations", r.opts.MaxIterations),
			zap.Float64("max_gradient", out.MaxGradient),
			zap.Float64("gradient_threshold", r.opts.GradientThreshold),
		)
	}
	log.Info("relaxation finished",
		zap.Int("motifs", len(motifs)),
		zap.Int("iterations", out.Iterations),
		zap.Float64("initial_energy", out.InitialEnergy),
		zap.Float64("final_energy", out.FinalEnergy),
		zap.Float64("max_gradient", out.MaxGradient),
		zap.String("status", out.Status),
	)
	return out, nil
}
