// Package relax optimizes the geometry of a doped graphene sheet.
//
// The energy is a sum of harmonic terms over a flattened position vector:
//
//	E = Σ ½·k_b·(d − L)² + Σ ½·k_a·(θ − θ₀)²
//
// Motif cycle bonds, the Pyridinic-N 1 extra bond and motif angles use the
// species targets with the inner stiffness; every other bond is pulled
// toward the pristine bond distance with the outer stiffness. Distances and
// angles use the minimum-image convention of the lattice box. The analytic
// gradient is supplied to gonum's L-BFGS.
//
//	r := relax.New(relax.WithLogger(logger))
//	res, err := r.Relax(lattice, motifs)
package relax
