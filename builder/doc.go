// Package builder constructs periodic graphene sheets on core.Lattice.
//
// Honeycomb tiles a rectangular unit cell of four carbon atoms over the
// requested area and closes the sheet into a torus with periodic bonds, so
// every atom has exactly three neighbors and the lattice behaves like an
// infinite sheet under minimum-image geometry.
//
// Options:
//
//   - WithBondDistance(b): carbon-carbon distance (default 1.42).
//   - WithSeed / WithRand: randomness source for stochastic knobs.
//   - WithJitter(a): displace atoms uniformly by up to a per axis.
//
// Errors: ErrInvalidDimension, ErrEmptyLattice, ErrConstructFailed.
package builder
