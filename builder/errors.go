// SPDX-License-Identifier: MIT
// Package: graphene/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidDimension indicates a sheet width or height that is not a
// positive finite number.
var ErrInvalidDimension = errors.New("builder: invalid sheet dimension")

// ErrEmptyLattice indicates that the requested area is too small to hold the
// minimum number of unit cells along one axis.
var ErrEmptyLattice = errors.New("builder: sheet too small for a unit cell")

// ErrConstructFailed indicates a core mutation failed while emitting the
// lattice; it wraps the underlying core error.
var ErrConstructFailed = errors.New("builder: construction failed")
