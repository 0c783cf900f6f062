// SPDX-License-Identifier: MIT
// Package: graphene/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Two orchestrators: Honeycomb(width, height, opts...) sizes the sheet from
//     an area; HoneycombCells(nx, ny, opts...) takes the cell counts directly.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical lattices (ids, positions, bonds).
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphene/core"
)

// Honeycomb builds a periodic graphene sheet filling a width×height area.
// The number of unit cells per axis is floor(size / pitch), where the pitch is
// 3b horizontally and 2b·cos(30°) vertically.
//
// Errors:
//   - ErrInvalidDimension if width or height is not a positive finite number.
//   - ErrEmptyLattice if the area holds fewer than the minimum cells per axis.
//
// Complexity: O(nx·ny) time and space.
func Honeycomb(width, height float64, opts ...BuilderOption) (*core.Lattice, error) {
	if !validDimension(width) || !validDimension(height) {
		return nil, fmt.Errorf("Honeycomb: width=%v, height=%v: %w", width, height, ErrInvalidDimension)
	}
	cfg := newBuilderConfig(opts...)
	px, py := cellPitch(cfg.bondDistance)
	nx := int(math.Floor(width / px))
	ny := int(math.Floor(height / py))
	l, err := honeycomb(nx, ny, cfg)
	if err != nil {
		return nil, fmt.Errorf("Honeycomb: %w", err)
	}
	return l, nil
}

// HoneycombCells builds a periodic sheet of nx×ny unit cells (4 atoms each).
// Requires nx ≥ 1 and ny ≥ 2, else ErrEmptyLattice.
// Complexity: O(nx·ny).
func HoneycombCells(nx, ny int, opts ...BuilderOption) (*core.Lattice, error) {
	l, err := honeycomb(nx, ny, newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("HoneycombCells: %w", err)
	}
	return l, nil
}

// CellPitch returns the horizontal and vertical unit-cell pitch for bond length b.
func CellPitch(b float64) (px, py float64) {
	return cellPitch(b)
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
