// SPDX-License-Identifier: MIT
// Package: graphene/builder
//
// impl_honeycomb.go - periodic honeycomb constructor.
//
// Canonical model:
//   • Rectangular unit cell of 4 atoms at
//       0:(0,0)  1:(cx,cy)  2:(cx+b,cy)  3:(2cx+b,0)
//     with cx = b·sin30°, cy = b·cos30°, pitch (3b, 2cy).
//   • Cell (x,y) owns atom ids 4(y·nx+x) .. 4(y·nx+x)+3 (row-major).
//   • Bonds per cell, in emission order:
//       internal 0–1, 1–2, 2–3;
//       horizontal: atom 3 of cell (x-1,y) – atom 0 of (x,y);
//       vertical:   atom 1 of (x,y-1) – atom 0 of (x,y), atom 2 of (x,y-1) – atom 3 of (x,y);
//       periodic:   last cell of a row: its atom 3 – atom 0 of the row's first cell;
//                   top row: atom 1 – atom 0 and atom 2 – atom 3 of the bottom cell in that column.
//   • Every atom ends with exactly three bonds.
//
// Determinism:
//   • Stable id assignment and bond emission order; jitter only when rng is set.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphene/core"
)

const (
	atomsPerCell = 4
	minCellsX    = 1
	minCellsY    = 2
)

func cellOffsets(b float64) (cx, cy float64) {
	return b * math.Sin(math.Pi/6), b * math.Cos(math.Pi/6)
}

func cellPitch(b float64) (px, py float64) {
	cx, cy := cellOffsets(b)
	return 2*b + 2*cx, 2 * cy
}

func honeycomb(nx, ny int, cfg builderConfig) (*core.Lattice, error) {
	if nx < minCellsX || ny < minCellsY {
		return nil, fmt.Errorf("cells=%dx%d (need ≥ %dx%d): %w", nx, ny, minCellsX, minCellsY, ErrEmptyLattice)
	}

	b := cfg.bondDistance
	cx, cy := cellOffsets(b)
	px, py := cellPitch(b)
	box, err := core.NewBox(float64(nx)*px, float64(ny)*py)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrConstructFailed)
	}
	l := core.NewLattice(box, b)

	// 1) Atoms, row-major, 4 per cell.
	local := [atomsPerCell]core.Vec2{{X: 0, Y: 0}, {X: cx, Y: cy}, {X: cx + b, Y: cy}, {X: 2*cx + b, Y: 0}}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			origin := core.Vec2{X: float64(x) * px, Y: float64(y) * py}
			for _, off := range local {
				l.AddAtom(core.Carbon, origin.Add(off).Add(cfg.noise()))
			}
		}
	}

	// 2) Bonds.
	bond := func(a, c int, opts ...core.BondOption) error {
		if _, err := l.AddBond(a, c, opts...); err != nil {
			return fmt.Errorf("AddBond(%d,%d): %v: %w", a, c, err, ErrConstructFailed)
		}
		return nil
	}
	rowStride := atomsPerCell * nx
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			idx := atomsPerCell * (y*nx + x)

			for i := 0; i < atomsPerCell-1; i++ {
				if err := bond(idx+i, idx+i+1); err != nil {
					return nil, err
				}
			}
			if x > 0 {
				if err := bond(idx-1, idx); err != nil {
					return nil, err
				}
			}
			if y > 0 {
				if err := bond(idx-rowStride+1, idx); err != nil {
					return nil, err
				}
				if err := bond(idx-rowStride+2, idx+3); err != nil {
					return nil, err
				}
			}

			if x == nx-1 {
				rowStart := atomsPerCell * (y * nx)
				if err := bond(idx+3, rowStart, core.WithPeriodic()); err != nil {
					return nil, err
				}
			}
			if y == ny-1 {
				bottom := atomsPerCell * x
				if err := bond(idx+1, bottom, core.WithPeriodic()); err != nil {
					return nil, err
				}
				if err := bond(idx+2, bottom+3, core.WithPeriodic()); err != nil {
					return nil, err
				}
			}
		}
	}
	return l, nil
}

// noise returns a jitter offset, or the zero vector when jitter is off.
func (c builderConfig) noise() core.Vec2 {
	if c.jitter == 0 || c.rng == nil {
		return core.Vec2{}
	}
	return core.Vec2{
		X: (2*c.rng.Float64() - 1) * c.jitter,
		Y: (2*c.rng.Float64() - 1) * c.jitter,
	}
}
