// File: box.go
// Role: Periodic simulation box and minimum-image geometry.

package core

import (
	"fmt"
	"math"
)

// Box is the rectangular periodic cell [0,Width)×[0,Height) of a sheet.
type Box struct {
	Width, Height float64
}

// NewBox validates and returns a Box.
func NewBox(width, height float64) (Box, error) {
	if !(width > 0) || !(height > 0) {
		return Box{}, fmt.Errorf("%w: %gx%g", ErrBadBox, width, height)
	}
	return Box{Width: width, Height: height}, nil
}

// MinimumImage folds a displacement into its shortest periodic image.
// A zero side disables wrapping along that axis.
func (b Box) MinimumImage(d Vec2) Vec2 {
	if b.Width > 0 {
		d.X -= b.Width * math.Round(d.X/b.Width)
	}
	if b.Height > 0 {
		d.Y -= b.Height * math.Round(d.Y/b.Height)
	}
	return d
}

// Displacement returns the minimum-image vector pointing from p to q.
func (b Box) Displacement(p, q Vec2) Vec2 {
	return b.MinimumImage(q.Sub(p))
}

// Distance returns the minimum-image distance between p and q.
func (b Box) Distance(p, q Vec2) float64 {
	return b.Displacement(p, q).Norm()
}

// Wraps reports whether the straight segment p→q is longer than its
// minimum image, i.e. whether a bond between them crosses the boundary.
func (b Box) Wraps(p, q Vec2) bool {
	const eps = 1e-9
	return q.Sub(p).Norm()-b.Distance(p, q) > eps
}
