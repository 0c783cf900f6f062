// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on bond-length weighted lattices.
//
// Options:
//
//	– Source/Sources: starting atom id(s); at least one is required.
//	– ReturnPath:     if true, return the predecessor map for path reconstruction.
//	– MaxDistance:    optional cap on distances to explore; atoms beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source atom was given.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if a source or target atom does not exist.
//	– ErrNegativeWeight  if a negative bond length is encountered.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if the target is unreachable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphene/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source atom was configured.
	ErrNoSource = errors.New("dijkstra: no source atom")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested atom does not exist.
	ErrVertexNotFound = errors.New("dijkstra: atom not found in graph")

	// ErrNegativeWeight indicates that a negative bond length was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative bond length encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the target atom is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Graph is the weighted topology Dijkstra runs on. *core.Lattice and
// *core.View both satisfy it; bond lengths are the edge weights.
type Graph interface {
	core.Adjacency
	BondLength(a, b int) (float64, error)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Sources     – starting atom ids (all at distance 0).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on distances to explore. Default is +Inf (no cap).
type Options struct {
	Sources     []int
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source adds id as a source atom.
func Source(id int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, id)
	}
}

// Sources adds every id as a source atom (multi-source search).
func Sources(ids ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, ids...)
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Atoms whose shortest distance would exceed this value are not explored.
// Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no sources, no predecessor
// map and no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
