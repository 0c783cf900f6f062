package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/dijkstra"
)

// square builds 0-1-2-3-0 with one long side (3-0 = 5) and a chord 0-2 = 2.5.
func square(t *testing.T) *core.Lattice {
	t.Helper()
	l := core.NewLattice(core.Box{Width: 100, Height: 100}, 1)
	for i := 0; i < 5; i++ {
		l.AddAtom(core.Carbon, core.Vec2{X: float64(i)})
	}
	add := func(a, b int, length float64) {
		_, err := l.AddBond(a, b, core.WithLength(length))
		require.NoError(t, err)
	}
	add(0, 1, 1)
	add(1, 2, 1)
	add(2, 3, 1)
	add(3, 0, 5)
	add(0, 2, 2.5)
	return l // atom 4 is isolated
}

func TestDijkstra_Validation(t *testing.T) {
	l := square(t)

	_, _, err := dijkstra.Dijkstra(l)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(l, dijkstra.Source(99))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(l, 0, 99)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_Distances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(square(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)

	want := map[int]float64{0: 0, 1: 1, 2: 2, 3: 3}
	assert.Equal(t, want, dist)
	assert.Equal(t, 1, prev[2])
	assert.Equal(t, 2, prev[3])
	_, hasSrc := prev[0]
	assert.False(t, hasSrc)
}

func TestDijkstra_NoPathAndMaxDistance(t *testing.T) {
	l := square(t)
	_, _, err := dijkstra.ShortestPath(l, 0, 4)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPath))

	dist, prev, err := dijkstra.Dijkstra(l, dijkstra.Source(0), dijkstra.WithMaxDistance(1.5))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[int]float64{0: 0, 1: 1}, dist)
}

func TestDijkstra_MultiSource(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(square(t), dijkstra.Sources(0, 3))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 2: 1, 3: 0}, dist)
}

func TestDijkstra_NegativeLength(t *testing.T) {
	l := square(t)
	_, err := l.AddBond(3, 4, core.WithLength(-1))
	require.NoError(t, err)
	_, _, err = dijkstra.Dijkstra(l, dijkstra.Source(3))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestShortestPath_Honeycomb checks hop-count × b on a pristine periodic sheet,
// including a path that is shorter across the periodic boundary.
func TestShortestPath_Honeycomb(t *testing.T) {
	l, err := builder.HoneycombCells(4, 8)
	require.NoError(t, err)

	path, length, err := dijkstra.ShortestPath(l, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 15}, path) // periodic bond closes the row
	assert.InDelta(t, builder.DefaultBondDistance, length, 1e-9)

	path, length, err = dijkstra.ShortestPath(l, 0, 2)
	require.NoError(t, err)
	if !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Errorf("path = %v; want [0 1 2]", path)
	}
	assert.InDelta(t, 2*builder.DefaultBondDistance, length, 1e-9)

	d, err := dijkstra.PathLength(l, 5, 5)
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.False(t, math.IsNaN(d))
}

func TestDijkstra_OnView(t *testing.T) {
	v := square(t).Induced([]int{0, 2, 3})
	path, length, err := dijkstra.ShortestPath(v, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
	assert.InDelta(t, 3.5, length, 1e-12)
}
