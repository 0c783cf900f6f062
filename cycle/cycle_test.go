package cycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/cycle"
)

func sheet(t *testing.T) *core.Lattice {
	t.Helper()
	l, err := builder.HoneycombCells(4, 8)
	require.NoError(t, err)
	return l
}

// assertRing checks that consecutive ids (cyclically) are bonded in l.
func assertRing(t *testing.T, l *core.Lattice, ring []int) {
	t.Helper()
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		assert.True(t, l.HasBond(a, b), "ring step %d-%d is not a bond", a, b)
	}
}

func TestMinimumContaining_Hexagon(t *testing.T) {
	l := sheet(t)
	ring, err := cycle.MinimumContaining(l, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 114, 113}, ring)
	assertRing(t, l, ring)
}

func TestMinimumContaining_Vacancy(t *testing.T) {
	l := sheet(t)
	nbrs, err := l.NeighborIDs(1)
	require.NoError(t, err)
	require.NoError(t, l.RemoveAtom(1))

	ring, err := cycle.MinimumContaining(l, nbrs)
	require.NoError(t, err)
	assert.Len(t, ring, 12)
	assert.Subset(t, ring, nbrs)
	assertRing(t, l, ring)
}

func TestMinimumContaining_Divacancy(t *testing.T) {
	l := sheet(t)
	n1, _ := l.NeighborIDs(1)
	n2, _ := l.NeighborIDs(2)
	var seeds []int
	for _, id := range append(n1, n2...) {
		if id != 1 && id != 2 {
			seeds = append(seeds, id)
		}
	}
	require.Len(t, seeds, 4)
	require.NoError(t, l.RemoveAtom(1))
	require.NoError(t, l.RemoveAtom(2))

	ring, err := cycle.MinimumContaining(l, seeds)
	require.NoError(t, err)
	assert.Len(t, ring, 14)
	assert.Subset(t, ring, seeds)
	assertRing(t, l, ring)
}

func TestMinimumContaining_Errors(t *testing.T) {
	l := core.NewLattice(core.Box{Width: 10, Height: 10}, 1)
	for i := 0; i < 4; i++ {
		l.AddAtom(core.Carbon, core.Vec2{X: float64(i)})
	}
	for i := 0; i < 3; i++ {
		_, err := l.AddBond(i, i+1)
		require.NoError(t, err)
	}

	_, err := cycle.MinimumContaining(l, nil)
	assert.ErrorIs(t, err, cycle.ErrNoSeeds)
	_, err = cycle.MinimumContaining(l, []int{0, 9})
	assert.ErrorIs(t, err, cycle.ErrSeedNotFound)
	_, err = cycle.MinimumContaining(l, []int{0, 3})
	assert.True(t, errors.Is(err, cycle.ErrNoCycle))
}

// TestMinimumContaining_ConfinedToView runs on a hexagon with atom 114 cut
// out: the view is a tree, so no ring exists although the lattice has one.
func TestMinimumContaining_ConfinedToView(t *testing.T) {
	l := sheet(t)
	v := l.Induced([]int{0, 1, 2, 3, 113})
	_, err := cycle.MinimumContaining(v, []int{0, 2})
	assert.ErrorIs(t, err, cycle.ErrNoCycle)
}

func TestOrder(t *testing.T) {
	l := sheet(t)
	hex := l.Induced([]int{0, 1, 2, 3, 113, 114})

	got, err := cycle.Order(hex, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0, 113, 114}, got)

	_, err = cycle.Order(hex, 50)
	assert.ErrorIs(t, err, core.ErrAtomNotFound)

	chain := l.Induced([]int{0, 1, 2})
	_, err = cycle.Order(chain, 1)
	assert.ErrorIs(t, err, cycle.ErrNotSimpleCycle)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, cycle.Canonical([]int{3, 4, 1, 2}))
	assert.Equal(t, []int{1, 2, 3, 4}, cycle.Canonical([]int{3, 2, 1, 4}))
	assert.Equal(t, []int{5, 6}, cycle.Canonical([]int{5, 6}))
}
