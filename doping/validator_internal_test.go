package doping

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/species"
)

func testSheet(t *testing.T) *core.Lattice {
	t.Helper()
	l, err := builder.HoneycombCells(4, 8)
	require.NoError(t, err)
	return l
}

func TestPool_DrawsWithoutReplacement(t *testing.T) {
	p := newPool([]int{5, 3, 9, 1}, rand.New(rand.NewSource(1)))
	p.discard(9, 42)
	require.Equal(t, 3, p.Len())

	var got []int
	for {
		id, ok := p.draw()
		if !ok {
			break
		}
		got = append(got, id)
	}
	assert.ElementsMatch(t, []int{1, 3, 5}, got)
	assert.Zero(t, p.Len())
}

func TestPool_SameSeedSameDraws(t *testing.T) {
	ids := []int{0, 1, 2, 3, 4, 5, 6, 7}
	a := newPool(ids, rand.New(rand.NewSource(7)))
	b := newPool(ids, rand.New(rand.NewSource(7)))
	for a.Len() > 0 {
		x, _ := a.draw()
		y, _ := b.draw()
		assert.Equal(t, x, y)
	}
}

// single returns a pool holding only id.
func single(id int) *pool { return newPool([]int{id}, rand.New(rand.NewSource(0))) }

func TestValidator_Graphitic(t *testing.T) {
	l := testSheet(t)
	v := &validator{lat: l, rng: rand.New(rand.NewSource(0))}

	c, ok, err := v.validate(species.Graphitic, single(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0}, c.BuildingAtoms)
	assert.Equal(t, []int{1, 15, 113}, c.Neighbors)

	// a nitrogen neighbor blocks the site even if the site is eligible
	require.NoError(t, l.SetNitrogen(1, species.Graphitic))
	_, ok, err = v.validate(species.Graphitic, single(0))
	require.NoError(t, err)
	assert.False(t, ok)

	// the nitrogen itself is no candidate
	_, ok, err = v.validate(species.Graphitic, single(1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidator_Vacancy(t *testing.T) {
	l := testSheet(t)
	v := &validator{lat: l, rng: rand.New(rand.NewSource(0))}

	c, ok, err := v.validate(species.Pyridinic3, single(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, species.Pyridinic3, c.Species)
	assert.Equal(t, []int{1, 15, 113}, c.Neighbors)

	// an ineligible atom two hops away blocks the site
	require.NoError(t, l.SetEligible(2, false))
	_, ok, err = v.validate(species.Pyridinic1, single(0))
	require.NoError(t, err)
	assert.False(t, ok)

	// a removed atom is rejected without error
	require.NoError(t, l.RemoveAtom(50))
	_, ok, err = v.validate(species.Pyridinic2, single(50))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidator_Divacancy(t *testing.T) {
	l := testSheet(t)
	v := &validator{lat: l, rng: rand.New(rand.NewSource(0))}

	c, ok, err := v.validate(species.Pyridinic4, single(0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, c.BuildingAtoms, 2)
	assert.Equal(t, 0, c.BuildingAtoms[0])
	assert.Contains(t, []int{1, 15, 113}, c.BuildingAtoms[1])
	assert.Len(t, c.Neighbors, 4)
	assert.NotContains(t, c.Neighbors, 0)
	assert.NotContains(t, c.Neighbors, c.BuildingAtoms[1])

	// atom 127 is two hops from both 15 and 113 but outside the balls of 0
	// and 1, so only the pair through atom 1 remains
	require.NoError(t, l.SetEligible(127, false))
	c, ok, err = v.validate(species.Pyridinic4, single(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, c.BuildingAtoms)
}

func TestValidator_RejectsTruncatedBalls(t *testing.T) {
	// eight atoms cannot hold a full two-hop ball
	l, err := builder.HoneycombCells(1, 2)
	require.NoError(t, err)
	v := &validator{lat: l, rng: rand.New(rand.NewSource(0))}
	for _, sp := range species.All {
		if !sp.IsPyridinic() {
			continue
		}
		for _, id := range l.AtomIDs() {
			_, ok, err := v.validate(sp, single(id))
			require.NoError(t, err)
			assert.False(t, ok, "%s accepted at atom %d", sp, id)
		}
	}
}

func TestValidator_AcceptedSitesAlwaysBuild(t *testing.T) {
	for nx := 1; nx <= 5; nx++ {
		for ny := 2; ny <= 8; ny++ {
			l, err := builder.HoneycombCells(nx, ny)
			require.NoError(t, err)
			v := &validator{lat: l, rng: rand.New(rand.NewSource(1))}
			for _, sp := range species.All {
				if !sp.IsPyridinic() {
					continue
				}
				for _, id := range l.AtomIDs() {
					c, ok, err := v.validate(sp, single(id))
					require.NoError(t, err)
					if !ok {
						continue
					}
					work := l.Clone()
					b := &motifBuilder{lat: work, rng: rand.New(rand.NewSource(2))}
					s, err := b.build(c)
					require.NoError(t, err, "%dx%d cells, %s at %v", nx, ny, sp, c.BuildingAtoms)
					assert.Len(t, s.Cycle, species.MustLookup(sp).CycleSize)
				}
			}
		}
	}
}

func TestPlanRing_LeavesLatticeUntouched(t *testing.T) {
	l := testSheet(t)
	before := l.Stats()
	c := Components{Species: species.Pyridinic1, BuildingAtoms: []int{0}, Neighbors: []int{1, 15, 113}}

	ring, err := planRing(l, c, nil)
	require.NoError(t, err)
	assert.Len(t, ring, species.MustLookup(species.Pyridinic1).CycleSize)
	assert.Subset(t, ring, c.Neighbors)
	assert.NotContains(t, ring, 0)
	assert.Equal(t, before, l.Stats())
	assert.True(t, l.HasAtom(0))

	// a ring through an atom of another motif cycle is refused
	taken := func(id int) bool { return id == ring[len(ring)/2] }
	_, err = planRing(l, c, taken)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, before, l.Stats())
}
