// File: pool.go
// Role: Removable candidate pool with uniform random draws.
//
// Determinism:
//   - Members are kept in an ordered tree set, so a draw depends only on the
//     pool contents and the random source.

package doping

import (
	"math/rand"

	"github.com/emirpasic/gods/sets/treeset"
)

// pool is the set of still-untested candidate atoms of one species pass.
type pool struct {
	set *treeset.Set
	rng *rand.Rand
}

func newPool(ids []int, rng *rand.Rand) *pool {
	s := treeset.NewWithIntComparator()
	for _, id := range ids {
		s.Add(id)
	}
	return &pool{set: s, rng: rng}
}

// Len returns the number of untested candidates.
func (p *pool) Len() int { return p.set.Size() }

// draw removes and returns a uniformly chosen member.
// Complexity: O(n) to walk to the chosen rank.
func (p *pool) draw() (int, bool) {
	n := p.set.Size()
	if n == 0 {
		return 0, false
	}
	k := p.rng.Intn(n)
	it := p.set.Iterator()
	for i := 0; i <= k; i++ {
		it.Next()
	}
	id := it.Value().(int)
	p.set.Remove(id)
	return id, true
}

// discard drops ids that can no longer succeed.
func (p *pool) discard(ids ...int) {
	for _, id := range ids {
		p.set.Remove(id)
	}
}
