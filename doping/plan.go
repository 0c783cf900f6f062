// File: plan.go
// Role: Allocation Planner. Pure; never touches the lattice.

package doping

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/graphene/species"
)

// DefaultTotalPercentage is the total doping used when a request names
// neither a total nor any species.
const DefaultTotalPercentage = 10.0

// sumTolerance absorbs float noise when comparing percentage sums.
const sumTolerance = 1e-9

// Request is a doping request. A nil TotalPercentage means "not given".
type Request struct {
	TotalPercentage *float64
	Percentages     map[species.Species]float64
}

// Percentage returns a pointer to v, for Request.TotalPercentage.
func Percentage(v float64) *float64 { return &v }

// Plan is the resolved allocation of a Request against an atom count.
type Plan struct {
	// Total is the effective total percentage.
	Total float64
	// Percentages holds the resolved percentage of every species.
	Percentages map[species.Species]float64
	// Targets holds the nitrogen-atom quota of every species.
	Targets map[species.Species]int
	// Order is the processing order: largest disruption first.
	Order []species.Species
}

// NewPlan resolves req against a lattice of atoms atoms:
//   - per-species percentages without a total make the total their sum;
//   - neither given means DefaultTotalPercentage;
//   - the uncovered remainder of the total is split equally across the
//     species left unspecified;
//   - quotas are int(atoms·pct/100).
//
// Errors: ErrInvalidPercentage, ErrUnknownSpecies, ErrPercentagesExceedTotal.
func NewPlan(req Request, atoms int) (Plan, error) {
	explicit := make(map[species.Species]float64, len(req.Percentages))
	sum := 0.0
	for _, sp := range sortedKeys(req.Percentages) {
		v := req.Percentages[sp]
		if !sp.Valid() {
			return Plan{}, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(sp))
		}
		if err := checkPercentage(v); err != nil {
			return Plan{}, fmt.Errorf("%s: %w", sp, err)
		}
		explicit[sp] = v
		sum += v
	}

	var total float64
	switch {
	case req.TotalPercentage != nil:
		total = *req.TotalPercentage
		if err := checkPercentage(total); err != nil {
			return Plan{}, fmt.Errorf("total: %w", err)
		}
	case len(explicit) > 0:
		total = sum
	default:
		total = DefaultTotalPercentage
	}
	if sum > total+sumTolerance {
		return Plan{}, fmt.Errorf("%w: %.4g%% > %.4g%%", ErrPercentagesExceedTotal, sum, total)
	}

	p := Plan{
		Total:       total,
		Percentages: make(map[species.Species]float64, len(species.All)),
		Targets:     make(map[species.Species]int, len(species.All)),
		Order:       append([]species.Species(nil), species.InsertionOrder...),
	}
	unspecified := len(species.All) - len(explicit)
	share := 0.0
	if unspecified > 0 {
		share = math.Max(total-sum, 0) / float64(unspecified)
	}
	for _, sp := range species.All {
		pct, ok := explicit[sp]
		if !ok {
			pct = share
		}
		p.Percentages[sp] = pct
		p.Targets[sp] = int(float64(atoms) * pct / 100)
	}
	return p, nil
}

// TotalTarget returns the sum of all species quotas.
func (p Plan) TotalTarget() int {
	n := 0
	for _, t := range p.Targets {
		n += t
	}
	return n
}

func checkPercentage(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidPercentage, v)
	}
	return nil
}

func sortedKeys(m map[species.Species]float64) []species.Species {
	keys := make([]species.Species, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
