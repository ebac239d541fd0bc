package plan

import (
	"slices"

	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
)

// Plan is the result of extending a catalog.
type Plan struct {
	// Meals has exactly the requested length. The first Source entries are
	// the catalog in its original order.
	Meals []meal.Meal

	// Source is the length of the catalog prefix.
	Source int

	// Shortfalls lists repeats that could not be placed.
	Shortfalls []Shortfall

	// Placeholders lists absolute positions filled with the placeholder meal,
	// in ascending order.
	Placeholders []int
}

// Shortfall describes a repeat that was dropped because no free slot
// remained at or after its ideal position.
type Shortfall struct {
	Meal   meal.Meal `json:"meal"`
	Repeat int       `json:"repeat"` // k-th repeat after the catalog occurrence
	Want   int       `json:"want"`   // ideal absolute position
}

// Len returns the number of positions in the plan.
func (p *Plan) Len() int { return len(p.Meals) }

// Positions returns the absolute positions at which m occurs.
func (p *Plan) Positions(m meal.Meal) []int {
	var out []int
	for i, x := range p.Meals {
		if x.Equal(m) {
			out = append(out, i)
		}
	}
	return out
}

// IsPlaceholder reports whether position i was backfilled with the
// placeholder meal rather than assigned a catalog meal.
func (p *Plan) IsPlaceholder(i int) bool {
	_, ok := slices.BinarySearch(p.Placeholders, i)
	return ok
}

// Gaps returns the distances between consecutive occurrences of m.
func (p *Plan) Gaps(m meal.Meal) []int {
	pos := p.Positions(m)
	if len(pos) < 2 {
		return nil
	}
	gaps := make([]int, len(pos)-1)
	for i := 1; i < len(pos); i++ {
		gaps[i-1] = pos[i] - pos[i-1]
	}
	return gaps
}

// Incomplete returns a PLACEMENT_INCOMPLETE error when repeats were dropped,
// and nil otherwise.
func (p *Plan) Incomplete() error {
	if len(p.Shortfalls) == 0 {
		return nil
	}
	first := p.Shortfalls[0]
	return errors.New(errors.ErrCodePlacementIncomplete,
		"%d repeats could not be placed (first: %s repeat %d at position %d)",
		len(p.Shortfalls), first.Meal, first.Repeat, first.Want)
}
