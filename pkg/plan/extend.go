package plan

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
)

// Extender configures plan construction. The zero value is ready to use:
// it logs nothing, fills gaps with [meal.Placeholder] and tolerates
// shortfalls.
type Extender struct {
	// Logger receives placeholder and shortfall reports. Nil discards them.
	Logger *log.Logger

	// Placeholder fills positions no meal could be assigned to.
	Placeholder meal.Meal

	// Strict makes Extend fail with PLACEMENT_INCOMPLETE when any repeat
	// is dropped.
	Strict bool
}

// Extend builds a plan of length target from items using a zero Extender.
func Extend(items []meal.Meal, target int) (*Plan, error) {
	var e Extender
	return e.Extend(items, target)
}

// Extend builds a plan of length target from items.
//
// It fails with EMPTY_SOURCE when items is empty, DESTINATION_TOO_SHORT when
// target < len(items), INVALID_TOLERANCE when a tolerance is not positive,
// and, in strict mode, PLACEMENT_INCOMPLETE when repeats were dropped.
func (e *Extender) Extend(items []meal.Meal, target int) (*Plan, error) {
	if err := check(items, target); err != nil {
		return nil, err
	}

	src := meal.Clone(items)
	region := make([]Slot, target-len(src))
	free := newFreeIndex(len(region))

	var shortfalls []Shortfall
	for i, m := range src {
		shortfalls = append(shortfalls, placeRepeats(region, free, i, len(src), target, m)...)
	}

	logger := e.logger()
	p := &Plan{Source: len(src), Shortfalls: shortfalls}
	p.Meals, p.Placeholders = e.resolve(logger, src, region)

	if len(shortfalls) > 0 {
		logger.Warn("dropped repeats with no free slot", "count", len(shortfalls), "target", target)
		if logger.GetLevel() <= log.DebugLevel {
			for _, s := range shortfalls {
				logger.Debug("dropped repeat", "meal", s.Meal.Name, "repeat", s.Repeat, "want", s.Want)
			}
		}
		if e.Strict {
			return nil, p.Incomplete()
		}
	}
	return p, nil
}

// placeRepeats places the repeats of m, found at catalog position pos, into
// region. n is the catalog length, so region index j is absolute position
// n+j. It returns the repeats that had to be dropped.
//
// Later repeats only look further right, so once the tail of the region is
// full every remaining in-range repeat is dropped without searching.
func placeRepeats(region []Slot, free freeIndex, pos, n, target int, m meal.Meal) []Shortfall {
	var (
		cur    Cursor
		missed []Shortfall
		full   bool
	)
	bound := target / m.Tolerance
	for k := 1; k <= bound; k++ {
		want := pos + k*m.Tolerance
		idx := cur.Index(want - n)
		if idx < 0 || idx >= len(region) {
			continue
		}
		at, ok := 0, false
		if !full {
			at, ok = free.next(idx)
		}
		if !ok {
			full = true
			missed = append(missed, Shortfall{Meal: m, Repeat: k, Want: want})
			continue
		}
		cur = cur.Advance(at - idx)
		region[at] = Occupied(m)
		free.take(at)
	}
	return missed
}

// resolve appends region to src, replacing empty slots with the placeholder.
// It returns the combined sequence and the absolute positions backfilled.
func (e *Extender) resolve(logger *log.Logger, src []meal.Meal, region []Slot) ([]meal.Meal, []int) {
	out := make([]meal.Meal, len(src), len(src)+len(region))
	copy(out, src)

	var filled []int
	for j, s := range region {
		m, ok := s.Get()
		if !ok {
			m = e.Placeholder
			filled = append(filled, len(src)+j)
			logger.Debug("filled empty slot with placeholder", "position", len(src)+j)
		}
		out = append(out, m)
	}
	if len(filled) > 0 {
		logger.Warn("backfilled positions with placeholder", "count", len(filled))
	}
	return out, filled
}

func (e *Extender) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// check validates the inputs shared by every strategy.
func check(items []meal.Meal, target int) error {
	if len(items) == 0 {
		return errors.New(errors.ErrCodeEmptySource, "no meals to extend")
	}
	if target < len(items) {
		return errors.New(errors.ErrCodeDestinationTooShort,
			"target length %d is shorter than the %d source meals", target, len(items))
	}
	return meal.Validate(items)
}
