package plan

import (
	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
)

// Cycle builds a plan of length target using a zero Extender.
func Cycle(items []meal.Meal, target, period int) (*Plan, error) {
	var e Extender
	return e.Cycle(items, target, period)
}

// Cycle builds a plan by repeating items verbatim. A period larger than
// len(items) pads each cycle with placeholders; zero means len(items).
//
// Besides the checks of Extend, it fails with INVALID_INPUT when period is
// shorter than the catalog and REMAINDER_EXCEEDS_SOURCE when the final
// partial cycle would need more meals than the catalog holds.
func (e *Extender) Cycle(items []meal.Meal, target, period int) (*Plan, error) {
	if err := check(items, target); err != nil {
		return nil, err
	}
	n := len(items)
	if period == 0 {
		period = n
	}
	if period < n {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"period %d is shorter than the %d source meals", period, n)
	}
	whole, rem, err := Split(target, period, n)
	if err != nil {
		return nil, err
	}
	logger := e.logger()
	logger.Debug("cycling catalog", "period", period, "whole", whole, "remainder", rem)

	src := meal.Clone(items)
	region := make([]Slot, target-n)
	for j := range region {
		if c := (n + j) % period; c < n {
			region[j] = Occupied(src[c])
		}
	}

	p := &Plan{Source: n}
	p.Meals, p.Placeholders = e.resolve(logger, src, region)
	return p, nil
}

// Split divides target into whole cycles of length period and a remainder.
// The remainder is copied from the start of a cycle, so it may not exceed
// the source meals available at that start.
func Split(target, period, source int) (whole, rem int, err error) {
	if period <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "period must be positive, got %d", period)
	}
	whole, rem = target/period, target%period
	if rem > source {
		return 0, 0, errors.New(errors.ErrCodeRemainderExceedsSource,
			"remainder %d exceeds the %d source meals", rem, source)
	}
	return whole, rem, nil
}
