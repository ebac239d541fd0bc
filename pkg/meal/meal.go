package meal

import (
	"fmt"
	"slices"

	"github.com/matzehuels/mealcycle/pkg/errors"
)

// Meal is a recurring item with a spacing constraint.
type Meal struct {
	Name      string `json:"name" toml:"name"`
	Tolerance int    `json:"tolerance" toml:"tolerance"`
}

// Placeholder fills plan positions that no real meal could be assigned to.
var Placeholder = Meal{}

// Equal reports whether m and o have the same name and tolerance.
func (m Meal) Equal(o Meal) bool {
	return m.Name == o.Name && m.Tolerance == o.Tolerance
}

// IsPlaceholder reports whether m is the zero placeholder meal.
func (m Meal) IsPlaceholder() bool {
	return m.Equal(Placeholder)
}

// String formats m as "(name, tolerance)".
func (m Meal) String() string {
	return fmt.Sprintf("(%s, %d)", m.Name, m.Tolerance)
}

// Validate checks that every meal has a positive tolerance.
// The returned error names the first offending position.
func Validate(items []Meal) error {
	for i, m := range items {
		if m.Tolerance <= 0 {
			return errors.New(errors.ErrCodeInvalidTolerance,
				"meal %d (%q): tolerance must be positive, got %d", i, m.Name, m.Tolerance)
		}
	}
	return nil
}

// Clone returns an independent copy of items.
func Clone(items []Meal) []Meal {
	return slices.Clone(items)
}
