package meal

import (
	"cmp"
	"slices"
)

// ByTolerance compares meals for placement priority: larger tolerance first.
// It is a total preorder and must not be used as an equality test.
func ByTolerance(a, b Meal) int {
	return cmp.Compare(b.Tolerance, a.Tolerance)
}

// SortByTolerance returns a copy of items ordered by descending tolerance.
// Meals with equal tolerance keep their catalog order.
func SortByTolerance(items []Meal) []Meal {
	out := Clone(items)
	slices.SortStableFunc(out, ByTolerance)
	return out
}
