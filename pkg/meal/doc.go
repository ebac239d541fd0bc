// Package meal defines the items that a plan is built from.
//
// A [Meal] is a display name plus a tolerance: the maximum number of positions
// the meal may go without reappearing in a plan. Tolerances must be positive.
//
// # Identity and priority
//
// Two meals are equal when both name and tolerance match; see [Meal.Equal].
// [SortByTolerance] orders meals by descending tolerance, which is a placement
// priority only. Meals with the same tolerance are never interchangeable for
// equality purposes.
//
// # Catalogs
//
// A catalog is the ordered source list handed to the planner. [Demo] returns
// the built-in demonstration catalog; [LoadCatalog] and [ReadCatalog] read a
// TOML file of the form:
//
//	[[meal]]
//	name = "Beef Stroganoff"
//	tolerance = 3
//
//	[[meal]]
//	name = "PB&J"
//	tolerance = 1
package meal
