// Package pkg provides the libraries behind mealcycle.
//
// # Overview
//
// mealcycle turns a short list of meals into a longer plan in which every
// meal comes back within its tolerance whenever the plan has room for it.
//
// The typical data flow:
//
//	meal catalog (demo or TOML file)
//	         ↓
//	    [meal] package (validation, tolerance ordering)
//	         ↓
//	    [plan] package (spacing placement, conflict resolution)
//	         ↓
//	    [render] package (text, table, JSON, DOT/SVG)
//
// [pipeline] wires these stages together for the CLI and the HTTP server,
// and [errors] defines the error codes every stage returns.
//
// # Quick Start
//
//	p, err := plan.Extend(meal.SortByTolerance(meal.Demo()), 16)
//	if err != nil {
//	    return err
//	}
//	return render.WriteText(os.Stdout, p)
//
// [meal]: github.com/matzehuels/mealcycle/pkg/meal
// [plan]: github.com/matzehuels/mealcycle/pkg/plan
// [render]: github.com/matzehuels/mealcycle/pkg/render
// [pipeline]: github.com/matzehuels/mealcycle/pkg/pipeline
// [errors]: github.com/matzehuels/mealcycle/pkg/errors
package pkg
