// Package pipeline runs the catalog → order → extend → render flow.
//
// Both the CLI and the HTTP server go through a [Runner] so that defaults,
// validation, logging and observability hooks stay identical across entry
// points.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Target: 16,
//	    Sort:   true,
//	    Format: render.FormatText,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"time"

	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/plan"
	"github.com/matzehuels/mealcycle/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTarget is the plan length the CLI and server use when none is
	// requested. Options itself has no implicit target.
	DefaultTarget = 16

	// MaxTarget bounds plan length so a single request stays cheap.
	MaxTarget = 100_000
)

// Strategy names.
const (
	StrategySpread = "spread" // tolerance-based placement
	StrategyCycle  = "cycle"  // verbatim repetition
)

// Strategies lists every accepted strategy.
var Strategies = []string{StrategySpread, StrategyCycle}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Meals is the source catalog. When empty, CatalogPath is read, and
	// when that is empty too, the demo catalog is used.
	Meals       []meal.Meal
	CatalogPath string

	Target   int    // plan length; entry points default it to DefaultTarget
	Sort     bool   // order the catalog by descending tolerance first
	Strategy string // StrategySpread (default) or StrategyCycle
	Period   int    // cycle period for StrategyCycle; 0 means catalog length
	Strict   bool   // fail with PLACEMENT_INCOMPLETE on dropped repeats
	Format   string // render format; empty means render.FormatText
}

// ValidateAndSetDefaults normalizes opts in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Target > MaxTarget {
		return errors.New(errors.ErrCodeInvalidInput, "target must be at most %d, got %d", MaxTarget, o.Target)
	}
	if o.Period < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "period must not be negative, got %d", o.Period)
	}

	strategy := o.Strategy
	if strategy == "" {
		strategy = StrategySpread
	}
	s, err := errors.ValidateChoice(errors.ErrCodeInvalidStrategy, "strategy", strategy, Strategies)
	if err != nil {
		return err
	}
	o.Strategy = s

	f, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = f
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result holds everything a run produced.
type Result struct {
	Plan   *plan.Plan
	Output []byte // rendered plan in Options.Format
	Stats  Stats
}

// Stats summarizes a run.
type Stats struct {
	Source       int
	Target       int
	Shortfalls   int
	Placeholders int
	PlanTime     time.Duration
	RenderTime   time.Duration
}
