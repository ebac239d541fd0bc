package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/observability"
	"github.com/matzehuels/mealcycle/pkg/plan"
	"github.com/matzehuels/mealcycle/pkg/render"
)

// Runner encapsulates pipeline execution.
//
// The Runner holds no per-run state, so multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete catalog → plan → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	p, err := r.Plan(ctx, &opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Plan: p,
		Stats: Stats{
			Source:       p.Source,
			Target:       p.Len(),
			Shortfalls:   len(p.Shortfalls),
			Placeholders: len(p.Placeholders),
		},
	}

	renderStart := time.Now()
	var buf bytes.Buffer
	if err := render.Write(&buf, p, opts.Format); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = buf.Bytes()
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered plan", "format", opts.Format, "bytes", buf.Len(), "duration", result.Stats.RenderTime)
	return result, nil
}

// Plan validates opts, resolves the catalog and builds the plan without
// rendering it.
func (r *Runner) Plan(ctx context.Context, opts *Options) (*plan.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	items, err := r.Catalog(*opts)
	if err != nil {
		return nil, err
	}
	if opts.Sort {
		items = meal.SortByTolerance(items)
	}

	hooks := observability.Plan()
	hooks.OnExtendStart(ctx, opts.Strategy, len(items), opts.Target)

	start := time.Now()
	e := plan.Extender{Logger: r.Logger, Strict: opts.Strict}
	var p *plan.Plan
	switch opts.Strategy {
	case StrategyCycle:
		p, err = e.Cycle(items, opts.Target, opts.Period)
	default:
		p, err = e.Extend(items, opts.Target)
	}
	elapsed := time.Since(start)

	if err != nil {
		hooks.OnExtendComplete(ctx, opts.Strategy, 0, 0, elapsed, err)
		return nil, err
	}
	hooks.OnExtendComplete(ctx, opts.Strategy, len(p.Shortfalls), len(p.Placeholders), elapsed, nil)

	r.Logger.Info("built plan",
		"strategy", opts.Strategy,
		"source", p.Source,
		"target", p.Len(),
		"shortfalls", len(p.Shortfalls),
		"placeholders", len(p.Placeholders),
		"duration", elapsed)
	return p, nil
}

// Catalog returns the source meals selected by opts: explicit meals first,
// then a catalog file, then the demo catalog.
func (r *Runner) Catalog(opts Options) ([]meal.Meal, error) {
	switch {
	case len(opts.Meals) > 0:
		return meal.Clone(opts.Meals), nil
	case opts.CatalogPath != "":
		items, err := meal.LoadCatalog(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("loaded catalog", "path", opts.CatalogPath, "meals", len(items))
		return items, nil
	default:
		r.Logger.Debug("using demo catalog")
		return meal.Demo(), nil
	}
}
