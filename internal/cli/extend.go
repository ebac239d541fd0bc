package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mealcycle/pkg/pipeline"
	"github.com/matzehuels/mealcycle/pkg/render"
)

// extendOpts holds the command-line flags for building a plan.
type extendOpts struct {
	catalog  string // TOML catalog path; empty uses the demo catalog
	target   int    // plan length
	sort     bool   // order by descending tolerance before placing
	strategy string // "spread" or "cycle"
	period   int    // cycle period (cycle strategy only)
	format   string // text, table, json, dot, svg
	output   string // output file; empty writes to stdout
	strict   bool   // fail when repeats are dropped
}

// extendCommand builds the command that runs when mealcycle is invoked
// without a subcommand.
//
// Default settings:
//   - catalog: built-in demo meals
//   - target: 16
//   - sort: true (largest tolerance first)
//   - strategy: spread
//   - format: text
func (c *CLI) extendCommand() *cobra.Command {
	opts := extendOpts{
		target:   pipeline.DefaultTarget,
		sort:     true,
		strategy: pipeline.StrategySpread,
		format:   render.FormatText,
	}

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtend(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.catalog, "meals", "m", "", "TOML meal catalog (default: built-in demo)")
	cmd.Flags().IntVarP(&opts.target, "target", "n", opts.target, "plan length")
	cmd.Flags().BoolVar(&opts.sort, "sort", opts.sort, "order meals by descending tolerance before placing")
	cmd.Flags().StringVar(&opts.strategy, "strategy", opts.strategy, "placement strategy: "+strings.Join(pipeline.Strategies, ", "))
	cmd.Flags().IntVar(&opts.period, "period", 0, "cycle length for the cycle strategy (default: catalog length)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a repeat cannot be placed")

	return cmd
}

func (c *CLI) runExtend(ctx context.Context, opts *extendOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		CatalogPath: opts.catalog,
		Target:      opts.target,
		Sort:        opts.sort,
		Strategy:    opts.strategy,
		Period:      opts.period,
		Strict:      opts.strict,
		Format:      opts.format,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %d meals", result.Stats.Target))

	if err := c.writeOutput(opts.output, result.Output); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess(c.errWriter(), "Wrote %s plan", opts.format)
		printFile(c.errWriter(), opts.output)
	}
	if n := result.Stats.Shortfalls; n > 0 {
		printWarning(c.errWriter(), "%d repeats could not be placed; run with --strict to fail instead", n)
	}
	if n := result.Stats.Placeholders; n > 0 {
		printWarning(c.errWriter(), "%d positions filled with a placeholder", n)
	}
	return nil
}

func (c *CLI) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := c.outWriter().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c *CLI) outWriter() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

func (c *CLI) errWriter() io.Writer {
	if c.stderr == nil {
		return os.Stderr
	}
	return c.stderr
}
