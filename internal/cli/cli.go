// Package cli implements the mealcycle command-line interface.
//
// Running mealcycle with no arguments prints the demonstration plan: the
// built-in catalog ordered by tolerance and extended to 16 meals, one
// "(name, tolerance)" line per position. Flags select another catalog,
// length, strategy or output format. The serve subcommand exposes the same
// pipeline over HTTP.
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mealcycle/pkg/buildinfo"
	"github.com/matzehuels/mealcycle/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "mealcycle"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// stdout receives plan output; stderr receives status lines.
	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.extendCommand()
	root.Use = appName
	root.Short = "mealcycle spreads recurring meals over a longer plan"
	root.Long = `mealcycle extends a short list of meals, each with a tolerance (the most
positions it may go without reappearing), into a plan of a requested length.
Repeats are placed at tolerance-derived positions; collisions move forward to
the next free position.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
