package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mealcycle/internal/server"
)

const defaultAddr = ":8080"

// serveCommand starts the HTTP API and blocks until the context is cancelled.
func (c *CLI) serveCommand() *cobra.Command {
	addr := defaultAddr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(c.newRunner(), logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}
