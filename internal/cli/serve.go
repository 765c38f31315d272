package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/internal/server"
	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/session"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board session API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if addr == "" {
				addr = c.config.Server.Addr
			}
			opts := c.config.Store.Options()
			if backend != "" {
				opts.Backend = backend
			}

			store, err := session.Open(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()
			logger.Info("session store ready", "backend", opts.Backend)

			var renders cache.Cache = cache.NewMemoryCache()
			if c.config.Cache.Disabled {
				renders = cache.NewNullCache()
			}
			srv := server.New(store,
				server.WithLogger(logger),
				server.WithSessionTTL(c.config.Server.SessionTTL),
				server.WithEngineOptions(c.config.EngineOptions()...),
				server.WithRenderCache(renders, cache.NewScopedKeyer(nil, appName+":")),
			)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&backend, "store", "", "session backend: memory, file, redis, mongo (default from config)")

	return cmd
}
