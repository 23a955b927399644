package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ncobase/sqlpage/config"
	"github.com/ncobase/sqlpage/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Serve pages over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			a, cleanup, err := initApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if watch {
				config.Watch(func(c *config.Config) {
					a.logger.Info(context.Background(), "config changed, restart to apply source changes",
						"source", c.Source.Kind)
				})
			}

			h := server.NewHandler(a.paginator, a.data, a.logger)
			return server.New(cfg.Server, cfg.RunMode, h, a.logger).Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "log when the config file changes")
	return cmd
}
