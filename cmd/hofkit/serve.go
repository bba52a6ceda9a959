package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/hofkit/internal/api"
	"github.com/kbukum/hofkit/internal/app"
	"github.com/kbukum/hofkit/logger"
	"github.com/kbukum/hofkit/observability"
	"github.com/kbukum/hofkit/server"
	"github.com/kbukum/hofkit/version"
)

func (c *cli) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the /v1 API over HTTP/1.1 and h2c",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				c.cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override server.port")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled.
func (c *cli) serve(ctx context.Context) error {
	shutdown, err := observability.Setup(ctx, c.cfg.Observability, c.cfg.Name, version.Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			c.log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	metrics, err := observability.NewMetrics(observability.Meter(c.cfg.Name))
	if err != nil {
		return err
	}
	svc, err := app.NewService(c.cfg, c.log, metrics)
	if err != nil {
		return err
	}

	srv := server.New(c.cfg.Server, c.log)
	srv.ApplyMiddleware(metrics)
	srv.RegisterDefaultEndpoints(c.cfg.Name, svc)
	api.NewHandler(svc).Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		return err
	}
	c.log.Info("hofkit serving", logger.Fields(
		"addr", srv.Addr(),
		logger.FieldOperations, svc.Operations(),
		logger.FieldTieBreak, c.cfg.Selection.TieBreak,
	))

	<-ctx.Done()
	return srv.Stop(context.Background())
}
