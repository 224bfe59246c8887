package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/internal/presentation/tui"
	httpAdapter "github.com/aretw0/extrude/pkg/adapters/http"
	"github.com/aretw0/extrude/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the engine as a JSON API over HTTP, with Prometheus metrics at
/metrics, run events at /events and the OpenAPI document at /openapi.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := observability.NewMetrics(reg)
		streams := httpAdapter.NewStreamManager()

		b, cfg, err := openBackend(cmd, metrics.Hooks(), streams.Hooks())
		if err != nil {
			return err
		}
		defer b.Close()
		logger := cli.NewLogger(cfg.Debug)

		handler := httpAdapter.NewHandler(b.Engine,
			httpAdapter.WithStreams(streams),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
		)

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner(cmd.ErrOrStderr())
			logger.Warn("starting extrude server", "addr", srv.Addr, "store", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return err

		case <-ctx.Done():
			logger.Warn("shutting down", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				return srv.Close()
			}
			if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 8080, "Port to listen on (EXTRUDE_PORT)")
}
