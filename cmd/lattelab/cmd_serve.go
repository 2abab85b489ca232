package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spboyer/lattelab/internal/config"
	"github.com/spboyer/lattelab/internal/observability"
	"github.com/spboyer/lattelab/internal/service"
	"github.com/spboyer/lattelab/internal/webapi"
	"github.com/spboyer/lattelab/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the benchmark API server",
		Long: `Start the HTTP API backing the evaluation dashboard.

Endpoints:
  GET  /api/benchmarks       Current snapshot for a suite (?suite=, default output)
  POST /api/benchmarks/run   Simulate one run and persist it
  GET  /api/benchmarks/runs  Run history, newest first (?suite=&limit=)
  POST /api/score_prompt     Heuristic prompt quality score
  GET  /api/config           Safe settings echo for the dashboard
  GET  /api/healthz          Health check
  GET  /metrics              Prometheus metrics

Settings come from the environment (and .env); see the README for the
LATTE_LAB_* variables. The server stops gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(config.WithAddr(addr))
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			metrics := observability.NewMetrics()
			svc, closeStore, err := buildService(settings, service.WithMetrics(metrics))
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			logger := slog.Default()
			mux := http.NewServeMux()
			webapi.RegisterRoutes(mux, svc, metrics)

			var handler http.Handler = mux
			handler = webapi.LoggingMiddleware(handler, logger, metrics)
			handler = webapi.CORSMiddleware(handler, settings.CORSOrigins...)

			server := webserver.New(webserver.Config{
				Addr:    settings.Addr,
				Handler: handler,
				Logger:  logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides LATTE_LAB_ADDR)")

	return cmd
}
