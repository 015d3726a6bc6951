package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/bootstrap"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/config"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	commonhttp "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/http"
	srv "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/server"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/site"
	trackerhttp "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/tracker/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := bootstrap.NewLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, log)
	if err != nil {
		log.Errorf("failed to initialize %s: %v", cfg.ServiceName, err)
		_ = log.Close()
		return err
	}

	handler, err := buildHandler(ctx, app)
	if err != nil {
		app.Close(context.Background())
		return err
	}

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), handler)
	return srv.Run(ctx, server, log, cfg.ServiceName, app.ShutdownHooks())
}

func buildHandler(ctx context.Context, app *bootstrap.App) (http.Handler, error) {
	cfg := app.Config

	clientIP, err := commonhttp.NewClientIPResolver(cfg.HTTP.TrustedProxies)
	if err != nil {
		return nil, err
	}
	limiter := commonhttp.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst).
		WithClientIPResolver(clientIP)
	limiter.StartCleanup(ctx, constants.RateLimitCleanupInterval)

	mux := http.NewServeMux()
	trackerhttp.RegisterRoutes(mux, app.Tracker(), app.Log, trackerhttp.Options{
		RequestTimeout: cfg.HTTP.RequestTimeout,
		RateLimiter:    limiter,
	})
	if err := site.RegisterRoutes(mux); err != nil {
		return nil, fmt.Errorf("failed to mount static site: %w", err)
	}
	mux.HandleFunc("GET /health", commonhttp.HealthHandler(app.Log, cfg.ServiceName, app.Ping))
	mux.Handle("GET /metrics", promhttp.Handler())

	return commonhttp.BuildBaseHandler(app.Log, commonhttp.BaseOptions{
		MaxRequestSize: cfg.HTTP.MaxRequestSize,
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}, mux), nil
}
