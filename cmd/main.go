package main

//
//  @title           callpulse API
//  @version         1.0
//  @description     Voice-call sync & analytics service.
//  @termsOfService  https://github.com/callpulse/callpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/callpulse/callpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        analytics
//  @tag.description Endpoints for querying daily call analytics
//
//  @tag.name        calls
//  @tag.description Endpoints for listing raw call records
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/callpulse/callpulse/config"
	_ "github.com/callpulse/callpulse/docs" // swagger docs
	"github.com/callpulse/callpulse/internal/app"
	"github.com/callpulse/callpulse/internal/logger"
	callsync "github.com/callpulse/callpulse/internal/sync"
	"github.com/callpulse/callpulse/internal/voiceapi"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the callpulse application.
//
// Modes (selected via --mode flag):
//   - sync: Pulls the last N days of call records from the upstream voice API.
//   - api:  Starts the REST API to expose call analytics.
//
// Flags:
//   - --mode:     Execution mode ("sync" or "api"). Default: "sync".
//   - --days:     Number of past days to sync (1-31). Default: 7.
//   - --parallel: How many days to sync concurrently (0=auto up to CPU, max 7).
//   - --force:    Resync days even if already synced (deletes existing calls for that day).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "sync", "Mode: sync or api")
	days := flag.Int("days", 7, "Number of past days to sync (1-31)")
	parallel := flag.Int("parallel", 0, "How many days to sync concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Resync days even if already synced (deletes existing calls for that day)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "sync":
		// Sync mode: pull calls from the upstream API and persist them
		logger.L().Info().Msg("running sync")
		if err := config.SyncRequirements(); err != nil {
			logger.L().Fatal().Err(err).Msg("sync config incomplete")
		}

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		client := voiceapi.NewClient(
			config.AppConfig.VoiceAPI.BaseURL,
			config.AppConfig.VoiceAPI.Token,
			config.AppConfig.VoiceAPI.PageSize,
		)

		if err := callsync.ProcessWindow(ctx, client, db, *days, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("sync failed")
		}
		logger.L().Info().Msg("sync completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
