package main

//
//  @title           finpulse API
//  @version         1.0
//  @description     Daily financial time-series ingestion & query service.
//  @termsOfService  https://github.com/finpulse/finpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/finpulse/finpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        financial
//  @tag.description Endpoints for querying daily prices and statistics
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
	"strings"
	"syscall"
	"time"

	"github.com/finpulse/finpulse/config"
	_ "github.com/finpulse/finpulse/docs" // swagger docs
	"github.com/finpulse/finpulse/internal/app"
	"github.com/finpulse/finpulse/internal/ingestion"
	"github.com/finpulse/finpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
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
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
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

// main is the entry point of the finpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API to expose daily financial data.
//   - ingest: Fetches provider daily series for the configured symbols and
//     upserts them into storage.
//
// Flags:
//   - --mode:    Execution mode ("api" or "ingest"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --symbols: Comma-separated symbols for ingestion (overrides INGEST_SYMBOLS).
//   - --days:    Trailing window in calendar days for ingestion (overrides INGEST_DAYS).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or ingest")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	symbolsFlag := flag.String("symbols", "", "Comma-separated symbols to ingest (default from INGEST_SYMBOLS)")
	days := flag.Int("days", config.AppConfig.Provider.Days, "Trailing window in calendar days to ingest")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "ingest":
		// Ingestion mode: fetch provider data and persist price rows
		logger.L().Info().Msg("running ingestion")

		provider := config.AppConfig.Provider
		if provider.APIKey == "" {
			logger.L().Fatal().Msg("ALPHAVANTAGE_API_KEY is required in ingest mode")
		}

		symbols := provider.Symbols
		if *symbolsFlag != "" {
			symbols = nil
			for _, s := range strings.Split(*symbolsFlag, ",") {
				if s = strings.TrimSpace(s); s != "" {
					symbols = append(symbols, s)
				}
			}
		}

		// Direct DB connection for ingestion
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		client := ingestion.NewClient(provider.BaseURL, provider.APIKey)
		if err := ingestion.Run(ctx, db, client, symbols, *days); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
