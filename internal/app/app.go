package app

import (
	"fmt"

	"github.com/finpulse/finpulse/config"
	"github.com/finpulse/finpulse/internal/api"
	"github.com/finpulse/finpulse/internal/service"
	"github.com/finpulse/finpulse/internal/storage"
	"github.com/gin-gonic/gin"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (PricesRepository).
//   - Creates the service layer (query orchestration).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewPricesRepository(db)

	// Initialize service layer (validation + query orchestration)
	svc := service.NewFinancialService(repo)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
