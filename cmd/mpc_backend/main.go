package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/marketplace_client/internal/adapters/nodeapi"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	"github.com/SscSPs/marketplace_client/internal/core/services"
	"github.com/SscSPs/marketplace_client/internal/handlers"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/SscSPs/marketplace_client/internal/repositories/database/pgsql"
	"github.com/SscSPs/marketplace_client/internal/repositories/memory"
	"github.com/SscSPs/marketplace_client/pkg/config"
	"github.com/SscSPs/marketplace_client/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title Marketplace Client API
// @version 1.0
// @description Currency conversion, formatting, exchange rates and federated search for a marketplace client.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	repos := portsrepo.RepositoryProvider{
		ExchangeRateSource: nodeapi.NewExchangeRateClient(cfg.ServerURL, cfg.HTTPClientTimeout),
		SearchClient:       nodeapi.NewSearchClient(cfg.HTTPClientTimeout),
	}

	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
		repos.SearchProviderRepo = pgsql.NewRepositoryProvider(dbPool).SearchProviderRepo
	} else {
		logger.Warn("PGSQL_URL not set, search providers are kept in memory only")
		repos.SearchProviderRepo = memory.NewSearchProviderRepository()
	}

	container := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			MaxAge:        12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	searchLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, container, searchLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Exchange rate syncer starting", slog.Duration("interval", cfg.ExchangeRateSyncInterval))
		return container.ExchangeRate.Run(gctx, cfg.ExchangeRateSyncInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
