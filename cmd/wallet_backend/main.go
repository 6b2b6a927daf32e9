package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/adapters/events"
	"github.com/SscSPs/crypto_wallet_app/internal/adapters/marketfeed"
	"github.com/SscSPs/crypto_wallet_app/internal/adapters/settlement"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/crypto_wallet_app/internal/core/services"
	"github.com/SscSPs/crypto_wallet_app/internal/handlers"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/SscSPs/crypto_wallet_app/internal/platform/config"
	"github.com/SscSPs/crypto_wallet_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/crypto_wallet_app/internal/utils"
	"github.com/SscSPs/crypto_wallet_app/pkg/database"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	rediscache "github.com/SscSPs/crypto_wallet_app/internal/adapters/cache/redis"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const snapshotCacheTTL = 24 * time.Hour

// @title Crypto Wallet Backend API
// @version 1.0
// @description Wallets, prices, linked amount conversion and wallet closure.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is optional: it backs the rate limiter and the snapshot cache when configured.
	var redisClient *goredis.Client
	var snapshotCache gateways.SnapshotCache
	if cfg.RedisURL != "" {
		redisClient, err = rediscache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		snapshotCache = rediscache.NewSnapshotCache(redisClient, snapshotCacheTTL)
		logger.Info("Redis connected")
	}

	var publisher gateways.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("Publishing events to Kafka", slog.String("topic", cfg.KafkaTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	store := services.NewPriceStore(fallbackRates(cfg))
	settlementClient := settlement.NewClient(cfg.SettlementBaseURL, cfg.SettlementTimeout)
	container := services.NewServiceContainer(repos, store, settlementClient, publisher)

	pollerOptions := []services.PollerOption{}
	if snapshotCache != nil {
		pollerOptions = append(pollerOptions, services.WithSnapshotCache(snapshotCache))
	}
	poller := services.NewPriceFeedPoller(
		store,
		marketfeed.NewClient(cfg.MarketFeedURL, 10*time.Second, logger),
		repos.PriceTableRepo,
		cfg.MarketRefreshInterval,
		cfg.PriceTableRefreshInterval,
		logger,
		pollerOptions...,
	)
	poller.Warm(ctx)

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(limiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// runMigrations applies all pending "up" migrations using a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func fallbackRates(cfg *config.Config) engine.FallbackRates {
	if len(cfg.FallbackFiatRates) == 0 {
		return engine.DefaultFallbackRates()
	}
	rates := make(engine.FallbackRates, len(cfg.FallbackFiatRates))
	for code, rate := range cfg.FallbackFiatRates {
		rates[domain.CurrencyCode(code)] = rate
	}
	return rates
}
