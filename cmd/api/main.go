package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/NaveenSky123/manaraitubazaar/api/routes"
	addresssvc "github.com/NaveenSky123/manaraitubazaar/internal/address"
	cartsvc "github.com/NaveenSky123/manaraitubazaar/internal/cart"
	catalogsvc "github.com/NaveenSky123/manaraitubazaar/internal/catalog"
	checkoutsvc "github.com/NaveenSky123/manaraitubazaar/internal/checkout"
	"github.com/NaveenSky123/manaraitubazaar/pkg/blobstore"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
	"github.com/NaveenSky123/manaraitubazaar/pkg/metrics"
	"github.com/NaveenSky123/manaraitubazaar/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var closers []func() error
	var pingers []db.Pinger

	catalogRepo, dbClient, err := buildCatalogRepo(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap catalogue", err)
		os.Exit(1)
	}
	if dbClient != nil {
		closers = append(closers, dbClient.Close)
		pingers = append(pingers, dbClient)
	}

	store, redisClient, err := buildBlobStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap session store", err)
		os.Exit(1)
	}
	if redisClient != nil {
		closers = append(closers, redisClient.Close)
		pingers = append(pingers, redisClient)
	}

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	catalogService, err := catalogsvc.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	cartService, err := cartsvc.NewService(store, cfg.Delivery, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	addressService, err := addresssvc.NewService(store, cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create address service", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(store, cartService, addressService, cfg.Store, cfg.Payment, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, catalogService, cartService, addressService, checkoutService, pingers...),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during server shutdown", err)
		}
	}

	var closeErrs error
	for _, closeFn := range closers {
		closeErrs = multierr.Append(closeErrs, closeFn())
	}
	if closeErrs != nil {
		logg.Error(ctx, "error closing backing stores", closeErrs)
		os.Exit(1)
	}

	logg.Info(ctx, "api server shut down gracefully")
}

// buildCatalogRepo wires the catalogue against the configured store: the
// database-backed repository when enabled, the seeded in-memory repository
// otherwise.
func buildCatalogRepo(ctx context.Context, cfg *config.Config, logg *logger.Logger) (catalogsvc.Repository, *db.Client, error) {
	if !cfg.Catalog.UseDB {
		return catalogsvc.NewMemoryRepository(catalogsvc.SeedProducts()), nil, nil
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, nil, err
	}

	repo, err := catalogsvc.NewGormRepository(dbClient)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	if cfg.Catalog.AutoSeed {
		if err := repo.EnsureSeeded(ctx, catalogsvc.SeedProducts()); err != nil {
			return nil, nil, err
		}
	}

	return repo, dbClient, nil
}

// buildBlobStore wires session state against redis when configured, in
// process memory otherwise.
func buildBlobStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (blobstore.Store, *redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logg.Info(ctx, "redis not configured, keeping session state in memory")
		return blobstore.NewMemory(), nil, nil
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}

	store, err := blobstore.NewRedis(redisClient, cfg.Redis.SessionTTL)
	if err != nil {
		return nil, nil, err
	}

	return store, redisClient, nil
}
