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

	"github.com/Chanisha/E-com-cart/config"
	api "github.com/Chanisha/E-com-cart/internal/http"
	"github.com/Chanisha/E-com-cart/internal/repository"
	"github.com/Chanisha/E-com-cart/internal/service"
)

func main() {
	cfg := config.Load()
	initLogger(cfg.LogLevel)

	productRepo, checkoutRepo := selectRepositories(cfg)

	catalog := service.NewCatalogService(productRepo)
	seedCtx, cancel := context.WithTimeout(context.Background(), cfg.AdapterTimeout)
	catalog.Initialize(seedCtx)
	cancel()

	cart := service.NewCartService(catalog)
	checkout := service.NewCheckoutService(cart, checkoutRepo, cfg.AdapterTimeout)

	router := api.NewRouter(
		api.NewProductHandler(catalog, cfg.RequestTimeout),
		api.NewCartHandler(cart, cfg.RequestTimeout),
		api.NewCheckoutHandler(checkout, cfg.RequestTimeout),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}

// selectRepositories picks the MongoDB repositories when a database is
// configured and reachable, and the in-memory variants otherwise. Store
// logic never branches on connectivity after this point.
func selectRepositories(cfg config.Config) (repository.ProductRepository, repository.CheckoutRepository) {
	if !cfg.AdapterEnabled() {
		slog.Info("no MongoDB URI provided, using in-memory storage")
		return repository.NewMemoryProductRepository(), repository.NewMemoryCheckoutRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AdapterTimeout)
	defer cancel()

	db, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.AdapterTimeout)
	if err != nil {
		slog.Warn("MongoDB unavailable, using in-memory storage", "error", err)
		return repository.NewMemoryProductRepository(), repository.NewMemoryCheckoutRepository()
	}

	slog.Info("MongoDB connected", "database", cfg.MongoDatabase)
	return repository.NewMongoProductRepository(db), repository.NewMongoCheckoutRepository(db)
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}
