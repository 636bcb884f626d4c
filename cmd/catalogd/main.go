package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/giftlane/souvenirs-backend/internal/config"
	"github.com/giftlane/souvenirs-backend/internal/data/db"
	"github.com/giftlane/souvenirs-backend/internal/data/repos"
	httpserver "github.com/giftlane/souvenirs-backend/internal/http"
	"github.com/giftlane/souvenirs-backend/internal/http/handlers"
	"github.com/giftlane/souvenirs-backend/internal/observability"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
	"github.com/giftlane/souvenirs-backend/internal/services"
)

const serviceName = "souvenirs-backend"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	shutdownTracing := observability.InitTracing(context.Background(), log, observability.TracingConfig{
		ServiceName: serviceName,
		Environment: cfg.LogMode,
	})

	postgresService, err := db.NewPostgresService(cfg.DB, log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Database migration failed", "error", err)
	}
	thePG := postgresService.DB()

	log.Info("Setting up repos...")
	souvenirRepo := repos.NewSouvenirRepo(thePG, log)
	reviewRepo := repos.NewReviewRepo(thePG, log)
	userRepo := repos.NewUserRepo(thePG, log)
	cartRepo := repos.NewCartRepo(thePG, log)

	log.Info("Setting up services...")
	catalogService := services.NewCatalogService(thePG, log, souvenirRepo, reviewRepo, userRepo, cartRepo)

	server := httpserver.NewServer(httpserver.RouterConfig{
		ServiceName:    serviceName,
		CatalogHandler: handlers.NewCatalogHandler(catalogService),
		HealthHandler:  handlers.NewHealthHandler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "addr", cfg.Addr)
		return server.Run(cfg.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownTracing != nil {
			if err := shutdownTracing(shutdownCtx); err != nil {
				log.Warn("Tracing shutdown failed", "error", err)
			}
		}
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
